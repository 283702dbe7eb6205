package sentinel

func shorten(url string) string {
	if url == "" {
		return "Invalid URL"
	}
	return "tinyurl.com/abcde"
}

func check() bool {
	short := shorten("www.google.com")
	if short == "Invalid URL" { // want `comparing with sentinel text "Invalid URL", check Result.Status instead`
		return false
	}
	if "URL not found" != short { // want `comparing with sentinel text "URL not found", check Result.Status instead`
		return false
	}
	return short != "Not a sentinel"
}

func sw(short string) bool {
	return short == `Invalid short URL` // want `comparing with sentinel text "Invalid short URL", check Result.Status instead`
}
