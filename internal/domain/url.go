package domain

import "strings"

const (
	httpPrefix  = "http://"
	httpsPrefix = "https://"
	wwwPrefix   = "www."
)

// ValidateURL возвращает true, если URL не пустой и начинается с http://, https:// или www.
func ValidateURL(url string) bool {
	return url != "" &&
		(strings.HasPrefix(url, httpPrefix) ||
			strings.HasPrefix(url, httpsPrefix) ||
			strings.HasPrefix(url, wwwPrefix))
}

// SanitizeURL приводит URL к каноническому виду: удаляет не более одного префикса
// (http://, https:// или www. в этом порядке) и не более одного завершающего слеша.
func SanitizeURL(url string) string {
	switch {
	case strings.HasPrefix(url, httpPrefix):
		url = url[len(httpPrefix):]
	case strings.HasPrefix(url, httpsPrefix):
		url = url[len(httpsPrefix):]
	case strings.HasPrefix(url, wwwPrefix):
		url = url[len(wwwPrefix):]
	}

	return strings.TrimSuffix(url, "/")
}
