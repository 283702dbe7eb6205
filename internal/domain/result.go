package domain

// Status определяет исход операции сокращения или раскрытия ссылки.
type Status int

// Возможные исходы операций.
const (
	StatusOK              Status = iota // операция выполнена
	StatusInvalidURL                    // исходный URL не прошел проверку
	StatusInvalidShortURL               // сокращенный URL не относится к домену сервиса
	StatusURLNotFound                   // ключ не найден
)

// Тексты результатов, которые показываются пользователю вместо URL.
const (
	InvalidURLMessage      = "Invalid URL"
	InvalidShortURLMessage = "Invalid short URL"
	URLNotFoundMessage     = "URL not found"
)

// Result содержит результат операции: URL при успехе или признак ожидаемой ошибки ввода.
type Result struct {
	Value  string
	Status Status
}

// OK создает успешный результат.
func OK(value string) Result {
	return Result{Value: value, Status: StatusOK}
}

// Fail создает результат с ошибкой ввода.
func Fail(status Status) Result {
	return Result{Status: status}
}

// IsOK возвращает true для успешного результата.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// String возвращает URL для успешного результата и текст ошибки в остальных случаях.
func (r Result) String() string {
	switch r.Status {
	case StatusOK:
		return r.Value
	case StatusInvalidURL:
		return InvalidURLMessage
	case StatusInvalidShortURL:
		return InvalidShortURLMessage
	case StatusURLNotFound:
		return URLNotFoundMessage
	default:
		return ""
	}
}
