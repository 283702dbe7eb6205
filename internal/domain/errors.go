package domain

import (
	"errors"
	"fmt"
)

// Ошибки, связанные с исходным URL.
var (
	ErrOriginalURLNotFound = errors.New("not found") // исходный URL не найден
)

// OriginalURLExistsError определяет ошибку, когда исходный URL уже был сокращен.
type OriginalURLExistsError struct {
	err error
	key string
}

// NewOriginalURLExistsError создает экземпляр ошибки.
func NewOriginalURLExistsError(key string, err error) *OriginalURLExistsError {
	return &OriginalURLExistsError{
		err: err,
		key: key,
	}
}

// Error возвращает текст ошибки.
func (u *OriginalURLExistsError) Error() string {
	if u.err == nil {
		return fmt.Sprintf("original URL already exists with key %s", u.key)
	}
	return fmt.Sprintf("original URL already exists with key %s: %v", u.key, u.err)
}

// Unwrap возвращает исходную ошибку.
func (u *OriginalURLExistsError) Unwrap() error {
	return u.err
}

// GetKey возвращает ключ, который был выдан исходному URL ранее.
func (u *OriginalURLExistsError) GetKey() string {
	return u.key
}
