package shortener

import (
	"strings"

	"github.com/pkg/errors"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var alphabetLen = len(alphabet)

const (
	// DefaultKeyLength длина ключа, если при создании указана неположительная длина.
	DefaultKeyLength = 8
	// MaxAttempts максимальное количество кандидатов, проверяемых за одно выделение ключа.
	MaxAttempts = 1000
)

// ErrKeyAllocationExhausted возвращается, если за MaxAttempts попыток не удалось
// подобрать свободный ключ. Ошибка фатальна для вызова и не должна повторяться
// тем же кодом.
var ErrKeyAllocationExhausted = errors.New("failed to generate a unique key")

// Rand определяет источник случайных чисел. Intn возвращает равномерно
// распределенное число из [0, n).
type Rand interface {
	Intn(n int) int
}

// Allocator выдает случайные ключи фиксированной длины из алфавита в 62 символа.
// Allocator не хранит выданные ключи: занятость проверяет вызывающая сторона.
type Allocator struct {
	rnd    Rand
	length int
}

// NewAllocator создает экземпляр Allocator. Неположительная длина заменяется на DefaultKeyLength.
func NewAllocator(length int, rnd Rand) *Allocator {
	if length <= 0 {
		length = DefaultKeyLength
	}

	return &Allocator{
		rnd:    rnd,
		length: length,
	}
}

// Length возвращает длину выдаваемых ключей.
func (a *Allocator) Length() int {
	return a.length
}

// Allocate подбирает ключ, для которого isTaken возвращает false.
func (a *Allocator) Allocate(isTaken func(key string) bool) (string, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		key := a.candidate()

		if !isTaken(key) {
			return key, nil
		}
	}

	return "", errors.Wrapf(ErrKeyAllocationExhausted, "after %d attempts", MaxAttempts)
}

func (a *Allocator) candidate() string {
	b := strings.Builder{}
	b.Grow(a.length)

	for i := 0; i < a.length; i++ {
		_ = b.WriteByte(alphabet[a.rnd.Intn(alphabetLen)])
	}

	return b.String()
}
