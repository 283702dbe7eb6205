package environment

import "os"

// Environment предоставляет доступ к переменным среды процесса.
type Environment struct {
}

// New создает экземпляр Environment.
func New() Environment {
	return Environment{}
}

// LookupEnv возвращает значение переменной среды по ключу, если переменная существует.
func (env Environment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map хранит переменные среды в словаре. Применяется вместо Environment в тестах.
type Map map[string]string

// LookupEnv возвращает значение переменной из словаря.
func (m Map) LookupEnv(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}
