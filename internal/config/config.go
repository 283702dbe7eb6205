package config

import (
	"flag"
	"strconv"
)

// Config описывает конфигурацию сервиса сокращения ссылок.
type Config struct {
	Domain    string   // домен сокращенных ссылок
	LogLevel  string   // уровень логирования
	URLs      []string // ссылки для сокращения
	KeyLength int      // длина ключа сокращенной ссылки
}

const (
	defaultKeyLength = 8
	defaultLogLevel  = "info"
)

// Environment определяет доступ к переменным среды.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// New создает экземпляр конфигурации с настройками по умолчанию.
func New() Config {
	return Config{
		KeyLength: defaultKeyLength,
		LogLevel:  defaultLogLevel,
	}
}

// FromArgs заполняет параметры конфигурации из аргументов командной строки.
// Позиционные аргументы считаются ссылками для сокращения.
func (conf Config) FromArgs(args []string) Config {
	flagSet := flag.NewFlagSet("", flag.PanicOnError)
	flagSet.IntVar(&conf.KeyLength, "l", conf.KeyLength, "key length")
	flagSet.StringVar(&conf.Domain, "d", conf.Domain, "short URL domain")
	flagSet.StringVar(&conf.LogLevel, "v", conf.LogLevel, "log level")

	_ = flagSet.Parse(args[1:]) // exclude command name
	if flagSet.NArg() > 0 {
		conf.URLs = flagSet.Args()
	}
	return conf
}

// FromEnv заполняет параметры конфигурации из переменных среды.
func (conf Config) FromEnv(env Environment) Config {
	if value, ok := env.LookupEnv("KEY_LENGTH"); ok {
		if length, err := strconv.Atoi(value); err == nil {
			conf.KeyLength = length
		}
	}

	if domain, ok := env.LookupEnv("SHORT_DOMAIN"); ok {
		conf.Domain = domain
	}

	if level, ok := env.LookupEnv("LOG_LEVEL"); ok {
		conf.LogLevel = level
	}

	return conf
}
