package log

import (
	"fmt"

	"go.uber.org/zap"
)

// New создает производственный логер с указанным уровнем логирования.
func New(level string) (*zap.Logger, error) {
	const op = "new logger"

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errorf(op, err)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	logger, err := config.Build()
	if err != nil {
		return nil, errorf(op, err)
	}

	return logger, nil
}

func errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
