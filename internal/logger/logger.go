package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New создаёт логгер сервиса: человекочитаемый вывод в development,
// JSON в остальных окружениях.
func New(env string) zerolog.Logger {
	if env == "development" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
