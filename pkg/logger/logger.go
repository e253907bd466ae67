// Package logger provides structured event logging for the service,
// backed by zerolog. Events are a short snake_case name plus a field
// map.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	log.Logger = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}

func Info(event string, fields map[string]interface{}) {
	log.Info().Fields(fields).Msg(event)
}

func Warn(event string, fields map[string]interface{}) {
	log.Warn().Fields(fields).Msg(event)
}

func Error(event string, fields map[string]interface{}) {
	log.Error().Fields(fields).Msg(event)
}
