package util

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologAdapter bridges a zerolog.Logger into the Logger interface so host
// applications that already log through zerolog can plug it into the client.
type ZerologAdapter struct {
	log zerolog.Logger
}

func NewZerologAdapter(log zerolog.Logger) ZerologAdapter {
	return ZerologAdapter{log: log}
}

func (z ZerologAdapter) Infof(format string, a ...any) {
	z.log.Info().Msgf(format, a...)
}

func (z ZerologAdapter) Debugf(format string, a ...any) {
	z.log.Debug().Msgf(format, a...)
}

func (z ZerologAdapter) Warnf(format string, a ...any) {
	z.log.Warn().Msgf(format, a...)
}

func (z ZerologAdapter) Errorf(format string, a ...any) error {
	z.log.Error().Msgf(format, a...)
	return fmt.Errorf(format, a...)
}
