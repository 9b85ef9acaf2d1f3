package log

import (
	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/scikern/pkg/errors"
)

// InstallZerologWarnBridge routes warnings raised through pkg/errors.Warn
// to the given zerolog logger. Warning types implementing
// zerolog.LogObjectMarshaler are emitted as structured objects.
func InstallZerologWarnBridge(logger zerolog.Logger) {
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.Object("warning", marshaler)
		} else {
			event.Err(warning)
		}
		event.Msg("scikern warning")
	})
}
