package diagnostics

import (
	"io"

	"github.com/rs/zerolog"
)

// NewZerologSink builds a Sink backed by a zerolog.Logger writing to w.
// This is the default production sink wired in by mckp.Fit when the
// caller does not supply one via WithSink.
func NewZerologSink(w io.Writer) Sink {
	logger := zerolog.New(w).With().Timestamp().Logger()

	return func(ev Event) {
		var zl *zerolog.Event
		switch ev.Level {
		case LevelWarn:
			zl = logger.Warn()
		case LevelError:
			zl = logger.Error()
		default:
			zl = logger.Info()
		}

		zl = zl.Str("phase", ev.Phase)
		if ev.Unit != NoUnit {
			zl = zl.Int32("unit", ev.Unit)
		}
		if ev.Arm != NoArm {
			zl = zl.Int32("arm", ev.Arm)
		}
		zl.Msg(ev.Message)
	}
}
