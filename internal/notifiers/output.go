package notifiers

import (
	"fmt"
	"github.com/ilindan-dev/notification-dispatch/internal/config"
	"github.com/ilindan-dev/notification-dispatch/internal/domain/model"
	"io"
	"os"
)

// NewOutput resolves the console sink the stub channels write to.
func NewOutput(cfg *config.Config) (io.Writer, error) {
	switch cfg.Notifiers.Output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("%w: unsupported output %q", model.ErrInvalidConfiguration, cfg.Notifiers.Output)
	}
}

// consoleOr returns out, or stdout when out is nil.
func consoleOr(out io.Writer) io.Writer {
	if out == nil {
		return os.Stdout
	}
	return out
}
