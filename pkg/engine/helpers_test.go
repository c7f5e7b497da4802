package engine

import (
	"io"
	"log/slog"

	"github.com/getmockd/mockdb/pkg/logging"
)

func newBufferLogger(w io.Writer) *slog.Logger {
	return logging.New(logging.Config{
		Level:  slog.LevelDebug,
		Format: logging.FormatText,
		Output: w,
	})
}
