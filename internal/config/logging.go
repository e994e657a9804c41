package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// OpenLog returns a logger writing to path, or discarding when path is
// empty. The returned func closes the file.
func OpenLog(path, prefix string) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.Level(GetEnvInt("CATCH_LOG_LEVEL", int64(log.InfoLevel))),
	})
	return logger, closeFn, nil
}
