package sinkhorn

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the package default used by Scalers not given their own with
// WithLogger. It prints warnings and above to standard error, so
// support-check diagnostics surface without configuration; iteration-level
// events stay silent until a caller installs a more verbose logger.
var logger = zerolog.New(zerolog.NewConsoleWriter(
	func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr },
)).Level(zerolog.WarnLevel)

func Logger() zerolog.Logger             { return logger }
func SetLogger(newLogger zerolog.Logger) { logger = newLogger }
