package utils

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/logfmt"
	"github.com/apex/log/handlers/text"
)

// NewLogger writes logfmt lines to output, or colored text when the output is
// the fancy screen's log view.
func NewLogger(level log.Level, debug, colored bool, output io.Writer) *log.Logger {
	logger := &log.Logger{Level: level}

	if debug {
		logger.Level = log.DebugLevel
	}

	if colored {
		logger.Handler = text.New(output)
	} else {
		logger.Handler = logfmt.New(output)
	}

	return logger
}
