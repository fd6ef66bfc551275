// Package cli runs one conversion per process: read a document, transform
// it, write the result.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/geange/regexfa"
	"github.com/geange/regexfa/internal/config"
	"github.com/geange/regexfa/internal/logger"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Transform converts the document at input into the document at output.
type Transform func(input, output string, cfg config.Config, log *slog.Logger) error

// Main runs transform with the two positional arguments in args and returns
// the process exit code. Anything other than two arguments prints the usage
// and transforms nothing.
func Main(name string, args []string, stdout, stderr io.Writer, transform Transform) int {
	if len(args) != 2 {
		fmt.Fprintln(stdout, "incorrect input")
		fmt.Fprintf(stdout, "Input format: %s <input_file> <output_file>\n", name)
		return ExitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		log := logger.New(logger.WithOutput(stderr), logger.WithAttr(logger.Component(name)))
		log.Error("load config", logger.Error(err), logger.Class(Classify(err)))
		return ExitError
	}

	opts := append(cfg.LoggerOptions(),
		logger.WithOutput(stderr),
		logger.WithAttr(logger.Component(name), logger.RunID(uuid.NewString())),
	)
	log := logger.New(opts...)

	start := time.Now()
	if err := transform(args[0], args[1], cfg, log); err != nil {
		log.Error("conversion failed",
			logger.Error(err),
			logger.Class(Classify(err)),
			slog.String("input", args[0]))
		return ExitError
	}
	log.Debug("conversion finished",
		slog.String("input", args[0]),
		slog.String("output", args[1]),
		slog.Duration("elapsed", time.Since(start)))
	return ExitOK
}

// Classify names the class of err for logs.
func Classify(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, regexfa.ErrSyntax):
		return "syntax"
	case errors.Is(err, regexfa.ErrStructural):
		return "structural"
	case errors.Is(err, regexfa.ErrSchema):
		return "schema"
	case errors.Is(err, regexfa.ErrScaleLimit):
		return "scale"
	case errors.Is(err, config.ErrParsingConfig), errors.Is(err, config.ErrInvalidConfig):
		return "config"
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return "io"
	}
	return "unknown"
}
