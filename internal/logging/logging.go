// Package logging builds the ambient *zap.Logger every pipeline stage
// threads in explicitly (paginator, renderer, resource loader),
// simplified from rupor-github-fb2cng/config/logger.go's dual
// console/file tee down to a single console core, since this pipeline
// has no batch-report or panic-capture requirement of its own.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger for one conversion run. debug selects a
// development encoder with colored, human-read level names and debug
// verbosity; otherwise a quieter JSON encoder at info level is used,
// suitable for batch/production runs.
func New(debug bool) *zap.Logger {
	if debug {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(os.Stdout)), zap.DebugLevel)
		return zap.New(core, zap.AddCaller())
	}

	ec := zap.NewProductionEncoderConfig()
	core := zapcore.NewCore(zapcore.NewJSONEncoder(ec), zapcore.Lock(zapcore.AddSync(os.Stdout)), zap.InfoLevel)
	return zap.New(core)
}

// Nop returns a logger that discards everything, for call sites
// (tests, library use without an injected logger) that need a
// non-nil *zap.Logger but no output.
func Nop() *zap.Logger {
	return zap.NewNop()
}
