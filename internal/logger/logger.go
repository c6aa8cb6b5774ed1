// Package logger builds the process-wide zap logger.
//
// Production emits JSON to stdout so the platform can ship the stream;
// development uses the human-readable console encoder.
package logger

import (
	"go.uber.org/zap"
)

// New returns a SugaredLogger for the given runtime mode and installs it
// as the zap global so zap.L() works everywhere after startup.
func New(env string) (*zap.SugaredLogger, error) {
	var (
		z   *zap.Logger
		err error
	)
	if env == "development" {
		z, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		z, err = cfg.Build()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(z)
	return z.Sugar(), nil
}
