package config

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prepare returns the program logger. Console output goes to stderr at the
// configured level; verbose forces debug. When Destination is set a file core
// at debug level is teed in.
func (conf *LoggingConfig) Prepare(verbose bool) (*zap.Logger, error) {
	return conf.build(os.Stderr, verbose)
}

func (conf *LoggingConfig) build(console io.Writer, verbose bool) (*zap.Logger, error) {
	level := conf.Level
	if verbose {
		level = LogDebug
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(ec)

	var consoleCore zapcore.Core
	switch level {
	case LogDebug:
		consoleCore = zapcore.NewCore(consoleEncoder, zapcore.AddSync(console), zapcore.DebugLevel)
	case LogNormal, "":
		consoleCore = zapcore.NewCore(consoleEncoder, zapcore.AddSync(console), zapcore.InfoLevel)
	case LogNone:
		consoleCore = zapcore.NewNopCore()
	default:
		return nil, fmt.Errorf("unknown logging level %q", level)
	}

	fileCore := zapcore.NewNopCore()
	if conf.Destination != "" {
		f, err := os.OpenFile(conf.Destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, fmt.Errorf("unable to access log destination (%s): %w", conf.Destination, err)
		}
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), zapcore.DebugLevel)
	}

	return zap.New(zapcore.NewTee(consoleCore, fileCore)).Named("folio"), nil
}
