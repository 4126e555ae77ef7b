package logsvc

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trezcool/gradebook/core"
)

// ZapLogger writes structured logs to the console.
type ZapLogger struct {
	log *zap.Logger
}

var _ core.Logger = (*ZapLogger)(nil)

func NewZapLogger(log *zap.Logger) *ZapLogger {
	return &ZapLogger{log: log}
}

// NewConsoleLogger builds a JSON logger (human readable in debug mode) at the configured level.
func NewConsoleLogger(conf *core.Config) (*ZapLogger, error) {
	zconf := zap.NewProductionConfig()
	if conf.Debug {
		zconf = zap.NewDevelopmentConfig()
	}
	if conf.LogLevel != "" {
		lvl, err := zap.ParseAtomicLevel(conf.LogLevel)
		if err != nil {
			return nil, errors.Wrap(err, "parsing log level")
		}
		zconf.Level = lvl
	}
	zconf.InitialFields = map[string]interface{}{"app": conf.AppName, "env": conf.Env}

	log, err := zconf.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return NewZapLogger(log), nil
}

// fields converts logger args: errors become "error" fields, maps are flattened
// and anything else is logged under its position.
func fields(args []interface{}) []zap.Field {
	flds := make([]zap.Field, 0, len(args))
	var errCount int
	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
		case error:
			if errCount == 0 {
				flds = append(flds, zap.Error(v))
			} else {
				flds = append(flds, zap.NamedError(fmt.Sprintf("error%d", errCount), v))
			}
			errCount++
		case map[string]interface{}:
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				flds = append(flds, zap.Any(k, v[k]))
			}
		default:
			flds = append(flds, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return flds
}

func (l *ZapLogger) Debug(msg string, args ...interface{}) {
	l.log.Debug(msg, fields(args)...)
}

func (l *ZapLogger) Info(msg string, args ...interface{}) {
	l.log.Info(msg, fields(args)...)
}

func (l *ZapLogger) Warn(msg string, args ...interface{}) {
	l.log.Warn(msg, fields(args)...)
}

func (l *ZapLogger) Error(msg string, args ...interface{}) {
	l.log.Error(msg, fields(args)...)
}

func (l *ZapLogger) Fatal(msg string, args ...interface{}) {
	l.log.Fatal(msg, fields(args)...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.log.Sync()
}
