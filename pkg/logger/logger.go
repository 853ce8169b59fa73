package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu   sync.RWMutex
	base = zap.NewNop()
)

// Init builds the process logger. Production gets JSON at info level,
// everything else the console encoder at debug level.
func Init(env string) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	level := zap.DebugLevel
	if env == "production" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
		level = zap.InfoLevel
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	SetLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
}

// SetLogger replaces the process logger. Tests use it with zaptest or observer cores.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l
}

// Named returns a typed logger for a component.
func Named(name string) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.WithOptions(zap.AddCallerSkip(-1)).Named(name)
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

func Debug(msg string, args ...any) { sugar().Debugw(msg, keyvals(args)...) }
func Info(msg string, args ...any)  { sugar().Infow(msg, keyvals(args)...) }
func Warn(msg string, args ...any)  { sugar().Warnw(msg, keyvals(args)...) }
func Error(msg string, args ...any) { sugar().Errorw(msg, keyvals(args)...) }
func Fatal(msg string, args ...any) { sugar().Fatalw(msg, keyvals(args)...) }

func sugar() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return base.Sugar()
}

// keyvals accepts key/value pairs and lets a bare error stand in for a
// pair, so logger.Error("msg", err) logs under "error".
func keyvals(args []any) []any {
	out := make([]any, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			out = append(out, zap.Error(v))
		case zap.Field:
			out = append(out, v)
		case string:
			if i+1 < len(args) {
				out = append(out, v, args[i+1])
				i++
			} else {
				out = append(out, zap.String("detail", v))
			}
		default:
			out = append(out, zap.Any("detail", v))
		}
	}
	return out
}
