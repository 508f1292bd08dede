package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/logogif/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("computed layout") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("quantized frames") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("quantized frames") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("palette reduced") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done("Rendered 31 frames")

	out := buf.String()
	if !strings.Contains(out, "Rendered 31 frames (") {
		t.Errorf("progress output %q missing message with elapsed time", out)
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}
}

func TestSetLogLevelInstallsHooks(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)
	t.Cleanup(observability.Reset)

	observability.Cache().OnCacheHit(context.Background(), "artifact")
	if !strings.Contains(buf.String(), "cache hit") {
		t.Errorf("debug level should log cache events, got %q", buf.String())
	}
}

func TestLogHooksDebugOnly(t *testing.T) {
	tests := []struct {
		level   log.Level
		wantLog bool
	}{
		{log.InfoLevel, false},
		{log.DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			h := &logHooks{logger: newLogger(&buf, tt.level)}
			ctx := context.Background()

			h.OnLayoutComplete(ctx, 320, 120, time.Millisecond)
			h.OnRenderComplete(ctx, 31, time.Millisecond, nil)
			h.OnCacheMiss(ctx, "artifact")

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
			if tt.wantLog && !strings.Contains(buf.String(), "cache miss") {
				t.Errorf("output missing cache event:\n%s", buf.String())
			}
		})
	}
}
