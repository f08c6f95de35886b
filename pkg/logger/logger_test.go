package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestZapLogger_Level(t *testing.T) {
	l := &zapLogger{cfg: &ZapConfig{Level: "warn"}}
	assert.Equal(t, zapcore.WarnLevel, l.getLoggerLevel())

	l = &zapLogger{cfg: &ZapConfig{Level: "unknown"}}
	assert.Equal(t, zapcore.DebugLevel, l.getLoggerLevel())
}

func TestZapLogger_WithFields(t *testing.T) {
	l := InitializeTestZapLogger().(*zapLogger)

	ctx := context.Background()
	assert.Same(t, l.sugarLogger, l.ctx(ctx))

	fieldCtx := l.WithFields(ctx, "queue", "q1")
	assert.NotNil(t, fieldCtx.Value(loggerKey{}))
	assert.NotSame(t, l.sugarLogger, l.ctx(fieldCtx))
}

func TestHTTPLogger(t *testing.T) {
	l := InitializeTestZapLogger()

	var seenCtx context.Context
	h := HTTPLogger(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenCtx = r.Context()
		w.WriteHeader(http.StatusTeapot)
		w.(http.Flusher).Flush()
	}))

	t.Run("generates request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/queue/status", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
		assert.True(t, rec.Flushed)
		require.NotNil(t, seenCtx)
		assert.NotNil(t, seenCtx.Value(loggerKey{}))
	})

	t.Run("keeps incoming request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/queue/status", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	})
}
