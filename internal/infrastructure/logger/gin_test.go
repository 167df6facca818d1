package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func findEntry(entries []observer.LoggedEntry, message string) *observer.LoggedEntry {
	for i := range entries {
		if entries[i].Message == message {
			return &entries[i]
		}
	}
	return nil
}

func TestGinMiddleware_LogsCompletion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)
	zapLogger := zap.New(core)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "req-123")
		c.Next()
	})
	router.Use(GinMiddleware(zapLogger))
	router.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products?page=2", nil)
	router.ServeHTTP(w, req)

	entry := findEntry(recorded.All(), "Request completed")
	require.NotNil(t, entry)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "req-123", fields["request_id"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, "page=2", fields["query"])
	assert.Contains(t, fields, "latency")
	assert.Contains(t, fields, "client_ip")
}

func TestGinMiddleware_TagsAuthenticatedVendor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)
	zapLogger := zap.New(core)

	router := gin.New()
	router.Use(GinMiddleware(zapLogger))
	router.GET("/orders", func(c *gin.Context) {
		// The JWT middleware resolves the vendor after the request
		// logger has been installed.
		c.Set("jwt_vendor_id", "2f5e7a10-0000-0000-0000-000000000001")
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/orders", nil)
	router.ServeHTTP(w, req)

	entry := findEntry(recorded.All(), "Request completed")
	require.NotNil(t, entry)
	assert.Equal(t, "2f5e7a10-0000-0000-0000-000000000001", entry.ContextMap()["vendor_id"])
}

func TestGinMiddleware_LevelFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		status   int
		expected zapcore.Level
	}{
		{"client error logs a warning", http.StatusUnprocessableEntity, zapcore.WarnLevel},
		{"server error logs an error", http.StatusBadGateway, zapcore.ErrorLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			core, recorded := observer.New(zapcore.InfoLevel)
			zapLogger := zap.New(core)

			router := gin.New()
			router.Use(GinMiddleware(zapLogger))
			router.GET("/status", func(c *gin.Context) {
				c.Status(tc.status)
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/status", nil)
			router.ServeHTTP(w, req)

			entry := findEntry(recorded.All(), "Request completed")
			require.NotNil(t, entry)
			assert.Equal(t, tc.expected, entry.Level)
		})
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.ErrorLevel)
	zapLogger := zap.New(core)

	router := gin.New()
	router.Use(Recovery(zapLogger))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/panic", nil)

	assert.NotPanics(t, func() {
		router.ServeHTTP(w, req)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	entry := findEntry(recorded.All(), "Panic recovered")
	require.NotNil(t, entry)
}

func TestGetGinLogger_FallsBackToNop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var retrieved *zap.Logger

	router := gin.New()
	router.GET("/bare", func(c *gin.Context) {
		retrieved = GetGinLogger(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bare", nil)
	router.ServeHTTP(w, req)

	require.NotNil(t, retrieved)
	assert.NotPanics(t, func() {
		retrieved.Info("unused")
	})
}
