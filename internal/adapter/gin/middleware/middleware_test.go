package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	pkgerrors "user-management-api/pkg/errors"
	"user-management-api/pkg/logger"
)

const testToken = "test-token"

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// setupPipeline builds an engine with the production stage order.
func setupPipeline(log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(log), BearerAuth(testToken, "/health"), Logger(log))
	return r
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== AUTH TESTS ====================

func TestBearerAuth(t *testing.T) {
	log, logs := newObservedLogger()
	r := setupPipeline(log)

	reached := 0
	r.GET("/users", func(c *gin.Context) {
		reached++
		c.JSON(http.StatusOK, []string{})
	})
	r.GET("/swagger/*any", func(c *gin.Context) { c.String(http.StatusOK, "docs") })
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{name: "missing header", path: "/users", want: http.StatusUnauthorized},
		{name: "wrong token", path: "/users", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "wrong scheme case", path: "/users", header: "bearer " + testToken, want: http.StatusUnauthorized},
		{name: "valid token", path: "/users", header: "Bearer " + testToken, want: http.StatusOK},
		{name: "swagger exempt", path: "/swagger/index.html", want: http.StatusOK},
		{name: "health exempt", path: "/health", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := serve(r, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
			}
		})
	}

	// only the authorized /users call reached the handler
	assert.Equal(t, 1, reached)
	// rejected requests never reach the request logger
	assert.Equal(t, 3, logs.FilterMessage("http request").Len())
}

// ==================== LOGGER TESTS ====================

func TestLogger_ForwardsResponseUnchanged(t *testing.T) {
	log, logs := newObservedLogger()
	r := setupPipeline(log)

	var requestID string
	r.POST("/users", func(c *gin.Context) {
		requestID = logger.GetRequestID(c.Request.Context())
		c.Header("Location", "/users/42")
		c.JSON(http.StatusCreated, gin.H{"id": "42", "name": "John"})
	})

	w := serve(r, authorized(httptest.NewRequest(http.MethodPost, "/users", nil)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/users/42", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":"42","name":"John"}`, w.Body.String())
	assert.NotEmpty(t, requestID)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, http.MethodPost, fields["method"])
	assert.Equal(t, "/users", fields["path"])
	assert.EqualValues(t, http.StatusCreated, fields["status_code"])
	assert.Equal(t, requestID, fields["request_id"])
	assert.Contains(t, fields, "started_at")
	assert.JSONEq(t, w.Body.String(), fields["body"].(string))
}

func TestLogger_NoContent(t *testing.T) {
	log, logs := newObservedLogger()
	r := setupPipeline(log)
	r.DELETE("/users/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := serve(r, authorized(httptest.NewRequest(http.MethodDelete, "/users/1", nil)))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusNoContent, entries[0].ContextMap()["status_code"])
}

func TestLogger_LevelByStatus(t *testing.T) {
	log, logs := newObservedLogger()
	r := setupPipeline(log)
	r.GET("/bad", func(c *gin.Context) { c.JSON(http.StatusBadRequest, gin.H{"error": "x"}) })

	w := serve(r, authorized(httptest.NewRequest(http.MethodGet, "/bad", nil)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestLogger_UnknownRoute(t *testing.T) {
	log, _ := newObservedLogger()
	r := setupPipeline(log)

	w := serve(r, authorized(httptest.NewRequest(http.MethodGet, "/nowhere", nil)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ==================== RECOVERY TESTS ====================

func TestRecovery_Panic(t *testing.T) {
	log, logs := newObservedLogger()
	r := setupPipeline(log)
	r.GET("/users", func(c *gin.Context) {
		c.Header("Location", "/users/1")
		panic("store exploded")
	})

	w := serve(r, authorized(httptest.NewRequest(http.MethodGet, "/users", nil)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Location"))

	var body pkgerrors.UnexpectedErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "An unexpected error occurred.", body.Error)
	assert.Equal(t, "store exploded", body.Detail)

	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestRecovery_PanicWithError(t *testing.T) {
	log, _ := newObservedLogger()
	r := setupPipeline(log)
	r.GET("/users", func(c *gin.Context) { panic(errors.New("nil map write")) })

	w := serve(r, authorized(httptest.NewRequest(http.MethodGet, "/users", nil)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"An unexpected error occurred.","detail":"nil map write"}`, w.Body.String())
}

func TestRecovery_RecordedError(t *testing.T) {
	log, logs := newObservedLogger()
	r := setupPipeline(log)
	r.POST("/users", func(c *gin.Context) {
		_ = c.Error(errors.New("invalid character 'x' looking for beginning of value"))
	})

	w := serve(r, authorized(httptest.NewRequest(http.MethodPost, "/users", nil)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t,
		`{"error":"An unexpected error occurred.","detail":"invalid character 'x' looking for beginning of value"}`,
		w.Body.String())

	// the request logger still saw the request, at error level
	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.EqualValues(t, http.StatusInternalServerError, entries[0].ContextMap()["status_code"])
	assert.Equal(t, 1, logs.FilterMessage("unhandled request error").Len())
}

func TestRecovery_PassThrough(t *testing.T) {
	log, logs := newObservedLogger()
	r := setupPipeline(log)
	r.GET("/users", func(c *gin.Context) { c.JSON(http.StatusOK, []string{"a"}) })

	w := serve(r, authorized(httptest.NewRequest(http.MethodGet, "/users", nil)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["a"]`, w.Body.String())
	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
