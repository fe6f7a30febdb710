package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"user-management-api/pkg/logger"
)

// bufferedWriter holds the status and body written downstream until the
// request logger has recorded them. Headers go straight to the real writer.
type bufferedWriter struct {
	gin.ResponseWriter
	body      bytes.Buffer
	status    int
	statusSet bool
	written   bool
}

func newBufferedWriter(w gin.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{ResponseWriter: w, status: w.Status()}
}

func (w *bufferedWriter) WriteHeader(code int) {
	if code > 0 && !w.written {
		w.status = code
		w.statusSet = true
	}
}

func (w *bufferedWriter) WriteHeaderNow() {
	w.written = true
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.body.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	w.written = true
	return w.body.WriteString(s)
}

func (w *bufferedWriter) Status() int {
	return w.status
}

func (w *bufferedWriter) Size() int {
	if !w.written {
		return -1
	}
	return w.body.Len()
}

func (w *bufferedWriter) Written() bool {
	return w.written
}

// Flush is a no-op: nothing reaches the client before the logger has run.
func (w *bufferedWriter) Flush() {}

// forward replays the buffered status and body onto the real writer.
// Nothing is written when downstream neither set a status nor wrote.
func (w *bufferedWriter) forward() error {
	if !w.written && !w.statusSet {
		return nil
	}
	w.ResponseWriter.WriteHeader(w.status)
	w.ResponseWriter.WriteHeaderNow()
	if w.body.Len() == 0 {
		return nil
	}
	_, err := w.ResponseWriter.Write(w.body.Bytes())
	return err
}

// Logger records one entry per request with method, path, start time,
// status and the full response body, then forwards the response unchanged.
// A request ID is attached to the request context for downstream logging.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		ctx, requestID := logger.WithRequestID(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)

		original := c.Writer
		buffered := newBufferedWriter(original)
		c.Writer = buffered
		defer func() { c.Writer = original }()

		c.Next()

		status := buffered.Status()
		if len(c.Errors) > 0 && !buffered.written && !buffered.statusSet {
			// nothing forwarded, so recovery answers with 500
			status = http.StatusInternalServerError
		}

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Time("started_at", start),
			zap.Duration("duration", time.Since(start)),
			zap.Int("status_code", status),
			zap.ByteString("body", buffered.body.Bytes()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		log.Log(levelFor(status, len(c.Errors) > 0), "http request", fields...)

		c.Writer = original
		if err := buffered.forward(); err != nil {
			_ = c.Error(err)
		}
	}
}

func levelFor(status int, hasErrors bool) zapcore.Level {
	switch {
	case hasErrors || status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
