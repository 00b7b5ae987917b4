package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

func bufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"request id", map[string]string{requestIDHeader: "req-1"}, "req-1"},
		{"trace id", map[string]string{traceIDHeader: "trace-1"}, "trace-1"},
		{"request id wins", map[string]string{requestIDHeader: "req-2", traceIDHeader: "trace-2"}, "req-2"},
		{"generated", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := bufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.want == "" {
				_, err := uuid.Parse(got)
				require.NoError(t, err)
			} else {
				assert.Equal(t, tt.want, got)
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/x?y=1", nil)
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":15`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/api/x?y=1"`)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 3, w.size)
	assert.Equal(t, http.StatusOK, rec.Code)
}
