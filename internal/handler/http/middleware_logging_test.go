package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request with a buffered logger in its context,
// the same way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET page",
			method:          http.MethodGet,
			path:            "/?search=ana",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/?search=ana"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST rejected",
			method:          http.MethodPost,
			path:            "/relationships",
			handlerStatus:   http.StatusUnprocessableEntity,
			handlerResponse: "Selecciona",
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":422`,
				`"size":10`,
			},
		},
		{
			name:          "no explicit header",
			method:        http.MethodGet,
			path:          "/version",
			handlerStatus: 0,
			checkLogContains: []string{
				`"status":200`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("abc"))

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 3, w.size)
	assert.Equal(t, rr, w.Unwrap())
}
