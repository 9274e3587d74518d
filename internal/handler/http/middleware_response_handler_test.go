package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte("hello"))
	_, _ = w.Write([]byte(" world"))

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, len("hello world"), w.size)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, _ = w.Write([]byte("payload"))

	assert.Equal(t, http.StatusOK, w.status)
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusNoContent)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNoContent, w.status)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
