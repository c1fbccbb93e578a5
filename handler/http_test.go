package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"promptfn/bedrock"
)

func newTestRouter(stub *stubInvoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(New(stub, testDefaults()))
}

func TestInvokeEndpointSuccess(t *testing.T) {
	router := newTestRouter(&stubInvoker{result: &bedrock.Result{GeneratedText: "X"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader(`{"prompt":"hi"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body ResponseBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, "X", body.GeneratedText)
	require.Equal(t, "hi", body.InputPrompt)
}

func TestInvokeEndpointRootPath(t *testing.T) {
	router := newTestRouter(&stubInvoker{result: &bedrock.Result{GeneratedText: "ok"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"prompt":"hi"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestInvokeEndpointMalformedBody(t *testing.T) {
	router := newTestRouter(&stubInvoker{result: &bedrock.Result{GeneratedText: "unused"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader(`not json at all`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body ResponseBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "Invalid JSON format", body.Error)
}

// failingReader errors before any byte is delivered.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read: connection reset")
}

func TestInvokeEndpointUnreadableBody(t *testing.T) {
	router := newTestRouter(&stubInvoker{result: &bedrock.Result{GeneratedText: "unused"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoke", failingReader{})
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ResponseBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "Unexpected error", body.Error)
	require.Contains(t, body.Message, "unable to read request body")
}

func TestInvokeEndpointUpstreamFailureStatus(t *testing.T) {
	router := newTestRouter(&stubInvoker{err: &bedrock.UpstreamError{
		Code:    "ThrottlingException",
		Message: "Rate exceeded",
	}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader(`{"prompt":"hi"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(&stubInvoker{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(&stubInvoker{})

	rec := httptest.NewRecorder()
	// The origin's host must differ from the request host or the
	// middleware treats the request as same-origin and skips preflight.
	req := httptest.NewRequest(http.MethodOptions, "/invoke", nil)
	req.Header.Set("Origin", "https://other.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}
