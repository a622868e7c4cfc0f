// internal/render/handler_test.go
package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"resume-services/internal/common/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewStubRenderer(), logger.NewTestLogger(t)).Register(r)
	return r
}

func postRender(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/render/resume", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRenderResume_ReturnsPlaceholderLocator(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty document", body: `{"cv_json":{}}`},
		{name: "populated document", body: `{"cv_json":{"name":"Jane","skills":["go","sql"]}}`},
		{name: "missing cv_json field", body: `{}`},
		{name: "extra fields ignored", body: `{"cv_json":{},"unexpected":true}`},
	}

	r := setupRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postRender(r, tt.body)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"pdf_url":"s3://bucket/fake.pdf"}`, w.Body.String())
		})
	}
}

func TestRenderResume_PayloadHasNoObservableEffect(t *testing.T) {
	r := setupRouter(t)

	first := postRender(r, `{"cv_json":{}}`)
	second := postRender(r, `{"cv_json":{"totally":"different"}}`)

	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRenderResume_RejectsMalformedBody(t *testing.T) {
	r := setupRouter(t)

	w := postRender(r, `{"cv_json":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MALFORMED_BODY")
}
