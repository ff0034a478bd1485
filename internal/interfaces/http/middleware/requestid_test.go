package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waveline-inc/waveline/internal/shared/constants"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	RequestID()(c)

	fromContext, exists := c.Get(constants.ContextKeyRequestID)
	require.True(t, exists)
	assert.NotEmpty(t, fromContext)
	assert.Equal(t, fromContext, w.Header().Get("X-Request-ID"))
}

func TestRequestID_KeepsInboundHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	c.Request.Header.Set("X-Request-ID", "upstream-id-42")

	RequestID()(c)

	fromContext, exists := c.Get(constants.ContextKeyRequestID)
	require.True(t, exists)
	assert.Equal(t, "upstream-id-42", fromContext)
	assert.Equal(t, "upstream-id-42", w.Header().Get("X-Request-ID"))
}
