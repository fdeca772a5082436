package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dujiao-next/gift-message/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorLocalized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?lang=zh-CN", nil)
	c.Set("request_id", "rid-1")

	RespondError(c, response.CodeNotFound, "error.order_not_found", errors.New("boom"))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		StatusCode int                    `json:"status_code"`
		Msg        string                 `json:"msg"`
		Data       map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, response.CodeNotFound, body.StatusCode)
	assert.NotEqual(t, "error.order_not_found", body.Msg)
	assert.Equal(t, "rid-1", body.Data["request_id"])
}

func TestNormalizePagination(t *testing.T) {
	page, size := NormalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	_, size = NormalizePagination(3, 500)
	assert.Equal(t, 100, size)
}

func TestPageQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&page_size=abc", nil)

	page, size := PageQuery(c)
	assert.Equal(t, 3, page)
	assert.Equal(t, 20, size)
}

func TestAdminIDMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := AdminID(c)
	assert.False(t, ok)
	assert.Contains(t, w.Body.String(), `"status_code":401`)

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Set("admin_id", uint(9))
	id, ok := AdminID(c2)
	assert.True(t, ok)
	assert.Equal(t, uint(9), id)
}
