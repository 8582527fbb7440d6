package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrapper(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/body", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusTeapot, Body: Error{Message: "short and stout"}}
	}))
	r.GET("/empty", Wrapper(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusNoContent}
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/body", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"message":"short and stout"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/empty", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
