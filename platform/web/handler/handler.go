package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every handler returns, the Wrapper writes it to the response
type Result struct {
	Status int
	Body   any
}

// Error is the default error body
type Error struct {
	Message string `json:"message" example:"The note does not exist"`
}

// Wrapper adapts a Result returning func into a gin.HandlerFunc
func Wrapper(f func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
