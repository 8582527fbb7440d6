package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook-api/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notebook-api/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notebook-api/business/v1/note"
	"github.com/ribgsilva/notebook-api/platform/web/handler"
	"github.com/ribgsilva/notebook-api/platform/web/mid"
	"go.uber.org/zap"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, log *zap.SugaredLogger, repo *note.Repository) {
	n := notes.New(log, repo)

	g := r.Group("/v1/notes", mid.Identity())
	g.POST("", handler.Wrapper(n.Create))
	g.GET("", handler.Wrapper(n.List))
	g.GET("/:id", handler.Wrapper(n.Read))
	g.GET("/:id/details", handler.Wrapper(n.Details))
	g.PUT("/:id/sharing", handler.Wrapper(n.UpdateSharing))
	g.DELETE("/:id", handler.Wrapper(n.Delete))
	g.GET("/:id/shared/:identity", handler.Wrapper(n.IsShared))
}
