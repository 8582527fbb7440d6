package healthcheck

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook-api/platform/web/handler"
	"net/http"
)

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Reports the service is up
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Router /v1/healthcheck [get]
func Get(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok"},
	}
}
