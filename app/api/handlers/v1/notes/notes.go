package notes

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/notebook-api/business/v1/note"
	"github.com/ribgsilva/notebook-api/platform/web/handler"
	"github.com/ribgsilva/notebook-api/platform/web/mid"
	"go.uber.org/zap"
	"net/http"
	"strconv"
)

// Notes serves the note endpoints, every route expects the caller identity middleware
type Notes struct {
	log  *zap.SugaredLogger
	repo *note.Repository
}

func New(log *zap.SugaredLogger, repo *note.Repository) *Notes {
	return &Notes{log: log, repo: repo}
}

type Created struct {
	Id uint64 `json:"id" example:"1"`
}

type Content struct {
	Content string `json:"content" example:"my note text"`
}

type List struct {
	Ids []uint64 `json:"ids"`
}

type Shared struct {
	Shared bool `json:"shared" example:"true"`
}

// requestContext carries the New Relic transaction down to the repository
func requestContext(ctx *gin.Context) context.Context {
	return newrelic.NewContext(ctx.Request.Context(), nrgin.Transaction(ctx))
}

func parseID(ctx *gin.Context) (uint64, *handler.Result) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, &handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}
	return id, nil
}

func badRequest(message string) handler.Result {
	return handler.Result{
		Status: http.StatusBadRequest,
		Body:   handler.Error{Message: message},
	}
}

// InternalError is the body of every 500, the cause is only logged
const InternalError = "internal server error"

// failure maps repository errors to responses, domain errors keep the repository message
func (n *Notes) failure(ctx *gin.Context, err error) handler.Result {
	var status int
	switch {
	case errors.Is(err, note.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, note.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, note.ErrUnauthorized):
		status = http.StatusUnauthorized
	default:
		n.log.Errorw("request", "path", ctx.FullPath(), "requestID", mid.GetRequestID(ctx), "ERROR", err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: InternalError},
		}
	}
	return handler.Result{
		Status: status,
		Body:   handler.Error{Message: err.Error()},
	}
}
