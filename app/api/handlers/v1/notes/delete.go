package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook-api/platform/web/handler"
	"github.com/ribgsilva/notebook-api/platform/web/mid"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Description Deletes a note owned by the caller
// @Tags Note
// @Param X-Identity header string true "Caller identity"
// @Param id path string true "Note id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func (n *Notes) Delete(ctx *gin.Context) handler.Result {
	id, bad := parseID(ctx)
	if bad != nil {
		return *bad
	}

	if err := n.repo.Delete(requestContext(ctx), mid.GetIdentity(ctx), id); err != nil {
		return n.failure(ctx, err)
	}

	return handler.Result{Status: http.StatusNoContent}
}
