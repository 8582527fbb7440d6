package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook-api/business/v1/note"
	"github.com/ribgsilva/notebook-api/platform/web/handler"
	"github.com/ribgsilva/notebook-api/platform/web/mid"
	"net/http"
)

// UpdateSharing godoc
// @Summary Update a note sharing
// @Description Sets the visibility and adds the addresses to the share list, previous addresses are kept
// @Tags Note
// @Accept json
// @Param X-Identity header string true "Caller identity"
// @Param id path string true "Note id"
// @Param sharing body note.Sharing true "Sharing"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id}/sharing [put]
func (n *Notes) UpdateSharing(ctx *gin.Context) handler.Result {
	id, bad := parseID(ctx)
	if bad != nil {
		return *bad
	}

	var s note.Sharing
	if err := ctx.ShouldBindJSON(&s); err != nil {
		return badRequest("invalid body: " + err.Error())
	}
	for _, address := range s.Addresses {
		if !mid.ValidIdentity(address) {
			return badRequest("invalid address: " + address)
		}
	}

	if err := n.repo.UpdateSharing(requestContext(ctx), mid.GetIdentity(ctx), id, s); err != nil {
		return n.failure(ctx, err)
	}

	return handler.Result{Status: http.StatusNoContent}
}

// IsShared godoc
// @Summary Check a note share
// @Description Reports whether the note share list has the identity, visibility is not considered
// @Tags Note
// @Produce json
// @Param X-Identity header string true "Caller identity"
// @Param id path string true "Note id"
// @Param identity path string true "Identity to check"
// @Success 200 {object} notes.Shared
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id}/shared/{identity} [get]
func (n *Notes) IsShared(ctx *gin.Context) handler.Result {
	id, bad := parseID(ctx)
	if bad != nil {
		return *bad
	}

	shared, err := n.repo.IsSharedWithUser(requestContext(ctx), id, ctx.Param("identity"))
	if err != nil {
		return n.failure(ctx, err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   Shared{Shared: shared},
	}
}
