package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook-api/platform/web/handler"
	"github.com/ribgsilva/notebook-api/platform/web/mid"
	"net/http"
)

// Read godoc
// @Summary Read a note
// @Description Reads the note content, allowed when the note is public, owned by or shared with the caller
// @Tags Note
// @Produce json
// @Param X-Identity header string true "Caller identity"
// @Param id path string true "Note id"
// @Success 200 {object} notes.Content
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func (n *Notes) Read(ctx *gin.Context) handler.Result {
	id, bad := parseID(ctx)
	if bad != nil {
		return *bad
	}

	content, err := n.repo.Read(requestContext(ctx), mid.GetIdentity(ctx), id)
	if err != nil {
		return n.failure(ctx, err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   Content{Content: content},
	}
}

// Details godoc
// @Summary Note details
// @Description Returns the whole note, share list included, to its owner
// @Tags Note
// @Produce json
// @Param X-Identity header string true "Caller identity"
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id}/details [get]
func (n *Notes) Details(ctx *gin.Context) handler.Result {
	id, bad := parseID(ctx)
	if bad != nil {
		return *bad
	}

	found, err := n.repo.Get(requestContext(ctx), mid.GetIdentity(ctx), id)
	if err != nil {
		return n.failure(ctx, err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   found,
	}
}
