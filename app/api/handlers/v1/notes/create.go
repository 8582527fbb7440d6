package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notebook-api/business/v1/note"
	"github.com/ribgsilva/notebook-api/platform/web/handler"
	"github.com/ribgsilva/notebook-api/platform/web/mid"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Creates a note owned by the caller
// @Tags Note
// @Accept json
// @Produce json
// @Param X-Identity header string true "Caller identity"
// @Param note body note.NewNote true "Note"
// @Success 201 {object} notes.Created
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /v1/notes [post]
func (n *Notes) Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return badRequest("invalid body: " + err.Error())
	}

	id, err := n.repo.Create(requestContext(ctx), mid.GetIdentity(ctx), newN)
	if err != nil {
		return n.failure(ctx, err)
	}

	return handler.Result{
		Status: http.StatusCreated,
		Body:   Created{Id: id},
	}
}

// List godoc
// @Summary List the caller notes
// @Description Lists every note id the caller created, in creation order, deleted ones included
// @Tags Note
// @Produce json
// @Param X-Identity header string true "Caller identity"
// @Success 200 {object} notes.List
// @Failure 401 {object} handler.Error
// @Router /v1/notes [get]
func (n *Notes) List(ctx *gin.Context) handler.Result {
	ids, err := n.repo.UserNotes(requestContext(ctx), mid.GetIdentity(ctx))
	if err != nil {
		return n.failure(ctx, err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   List{Ids: ids},
	}
}
