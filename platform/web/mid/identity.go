package mid

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/ribgsilva/notebook-api/platform/web/handler"
	"net/http"
	"strings"
)

// IdentityHeader carries the caller identity, it is set by the gateway in front of the api and trusted as is
const IdentityHeader = "X-Identity"

// IdentityRule is the validation applied to every identity, both callers and share addresses, spaces are rejected apart
const IdentityRule = "required,max=128,printascii"

const identityKey = "identity"

var validate = validator.New()

// ValidIdentity reports whether id can be used as caller or share address
func ValidIdentity(id string) bool {
	if strings.ContainsRune(id, ' ') {
		return false
	}
	return validate.Var(id, IdentityRule) == nil
}

// Identity rejects requests without a valid caller identity
func Identity() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(IdentityHeader)
		if !ValidIdentity(id) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "missing or invalid caller identity"})
			return
		}
		ctx.Set(identityKey, id)
		ctx.Next()
	}
}

// GetIdentity returns the caller identity set by Identity
func GetIdentity(ctx *gin.Context) string {
	return ctx.GetString(identityKey)
}
