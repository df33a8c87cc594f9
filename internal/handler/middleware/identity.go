package middleware

import (
	"net/http"
	"strconv"

	"gearshare/internal/handler/httperr"
	"gearshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// SharerHeader carries the caller's user id. The gateway in front of
// the service is trusted to have authenticated it.
const SharerHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

// RequireSharerID rejects requests without a well-formed caller id.
// Whether that id refers to an existing user is checked per operation.
func RequireSharerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errs.New("missing "+SharerHeader+" header"), "Missing user id header", nil)
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errs.Wrap(err, "malformed "+SharerHeader+" header"), "Invalid user id header", nil)
			return
		}
		c.Set(ctxUserIDKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
