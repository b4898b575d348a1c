package auth

import "github.com/gin-gonic/gin"

const userIDKey = "userID"

// UserID extracts the authenticated user id the middleware stashed in
// the request context.
func UserID(c *gin.Context) (string, bool) {
	val, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}

func setUserID(c *gin.Context, id string) {
	c.Set(userIDKey, id)
}
