package cookie

import (
	"github.com/gin-gonic/gin"
)

// The admin console stores its backend-issued token in a cookie so deep
// links into the console keep working; the Authorization header is the
// fallback for API clients.
const AdminTokenCookieName = "admin_token"

func GetAdminToken(c *gin.Context) string {
	token, _ := c.Cookie(AdminTokenCookieName)
	return token
}

func ClearAdminToken(c *gin.Context) {
	c.SetCookie(AdminTokenCookieName, "", -1, "/", "", false, true)
}
