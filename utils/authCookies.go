package utils

import (
	"github.com/gin-gonic/gin"
)

// SetAuthCookies stores both tokens as HTTP-only cookies scoped to the
// whole API.
func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	writeCookie(c, "accessToken", accessToken, int(AccessTokenExpiry.Seconds()))
	writeCookie(c, "refreshToken", refreshToken, int(RefreshTokenExpiry.Seconds()))
}

// ClearAuthCookies expires both token cookies.
func ClearAuthCookies(c *gin.Context) {
	writeCookie(c, "accessToken", "", -1)
	writeCookie(c, "refreshToken", "", -1)
}

func writeCookie(c *gin.Context, name, value string, maxAge int) {
	// Plain HTTP is only acceptable in local dev.
	secure := gin.Mode() != gin.DebugMode
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}
