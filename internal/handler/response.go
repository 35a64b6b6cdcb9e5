package handler

import (
	"github.com/gin-gonic/gin"
)

// respondText writes body as text/plain with the given status.
func respondText(c *gin.Context, status int, body string) {
	c.String(status, "%s", body)
}
