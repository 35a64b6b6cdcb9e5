package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message handles /api/message for any method.
func Message(c *gin.Context) {
	respondText(c, http.StatusOK, MessageBody)
}

// NotFound answers every path without a route.
func NotFound(c *gin.Context) {
	respondText(c, http.StatusNotFound, NotFoundBody)
}
