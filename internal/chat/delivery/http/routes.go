package http

import (
	"github.com/gin-gonic/gin"

	"furniture-chatbot/internal/middleware"
)

// RegisterRoutes maps the chat page and the chat API.
// Only the API is rate limited.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.GET("/", h.Index)

	api := r.Group("/api")
	{
		api.POST("/chat", mw.RateLimit(), h.Chat)
	}
}
