package http

import (
	"github.com/gin-gonic/gin"

	"ironlady-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The chat endpoint is rate limited per client IP; the static quick-questions
// list is not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.GET("/quick-questions", h.QuickQuestions)
}
