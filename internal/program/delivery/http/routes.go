package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	programs := rg.Group("/programs")
	{
		programs.GET("", h.List)
		programs.GET("/search", h.Search)
	}

	rg.GET("/faqs", h.FAQs)
	rg.GET("/enrollment", h.Enrollment)
}
