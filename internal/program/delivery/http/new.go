package http

import (
	"github.com/gin-gonic/gin"

	"ironlady-assistant/internal/program"
	"ironlady-assistant/pkg/log"
)

// Handler is the public interface for the program HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Search(c *gin.Context)
	FAQs(c *gin.Context)
	Enrollment(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc program.UseCase
}

// New creates a new HTTP handler for the program domain.
func New(l log.Logger, uc program.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
