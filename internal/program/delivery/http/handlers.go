package http

import (
	"github.com/gin-gonic/gin"

	"ironlady-assistant/internal/program"
	"ironlady-assistant/pkg/response"
)

// List godoc
// @Summary     List programs
// @Description Returns the full program catalog.
// @Tags        Programs
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/programs [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Search godoc
// @Summary     Search programs
// @Description Case-insensitive substring search over program names, descriptions, and highlights.
// @Tags        Programs
// @Produce     json
// @Param       q query string false "Search query; empty matches all programs"
// @Success     200 {object} searchResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/programs/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Search(ctx, program.SearchInput{Query: c.Query("q")})
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// FAQs godoc
// @Summary     List FAQs
// @Description Returns the FAQ catalog.
// @Tags        Programs
// @Produce     json
// @Success     200 {object} faqsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/faqs [GET]
func (h *handler) FAQs(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.FAQs(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.FAQs: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newFAQsResp(output))
}

// Enrollment godoc
// @Summary     Enrollment info
// @Description Returns the enrollment steps, requirements, and contact details.
// @Tags        Programs
// @Produce     json
// @Success     200 {object} enrollmentResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/enrollment [GET]
func (h *handler) Enrollment(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Enrollment(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Enrollment: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newEnrollmentResp(output))
}
