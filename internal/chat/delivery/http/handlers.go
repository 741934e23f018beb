package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ironlady-assistant/internal/chat"
	"ironlady-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Processes a user message and returns the assistant reply with follow-up suggestions.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Empty message"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// QuickQuestions godoc
// @Summary     Quick questions
// @Description Returns a fixed list of example questions to seed the conversation.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} quickQuestionsResp
// @Router      /api/v1/quick-questions [GET]
func (h *handler) QuickQuestions(c *gin.Context) {
	response.OK(c, quickQuestionsResp{Questions: quickQuestions})
}
