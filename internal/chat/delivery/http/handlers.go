package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"furniture-chatbot/web"
)

// Chat godoc
// @Summary     Send a message to the assistant
// @Description Routes one shopper message and returns the assistant reply. The body is read as JSON regardless of Content-Type; a malformed body or a non-string message is treated as an empty message.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Shopper message"
// @Success     200  {object} chatResp
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processChatReq: %v", err)
		req = chatReq{}
	}

	output, err := h.uc.Reply(ctx, req.toInput())
	if err != nil {
		c.JSON(http.StatusOK, chatResp{Reply: h.mapError(ctx, err)})
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// Index godoc
// @Summary     Chat page
// @Description Serves the single-page chat UI.
// @Tags        Chat
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      / [GET]
func (h *handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

