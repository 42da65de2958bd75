package http

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// processChatReq reads the body as a JSON object whatever the content type.
// A missing or non-string "message" leaves the request empty.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if c.Request.Body == nil {
		return req, nil
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return req, err
	}
	if len(body) == 0 {
		return req, nil
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return req, err
	}
	if msg, ok := payload["message"].(string); ok {
		req.Message = msg
	}

	return req, req.validate()
}
