package http

import (
	"unicode/utf8"

	"furniture-chatbot/internal/chat"
)

// maxBodyBytes caps how much of a chat request body is read.
const maxBodyBytes = 16 << 10

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" example:"Do you have a sofa?"`
}

func (r *chatReq) validate() error {
	if !utf8.ValidString(r.Message) {
		r.Message = ""
	}
	return nil
}

func (r chatReq) toInput() chat.ReplyInput {
	return chat.ReplyInput{Message: r.Message}
}

// --- Response DTOs ---

type chatResp struct {
	Reply string `json:"reply" example:"Hi there! 👋 Welcome to Victory Furniture."`
}

func (h *handler) newChatResp(out chat.ReplyOutput) chatResp {
	return chatResp{Reply: out.Reply}
}
