package chat

import "furniture-chatbot/internal/router"

// --- UseCase Inputs ---

type ReplyInput struct {
	Message string
}

// --- UseCase Outputs ---

type ReplyOutput struct {
	Reply  string
	Intent router.Intent
	Rule   string
	Score  float64
}
