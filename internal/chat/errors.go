package chat

import "errors"

var (
	ErrRouterFailed = errors.New("router failed to produce a reply")
)

// ErrorReply is sent with HTTP 200 when routing fails, so the chat page always
// has something to show.
const ErrorReply = "Sorry, something went wrong on our side. Please try again in a moment."
