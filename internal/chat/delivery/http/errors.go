package http

import (
	"context"
	"errors"

	"furniture-chatbot/internal/chat"
)

// mapError turns a use case failure into the reply shown to the shopper.
// The chat endpoint never reports errors through the status code.
func (h *handler) mapError(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.l.Warnf(ctx, "internal.chat.delivery.http.Chat: request aborted: %v", err)
	case errors.Is(err, chat.ErrRouterFailed):
		h.l.Errorf(ctx, "internal.chat.delivery.http.Chat: %v", err)
	default:
		h.l.Errorf(ctx, "internal.chat.delivery.http.Chat: unexpected error: %v", err)
	}
	return chat.ErrorReply
}
