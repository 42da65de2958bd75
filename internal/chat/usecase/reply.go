package usecase

import (
	"context"
	"fmt"
	"time"

	"furniture-chatbot/internal/chat"
	"furniture-chatbot/internal/router"
	"furniture-chatbot/pkg/metrics"
)

// Reply routes one shopper message and records metrics for the decision.
func (uc *implUseCase) Reply(ctx context.Context, input chat.ReplyInput) (chat.ReplyOutput, error) {
	if err := ctx.Err(); err != nil {
		return chat.ReplyOutput{}, err
	}

	start := time.Now()
	out := uc.router.Route(ctx, input.Message)
	metrics.ChatReplyDuration.WithLabelValues(string(out.Intent)).Observe(time.Since(start).Seconds())

	if out.Reply == "" {
		uc.l.Errorf(ctx, "internal.chat.usecase.Reply: empty reply from rule %q", out.Rule)
		metrics.ChatReplyErrors.Inc()
		return chat.ReplyOutput{}, fmt.Errorf("%w: rule %q", chat.ErrRouterFailed, out.Rule)
	}

	metrics.ChatRepliesTotal.WithLabelValues(string(out.Intent), out.Rule).Inc()
	if out.Intent == router.IntentProductMatch {
		metrics.ProductMatchScore.Observe(out.Score)
	}

	return chat.ReplyOutput{
		Reply:  out.Reply,
		Intent: out.Intent,
		Rule:   out.Rule,
		Score:  out.Score,
	}, nil
}
