package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Reply(ctx context.Context, input ReplyInput) (ReplyOutput, error)
}
