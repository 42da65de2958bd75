package repository

import (
	"context"

	"furniture-chatbot/internal/catalog"
)

//go:generate mockery --name Repository
type Repository interface {
	// LoadEntries reads every knowledge base entry in document order.
	LoadEntries(ctx context.Context) ([]catalog.Entry, error)
}
