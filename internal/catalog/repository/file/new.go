package file

import (
	"furniture-chatbot/internal/catalog/repository"
	"furniture-chatbot/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a repository reading the knowledge base document at path.
// The format is chosen by extension: .json, .yaml or .yml.
func New(path string, l log.Logger) *implRepository {
	return &implRepository{
		path: path,
		l:    l,
	}
}
