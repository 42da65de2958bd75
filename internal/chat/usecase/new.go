package usecase

import (
	"furniture-chatbot/internal/chat"
	"furniture-chatbot/internal/router"
	"furniture-chatbot/pkg/log"
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	router router.Router
	l      log.Logger
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(r router.Router, l log.Logger) *implUseCase {
	return &implUseCase{
		router: r,
		l:      l,
	}
}
