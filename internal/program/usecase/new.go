package usecase

import (
	"ironlady-assistant/internal/knowledge"
	pkgLog "ironlady-assistant/pkg/log"
)

// implUseCase serves catalog reads straight from the immutable knowledge base.
type implUseCase struct {
	l  pkgLog.Logger
	kb *knowledge.Base
}

// New creates a new program UseCase implementation.
func New(l pkgLog.Logger, kb *knowledge.Base) *implUseCase {
	return &implUseCase{
		l:  l,
		kb: kb,
	}
}
