package usecase

import (
	"time"

	"taskboard/internal/board"
	"taskboard/internal/extract"
	"taskboard/internal/suggest"
	"taskboard/internal/task/repository"
	pkgLog "taskboard/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	extractor extract.Extractor
	boards    *board.Manager
	suggester *suggest.Suggester
	location  *time.Location
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	extractor extract.Extractor,
	location *time.Location,
	suggestCfg suggest.Config,
) *implUseCase {
	if location == nil {
		location = time.UTC
	}

	uc := &implUseCase{
		l:         l,
		repo:      repo,
		extractor: extractor,
		location:  location,
	}
	uc.boards = board.NewManager(l, uc.persistStatus)
	uc.suggester = suggest.NewSuggester(l, uc.fetchSuggestions, suggestCfg)
	return uc
}
