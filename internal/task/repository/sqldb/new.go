package sqldb

import (
	"gorm.io/gorm"

	"taskboard/internal/task/repository"
	pkgLog "taskboard/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *gorm.DB
}

// New creates a SQL-backed task repository.
func New(l pkgLog.Logger, db *gorm.DB) repository.Repository {
	return &implRepository{l: l, db: db}
}
