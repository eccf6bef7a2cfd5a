package sqldb

import (
	"time"

	"taskboard/internal/model"
)

// record mirrors the tasks table. Status is nullable because tables that
// predate the column are still supported; on read a nil status is derived
// from legacy_completed.
type record struct {
	ID              string     `gorm:"column:id;primaryKey"`
	OwnerID         string     `gorm:"column:owner_id"`
	Title           string     `gorm:"column:title"`
	Description     *string    `gorm:"column:description"`
	DueAt           *time.Time `gorm:"column:due_at"`
	Status          *string    `gorm:"column:status"`
	LegacyCompleted bool       `gorm:"column:legacy_completed"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
}

func (record) TableName() string { return "tasks" }

var fullColumns = []string{
	"id", "owner_id", "title", "description", "due_at",
	"status", "legacy_completed", "created_at",
}

var legacyColumns = []string{
	"id", "owner_id", "title", "description", "due_at",
	"legacy_completed", "created_at",
}

func (r record) toModel() model.Task {
	t := model.Task{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		Title:           r.Title,
		Description:     r.Description,
		DueAt:           r.DueAt,
		LegacyCompleted: r.LegacyCompleted,
		CreatedAt:       r.CreatedAt,
	}
	if r.Status != nil {
		if st, ok := model.ParseStatus(*r.Status); ok {
			t.Status = st
			return t
		}
	}
	t.Status = model.DeriveStatus(r.LegacyCompleted)
	return t
}
