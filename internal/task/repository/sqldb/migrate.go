package sqldb

import "gorm.io/gorm"

// Migrate creates or upgrades the tasks table. Existing deployments that
// still lack the status column keep working through the legacy fallback,
// so running this is optional.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&record{})
}
