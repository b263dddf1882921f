package database

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	// Anything else is treated as a SQLite path (local development, tests).
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema and the double-booking guard.
//
// The partial unique index is the source of truth for the "one non-cancelled
// appointment per (staff, instant)" invariant; the application-level
// availability check is only a pre-flight for fast user feedback. Both
// PostgreSQL and SQLite support partial indexes, so one statement covers
// deployment and local development.
func Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return err
	}

	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
ON appointments (staff_id, scheduled_at)
WHERE status <> 'cancelled'
`).Error
}
