package migration

import "database/sql"

// MigrationInterface — одна миграция схемы журнала; применяются по порядку
// при открытии соединения.
type MigrationInterface interface {
	UpMigration(*sql.DB) error
}
