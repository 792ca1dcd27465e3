package dbconnect

import (
	"context"
	"database/sql"
)

// Database выдаёт готовое соединение с базой. Журнал прогонов открывает
// его один раз на запуск и закрывает при выходе.
type Database interface {
	Connect(ctx context.Context) (*sql.DB, error)
}
