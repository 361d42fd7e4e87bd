package handlers

import (
	"database/sql"
	"errors"

	"github.com/SharpHawks/TireShop/internal/database"
	"github.com/SharpHawks/TireShop/internal/recommend"
	"github.com/go-sql-driver/mysql"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB     *sql.DB
	AI     *recommend.Service
	Health *database.HealthMonitor
}

// isDuplicateEntry reports whether err is a MySQL duplicate-key
// violation (error 1062), i.e. a UNIQUE constraint was hit.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
