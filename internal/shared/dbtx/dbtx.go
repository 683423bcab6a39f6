package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a gorm session bound to ctx that runs on tx when the caller
// opened one, so repositories join the service-level transaction.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	session := db.WithContext(ctx)
	if tx != nil {
		session.Statement.ConnPool = tx
	}
	return session
}
