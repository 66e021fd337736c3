package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// sqliteDriverName is the go-sqlite3 driver registered with a Unicode lower().
// The built-in lower() of SQLite only folds ASCII letters.
const sqliteDriverName = "sqlite3_wordbook"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
}

// openSQLite opens dsn on the Unicode-aware driver. The handle keeps the
// sqlite3 driver name so binds and migrations resolve as usual.
func openSQLite(dsn string) (*sqlx.DB, error) {
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open() > %w", err)
	}
	return sqlx.NewDb(db, DriverSQLite), nil
}
