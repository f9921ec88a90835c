package repository

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

var sampleTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// sqliteSchema mirrors database.Migrate for SQLite so the SQL repositories
// can be exercised without a MySQL server.
const sqliteSchema = `
CREATE TABLE users (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT    NOT NULL UNIQUE,
    password TEXT    NOT NULL,
    is_admin BOOLEAN NOT NULL DEFAULT 0
);
CREATE TABLE equipment (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    name      TEXT    NOT NULL,
    quantity  INTEGER NOT NULL DEFAULT 1,
    available INTEGER NOT NULL DEFAULT 1
);
CREATE TABLE bookings (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    reference      TEXT     NOT NULL UNIQUE,
    name           TEXT     NOT NULL,
    email          TEXT     NOT NULL,
    id_number      TEXT     NOT NULL,
    phone          TEXT     NOT NULL,
    department     TEXT     NOT NULL,
    booking_date   TEXT     NOT NULL,
    booking_time   TEXT     NOT NULL,
    duration       INTEGER  NOT NULL,
    equipment_list TEXT     NOT NULL,
    notes          TEXT     NULL,
    status         TEXT     NOT NULL DEFAULT 'pending',
    created_at     DATETIME NOT NULL
);`

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// a second connection would open a different in-memory database
	db.SetMaxOpenConns(1)
	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLStores(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Stores {
		db := openTestDB(t)
		return Stores{
			Users:     NewUserRepo(db),
			Equipment: NewEquipmentRepo(db),
			Bookings:  NewBookingRepo(db),
		}
	})
}
