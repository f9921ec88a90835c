package database

import (
	"context"
	"database/sql"
	"fmt"
)

// mysqlSchema creates the three tables used by the SQL repositories.  The
// statements are idempotent so Migrate can run on every start.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
        username VARCHAR(191)    NOT NULL UNIQUE,
        password VARCHAR(255)    NOT NULL,
        is_admin BOOLEAN         NOT NULL DEFAULT FALSE
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS equipment (
        id        BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
        name      VARCHAR(255)    NOT NULL,
        quantity  INT             NOT NULL DEFAULT 1,
        available INT             NOT NULL DEFAULT 1
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS bookings (
        id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
        reference      VARCHAR(32)     NOT NULL UNIQUE,
        name           VARCHAR(255)    NOT NULL,
        email          VARCHAR(255)    NOT NULL,
        id_number      VARCHAR(64)     NOT NULL,
        phone          VARCHAR(64)     NOT NULL,
        department     VARCHAR(64)     NOT NULL,
        booking_date   VARCHAR(10)     NOT NULL,
        booking_time   VARCHAR(5)      NOT NULL,
        duration       TINYINT         NOT NULL,
        equipment_list TEXT            NOT NULL,
        notes          TEXT            NULL,
        status         VARCHAR(16)     NOT NULL DEFAULT 'pending',
        created_at     DATETIME(6)     NOT NULL,
        KEY idx_bookings_status_created (status, created_at)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates any missing tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range mysqlSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
