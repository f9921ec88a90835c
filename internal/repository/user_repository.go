package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/studio-booking/internal/model"
)

// UserRepo mirrors the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and populates its ID.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Username = strings.TrimSpace(u.Username)
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password, is_admin) VALUES (?,?,?)",
		u.Username, u.Password, u.IsAdmin)
	if err != nil {
		if isDuplicate(err) {
			return ErrUsernameExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// GetByUsername fetches a user by exact username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password,is_admin FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.Password, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password,is_admin FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Password, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// HasAdmin reports whether at least one admin account exists.
func (r *UserRepo) HasAdmin(ctx context.Context) (bool, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE is_admin = ?", true).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
