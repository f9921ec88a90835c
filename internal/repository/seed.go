package repository

import (
	"context"
	"fmt"

	"github.com/iliyamo/studio-booking/internal/model"
)

// Seed creates the admin account and the initial equipment inventory when
// no admin exists yet.  It reports whether anything was inserted so callers
// can log the first start.
func Seed(ctx context.Context, s Stores, admin model.User, equipment []model.Equipment) (bool, error) {
	ok, err := s.Users.HasAdmin(ctx)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	if ok {
		return false, nil
	}
	admin.IsAdmin = true
	if err := s.Users.Create(ctx, &admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	for i := range equipment {
		e := equipment[i]
		if err := s.Equipment.Create(ctx, &e); err != nil {
			return false, fmt.Errorf("create equipment %q: %w", e.Name, err)
		}
	}
	return true, nil
}
