// Package services layers the business rules on top of the raw store:
// duplicate prevention on user creation and the membership cascade on
// user deletion. Everything else is delegation.
package services

import (
	"context"
	"errors"

	"github.com/groupdir/backend/internal/models"
	"github.com/groupdir/backend/internal/store"
)

// ErrUserExists signals that a user with the same name, surname, birth
// date and sex is already present.
var ErrUserExists = errors.New("User already exists")

type UserService struct {
	store *store.Store
}

func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.store.ListUsers(ctx, limit, offset)
}

func (s *UserService) ListByGroup(ctx context.Context, groupName string, limit, offset int) ([]models.User, error) {
	return s.store.ListUsersByGroup(ctx, groupName, limit, offset)
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.store.GetUserByID(ctx, id)
}

// Create inserts the user unless an identical one already exists. The
// duplicate check and the insert run in one transaction so two identical
// concurrent creations cannot both pass the check.
func (s *UserService) Create(ctx context.Context, user models.User) (uint, error) {
	var id uint
	err := s.store.WithTx(func(tx *store.Store) error {
		existing, err := tx.FindUsersByFields(ctx, user)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return ErrUserExists
		}
		id, err = tx.InsertUser(ctx, &user)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *UserService) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return s.store.ReplaceUser(ctx, id, updates)
}

// Delete removes the user's membership edges and then the user itself,
// in that order, within one transaction.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.store.WithTx(func(tx *store.Store) error {
		if err := tx.DeleteMembershipsForUser(ctx, id); err != nil {
			return err
		}
		return tx.DeleteUser(ctx, id)
	})
}
