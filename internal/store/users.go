package store

import (
	"context"
	"errors"

	"github.com/groupdir/backend/internal/models"
	"gorm.io/gorm"
)

func (s *Store) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	users := make([]models.User, 0)
	err := s.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, wrap("list users", err)
	}
	return users, nil
}

func (s *Store) ListUsersByGroup(ctx context.Context, groupName string, limit, offset int) ([]models.User, error) {
	users := make([]models.User, 0)
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN user_to_group ON user_to_group.user_id = users.id").
		Joins("JOIN user_groups ON user_groups.id = user_to_group.group_id").
		Where("user_groups.name = ?", groupName).
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, wrap("list users by group", err)
	}
	return users, nil
}

// GetUserByID returns (nil, nil) when no row matches; absence is not an
// error.
func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get user", err)
	}
	return &user, nil
}

// FindUsersByFields matches on all four payload fields at once. Used for
// duplicate detection before insert.
func (s *Store) FindUsersByFields(ctx context.Context, user models.User) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("name = ? AND surname = ? AND birth_date = ? AND sex = ?",
			user.Name, user.Surname, user.BirthDate, user.Sex).
		Find(&users).Error
	if err != nil {
		return nil, wrap("find users by fields", err)
	}
	return users, nil
}

func (s *Store) InsertUser(ctx context.Context, user *models.User) (uint, error) {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return 0, wrap("insert user", err)
	}
	return user.ID, nil
}

// ReplaceUser overwrites only the columns present in updates. A missing
// row is a silent no-op, not an error.
func (s *Store) ReplaceUser(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates).Error
	return wrap("replace user", err)
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
	return wrap("delete user", err)
}

// DeleteMembershipsForUser removes every edge referencing the user.
// Idempotent: deleting zero rows succeeds.
func (s *Store) DeleteMembershipsForUser(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ?", id).
		Delete(&models.Membership{}).Error
	return wrap("delete memberships for user", err)
}
