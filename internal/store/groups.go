package store

import (
	"context"
	"errors"

	"github.com/groupdir/backend/internal/models"
	"gorm.io/gorm"
)

func (s *Store) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups := make([]models.Group, 0)
	if err := s.db.WithContext(ctx).Find(&groups).Error; err != nil {
		return nil, wrap("list groups", err)
	}
	return groups, nil
}

// GetGroupByID returns (nil, nil) when no row matches.
func (s *Store) GetGroupByID(ctx context.Context, id int64) (*models.Group, error) {
	var group models.Group
	err := s.db.WithContext(ctx).First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get group", err)
	}
	return &group, nil
}

func (s *Store) InsertGroup(ctx context.Context, group *models.Group) (uint, error) {
	if err := s.db.WithContext(ctx).Create(group).Error; err != nil {
		return 0, wrap("insert group", err)
	}
	return group.ID, nil
}

// ReplaceGroup overwrites only the columns present in updates; a missing
// row is a silent no-op.
func (s *Store) ReplaceGroup(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Model(&models.Group{}).
		Where("id = ?", id).
		Updates(updates).Error
	return wrap("replace group", err)
}

// DeleteGroup removes the group row only. Membership edges referencing
// the group are left in place.
func (s *Store) DeleteGroup(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Delete(&models.Group{}, "id = ?", id).Error
	return wrap("delete group", err)
}

func (s *Store) AddMembership(ctx context.Context, userID, groupID int64) error {
	edge := models.Membership{UserID: uint(userID), GroupID: uint(groupID)}
	err := s.db.WithContext(ctx).Create(&edge).Error
	return wrap("add membership", err)
}

// RemoveMembership deletes every matching edge; removing a pair that was
// never inserted succeeds and changes nothing.
func (s *Store) RemoveMembership(ctx context.Context, userID, groupID int64) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Delete(&models.Membership{}).Error
	return wrap("remove membership", err)
}

func (s *Store) ListGroupsForUser(ctx context.Context, userID int64) ([]models.Group, error) {
	groups := make([]models.Group, 0)
	err := s.db.WithContext(ctx).
		Model(&models.Group{}).
		Joins("JOIN user_to_group ON user_to_group.group_id = user_groups.id").
		Where("user_to_group.user_id = ?", userID).
		Find(&groups).Error
	if err != nil {
		return nil, wrap("list groups for user", err)
	}
	return groups, nil
}
