package services

import (
	"context"

	"github.com/groupdir/backend/internal/models"
	"github.com/groupdir/backend/internal/store"
)

// GroupService is pure delegation: groups carry no uniqueness rule, and
// deleting a group deliberately does not cascade to its membership
// edges (only user deletion does).
type GroupService struct {
	store *store.Store
}

func NewGroupService(st *store.Store) *GroupService {
	return &GroupService{store: st}
}

func (s *GroupService) List(ctx context.Context) ([]models.Group, error) {
	return s.store.ListGroups(ctx)
}

func (s *GroupService) Get(ctx context.Context, id int64) (*models.Group, error) {
	return s.store.GetGroupByID(ctx, id)
}

func (s *GroupService) Create(ctx context.Context, group models.Group) (uint, error) {
	return s.store.InsertGroup(ctx, &group)
}

func (s *GroupService) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return s.store.ReplaceGroup(ctx, id, updates)
}

func (s *GroupService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteGroup(ctx, id)
}

func (s *GroupService) AddMember(ctx context.Context, userID, groupID int64) error {
	return s.store.AddMembership(ctx, userID, groupID)
}

func (s *GroupService) RemoveMember(ctx context.Context, userID, groupID int64) error {
	return s.store.RemoveMembership(ctx, userID, groupID)
}

func (s *GroupService) ListForUser(ctx context.Context, userID int64) ([]models.Group, error) {
	return s.store.ListGroupsForUser(ctx, userID)
}
