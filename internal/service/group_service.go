package service

import (
	"context"
	"errors"

	"ternakku/internal/model"
	"ternakku/internal/repository"
)

var ErrGroupNotFound = errors.New("group not found")

// GroupService handles farmer group management
type GroupService struct {
	groupRepo repository.GroupRepo
	userRepo  repository.UserRepo
}

// NewGroupService creates a new group service
func NewGroupService(groupRepo repository.GroupRepo, userRepo repository.UserRepo) *GroupService {
	return &GroupService{groupRepo: groupRepo, userRepo: userRepo}
}

func (s *GroupService) Create(ctx context.Context, group *model.Group) (string, error) {
	return s.groupRepo.Create(ctx, group)
}

func (s *GroupService) GetByID(ctx context.Context, id string) (*model.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

func (s *GroupService) List(ctx context.Context) ([]model.Group, error) {
	return s.groupRepo.List(ctx)
}

func (s *GroupService) Update(ctx context.Context, group *model.Group) error {
	existing, err := s.groupRepo.GetByID(ctx, group.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrGroupNotFound
	}
	group.CreatedAt = existing.CreatedAt
	return s.groupRepo.Update(ctx, group)
}

func (s *GroupService) Delete(ctx context.Context, id string) error {
	return s.groupRepo.Delete(ctx, id)
}

// Members returns the accounts belonging to a group
func (s *GroupService) Members(ctx context.Context, groupID string) ([]model.User, error) {
	return s.userRepo.ListByGroup(ctx, groupID)
}
