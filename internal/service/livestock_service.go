package service

import (
	"context"
	"errors"

	"ternakku/internal/model"
	"ternakku/internal/repository"
)

var (
	ErrLivestockNotFound = errors.New("livestock record not found")
	ErrNotRecordOwner    = errors.New("not the owner of this record")
)

// LivestockService handles livestock record management. Farmers manage
// their own records; officers and admins see whole groups.
type LivestockService struct {
	livestockRepo repository.LivestockRepo
}

// NewLivestockService creates a new livestock service
func NewLivestockService(livestockRepo repository.LivestockRepo) *LivestockService {
	return &LivestockService{livestockRepo: livestockRepo}
}

func (s *LivestockService) Create(ctx context.Context, rec *model.Livestock) (string, error) {
	return s.livestockRepo.Create(ctx, rec)
}

func (s *LivestockService) GetByID(ctx context.Context, id string) (*model.Livestock, error) {
	return s.livestockRepo.GetByID(ctx, id)
}

func (s *LivestockService) ListByOwner(ctx context.Context, ownerID string) ([]model.Livestock, error) {
	return s.livestockRepo.ListByOwner(ctx, ownerID)
}

func (s *LivestockService) ListByGroup(ctx context.Context, groupID string) ([]model.Livestock, error) {
	return s.livestockRepo.ListByGroup(ctx, groupID)
}

// Update replaces a record after checking it belongs to the caller.
// Admins and officers pass an empty callerID to skip the check.
func (s *LivestockService) Update(ctx context.Context, rec *model.Livestock, callerID string) error {
	existing, err := s.livestockRepo.GetByID(ctx, rec.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrLivestockNotFound
	}
	if callerID != "" && existing.OwnerID != callerID {
		return ErrNotRecordOwner
	}
	rec.OwnerID = existing.OwnerID
	rec.GroupID = existing.GroupID
	rec.CreatedAt = existing.CreatedAt
	return s.livestockRepo.Update(ctx, rec)
}

func (s *LivestockService) Delete(ctx context.Context, id, callerID string) error {
	existing, err := s.livestockRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrLivestockNotFound
	}
	if callerID != "" && existing.OwnerID != callerID {
		return ErrNotRecordOwner
	}
	return s.livestockRepo.Delete(ctx, id)
}
