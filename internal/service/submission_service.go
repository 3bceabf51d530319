package service

import (
	"context"
	"errors"
	"log"
	"time"

	"ternakku/internal/model"
	"ternakku/internal/repository"
)

var ErrDuplicateSubmission = errors.New("respondent already submitted for this period")

// SubmissionService handles questionnaire submission intake. A
// respondent fills the questionnaire once per period; after a
// successful create the period's leaderboard is refreshed and pushed
// out.
type SubmissionService struct {
	submissionRepo repository.SubmissionRepo
	groupRepo      repository.GroupRepo
	reportSvc      *ReportService
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	submissionRepo repository.SubmissionRepo,
	groupRepo repository.GroupRepo,
	reportSvc *ReportService,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		groupRepo:      groupRepo,
		reportSvc:      reportSvc,
	}
}

// Create stores a new submission. The year defaults to the current
// calendar year here, at the edge, so the scoring core can stay
// deterministic.
func (s *SubmissionService) Create(ctx context.Context, sub *model.Submission) (string, error) {
	if sub.Year == 0 {
		sub.Year = time.Now().Year()
	}

	if sub.RespondentID != "" {
		exists, err := s.submissionRepo.ExistsForPeriod(ctx, sub.RespondentID, sub.Period, sub.Year)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrDuplicateSubmission
		}
	}

	// Embed the group name so reports don't need a join for the common
	// case; the roster stays the fallback for records missing it.
	if sub.GroupID != "" && sub.GroupName == "" {
		group, err := s.groupRepo.GetByID(ctx, sub.GroupID)
		if err == nil && group != nil {
			sub.GroupName = group.Name
		}
	}

	id, err := s.submissionRepo.Create(ctx, sub)
	if err != nil {
		return "", err
	}

	// The submission is stored at this point; a failed refresh only
	// delays the next dashboard update.
	if err := s.reportSvc.Refresh(ctx, sub.Period, sub.Year); err != nil {
		log.Printf("leaderboard refresh after submission %s failed: %v", id, err)
	}
	return id, nil
}

// GetByID returns one submission, nil when absent
func (s *SubmissionService) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	return s.submissionRepo.GetByID(ctx, id)
}

// List returns submissions matching the store-level filter
func (s *SubmissionService) List(ctx context.Context, filter repository.SubmissionFilter) ([]model.Submission, error) {
	return s.submissionRepo.List(ctx, filter)
}
