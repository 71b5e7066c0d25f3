package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ReeceWin/FounderMatchaV2/internal/domain/match"
	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
	"github.com/ReeceWin/FounderMatchaV2/internal/repository"
)

type LifecycleUsecase interface {
	CreateMatch(ctx context.Context, founderID, developerID, initiatedBy string) (match.Record, error)
	UpdateStatus(ctx context.Context, matchID uuid.UUID, status, updatedBy string) (match.Record, error)
	GetHistory(ctx context.Context, participantID, role string) ([]match.Record, error)
}

type Lifecycle struct {
	profiles repository.ProfileRepository
	matches  repository.MatchRepository
	scorer   MatchUsecase
	now      func() time.Time
}

func NewLifecycleUsecase(profiles repository.ProfileRepository, matches repository.MatchRepository, scorer MatchUsecase) *Lifecycle {
	return &Lifecycle{
		profiles: profiles,
		matches:  matches,
		scorer:   scorer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *Lifecycle) CreateMatch(ctx context.Context, founderID, developerID, initiatedBy string) (match.Record, error) {
	founderID = strings.TrimSpace(founderID)
	developerID = strings.TrimSpace(developerID)
	initiatedBy = strings.TrimSpace(initiatedBy)
	if founderID == "" || developerID == "" || initiatedBy == "" {
		return match.Record{}, ErrInvalidInput
	}

	scores, err := u.scorer.CalculateMatch(ctx, founderID, developerID)
	if err != nil {
		return match.Record{}, err
	}

	founder, err := u.profiles.GetByID(ctx, founderID)
	if err != nil {
		return match.Record{}, ErrInternal
	}
	developer, err := u.profiles.GetByID(ctx, developerID)
	if err != nil {
		return match.Record{}, ErrInternal
	}

	rec := match.New(founder, developer, scores, initiatedBy, u.now())
	if err := u.matches.Insert(ctx, rec); err != nil {
		return match.Record{}, ErrInternal
	}
	return rec, nil
}

func (u *Lifecycle) UpdateStatus(ctx context.Context, matchID uuid.UUID, status, updatedBy string) (match.Record, error) {
	status = strings.TrimSpace(status)
	updatedBy = strings.TrimSpace(updatedBy)
	if matchID == uuid.Nil || status == "" || updatedBy == "" {
		return match.Record{}, ErrInvalidInput
	}

	entry := match.StatusEntry{
		Status:    status,
		Timestamp: u.now(),
		UpdatedBy: updatedBy,
	}
	err := u.matches.AppendStatus(ctx, matchID, entry)
	if errors.Is(err, repository.ErrMatchNotFound) {
		return match.Record{}, ErrMatchNotFound
	}
	if err != nil {
		return match.Record{}, ErrInternal
	}

	rec, err := u.matches.GetByID(ctx, matchID)
	if errors.Is(err, repository.ErrMatchNotFound) {
		return match.Record{}, ErrMatchNotFound
	}
	if err != nil {
		return match.Record{}, ErrInternal
	}
	return rec, nil
}

func (u *Lifecycle) GetHistory(ctx context.Context, participantID, role string) ([]match.Record, error) {
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return nil, ErrInvalidInput
	}

	var (
		recs []match.Record
		err  error
	)
	switch strings.ToLower(strings.TrimSpace(role)) {
	case string(profile.RoleFounder):
		recs, err = u.matches.FindByFounder(ctx, participantID)
	case string(profile.RoleDeveloper):
		recs, err = u.matches.FindByDeveloper(ctx, participantID)
	case "", "any":
		recs, err = u.matches.FindByParticipant(ctx, participantID)
	default:
		return nil, ErrInvalidInput
	}
	if err != nil {
		return nil, ErrInternal
	}
	return recs, nil
}
