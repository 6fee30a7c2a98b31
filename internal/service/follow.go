package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"queryhub.app/api/common/logger"
	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/store"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

// FollowStats is the count pair for a user's follow edges.
type FollowStats struct {
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
}

type FollowService interface {
	// Toggle follows targetID if the actor does not follow them yet and
	// unfollows otherwise. Both edge sides (actor.following and
	// target.followers) are edited with idempotent atomic set ops, so a
	// retry after a partial failure converges instead of corrupting
	// counts.
	Toggle(ctx context.Context, actorID, targetID int64) (*model.FollowResult, error)
	Status(ctx context.Context, actorID, targetID int64) (bool, error)
	Followers(ctx context.Context, userID int64) ([]model.UserSummary, error)
	Following(ctx context.Context, userID int64) ([]model.UserSummary, error)
	Stats(ctx context.Context, userID int64) (*FollowStats, error)
	// Feed returns recent questions authored by users the actor follows.
	Feed(ctx context.Context, actorID int64) ([]model.QuestionCard, error)
}

const feedLimit = 50

type followService struct {
	userStore     store.UserStore
	questionStore store.QuestionStore
}

func NewFollowService(userStore store.UserStore, questionStore store.QuestionStore) FollowService {
	return &followService{
		userStore:     userStore,
		questionStore: questionStore,
	}
}

func (s *followService) Toggle(ctx context.Context, actorID, targetID int64) (*model.FollowResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "queryhub.service.follow"})

	if actorID == targetID {
		return nil, ErrSelfFollow
	}

	actor, err := s.userStore.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	target, err := s.userStore.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	op := store.SetAdd
	if containsID(actor.Following, targetID) {
		op = store.SetRemove
	}

	// Two single-document updates. Order matters for retries: the
	// actor's own edge is written last so a partial failure is repaired
	// by toggling again.
	if err := s.userStore.SaveRelation(ctx, targetID, store.RelationFollowers, op, actorID); err != nil {
		return nil, fmt.Errorf("updating followers edge: %w", err)
	}
	if err := s.userStore.SaveRelation(ctx, actorID, store.RelationFollowing, op, targetID); err != nil {
		return nil, fmt.Errorf("updating following edge: %w", err)
	}

	// Counts are re-read after the mutation rather than computed from
	// the stale loads above: the target's follower count and the
	// actor's following count.
	target, err = s.userStore.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("re-reading target: %w", err)
	}
	actor, err = s.userStore.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("re-reading actor: %w", err)
	}

	slog.InfoContext(ctx, "follow toggled",
		"user_id", actorID,
		"target_id", targetID,
		"following", op == store.SetAdd,
	)

	return &model.FollowResult{
		Following:      op == store.SetAdd,
		FollowersCount: len(target.Followers),
		FollowingCount: len(actor.Following),
	}, nil
}

func (s *followService) Status(ctx context.Context, actorID, targetID int64) (bool, error) {
	actor, err := s.userStore.GetByID(ctx, actorID)
	if err != nil {
		return false, err
	}
	return containsID(actor.Following, targetID), nil
}

func (s *followService) Followers(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, user.Followers)
}

func (s *followService) Following(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, user.Following)
}

func (s *followService) Stats(ctx context.Context, userID int64) (*FollowStats, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &FollowStats{
		FollowersCount: len(user.Followers),
		FollowingCount: len(user.Following),
	}, nil
}

func (s *followService) Feed(ctx context.Context, actorID int64) ([]model.QuestionCard, error) {
	actor, err := s.userStore.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if len(actor.Following) == 0 {
		return nil, nil
	}

	questions, err := s.questionStore.ListByAuthors(ctx, actor.Following, feedLimit)
	if err != nil {
		return nil, fmt.Errorf("listing feed questions: %w", err)
	}

	return resolveQuestionCards(ctx, s.userStore, questions)
}

func (s *followService) resolve(ctx context.Context, ids []int64) ([]model.UserSummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	users, err := s.userStore.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolving users: %w", err)
	}
	return summaries(users), nil
}
