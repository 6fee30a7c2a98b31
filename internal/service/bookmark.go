package service

import (
	"context"
	"fmt"
	"log/slog"

	"queryhub.app/api/common/logger"
	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/store"
)

type BookmarkService interface {
	// Toggle bookmarks the question if the actor has no bookmark for it
	// and removes the bookmark otherwise. The question must exist.
	Toggle(ctx context.Context, actorID, questionID int64) (*model.BookmarkResult, error)
	Status(ctx context.Context, actorID, questionID int64) (bool, error)
	// List returns the actor's bookmarked questions, skipping ids whose
	// question has been deleted since.
	List(ctx context.Context, actorID int64) ([]model.QuestionCard, error)
}

type bookmarkService struct {
	userStore     store.UserStore
	questionStore store.QuestionStore
}

func NewBookmarkService(userStore store.UserStore, questionStore store.QuestionStore) BookmarkService {
	return &bookmarkService{
		userStore:     userStore,
		questionStore: questionStore,
	}
}

func (s *bookmarkService) Toggle(ctx context.Context, actorID, questionID int64) (*model.BookmarkResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "queryhub.service.bookmark"})

	if _, err := s.questionStore.GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	actor, err := s.userStore.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	op := store.SetAdd
	if containsID(actor.Bookmarks, questionID) {
		op = store.SetRemove
	}

	if err := s.userStore.SaveRelation(ctx, actorID, store.RelationBookmarks, op, questionID); err != nil {
		return nil, fmt.Errorf("updating bookmarks: %w", err)
	}

	slog.DebugContext(ctx, "bookmark toggled",
		"user_id", actorID,
		"question_id", questionID,
		"bookmarked", op == store.SetAdd,
	)
	return &model.BookmarkResult{Bookmarked: op == store.SetAdd}, nil
}

func (s *bookmarkService) Status(ctx context.Context, actorID, questionID int64) (bool, error) {
	actor, err := s.userStore.GetByID(ctx, actorID)
	if err != nil {
		return false, err
	}
	return containsID(actor.Bookmarks, questionID), nil
}

func (s *bookmarkService) List(ctx context.Context, actorID int64) ([]model.QuestionCard, error) {
	actor, err := s.userStore.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if len(actor.Bookmarks) == 0 {
		return nil, nil
	}

	// ListByIDs only returns questions that still exist; stale bookmark
	// ids drop out here rather than being eagerly cleaned up.
	questions, err := s.questionStore.ListByIDs(ctx, actor.Bookmarks)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarked questions: %w", err)
	}
	return resolveQuestionCards(ctx, s.userStore, questions)
}
