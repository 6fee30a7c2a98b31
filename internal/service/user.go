package service

import (
	"context"
	"fmt"
	"log/slog"

	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/store"
)

type UserService interface {
	List(ctx context.Context, limit int) ([]model.UserSummary, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Search(ctx context.Context, query string, limit int) ([]model.UserSummary, error)
	// Profile resolves a user together with the read-time aggregates:
	// upvotes received over authored content, follower/following counts
	// and the existence-filtered bookmark count.
	Profile(ctx context.Context, id int64) (*model.Profile, error)
	UpdateProfile(ctx context.Context, id int64, upd model.ProfileUpdate) (*model.User, error)
	// RecentActivity returns a user's latest questions and answers.
	RecentActivity(ctx context.Context, id int64, limit int) ([]model.Question, []model.Answer, error)
}

type userService struct {
	userStore     store.UserStore
	questionStore store.QuestionStore
	answerStore   store.AnswerStore
}

func NewUserService(userStore store.UserStore, questionStore store.QuestionStore, answerStore store.AnswerStore) UserService {
	return &userService{
		userStore:     userStore,
		questionStore: questionStore,
		answerStore:   answerStore,
	}
}

func (s *userService) List(ctx context.Context, limit int) ([]model.UserSummary, error) {
	if limit < 1 || limit > 50 {
		limit = 50
	}
	users, err := s.userStore.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return summaries(users), nil
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.userStore.GetByID(ctx, id)
}

func (s *userService) Search(ctx context.Context, query string, limit int) ([]model.UserSummary, error) {
	if limit < 1 || limit > 50 {
		limit = 20
	}
	users, err := s.userStore.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}
	return summaries(users), nil
}

func (s *userService) Profile(ctx context.Context, id int64) (*model.Profile, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// upvotesReceived is summed live on every read so it can never drift
	// from the vote sets.
	questionUpvotes, err := s.questionStore.SumUpvotesByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("summing question upvotes: %w", err)
	}
	answerUpvotes, err := s.answerStore.SumUpvotesByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("summing answer upvotes: %w", err)
	}

	// Bookmarks pointing at deleted questions are excluded from the count.
	bookmarksCount, err := s.questionStore.CountExistingByIDs(ctx, user.Bookmarks)
	if err != nil {
		return nil, fmt.Errorf("counting bookmarks: %w", err)
	}

	return &model.Profile{
		User:            user,
		UpvotesReceived: questionUpvotes + answerUpvotes,
		FollowersCount:  len(user.Followers),
		FollowingCount:  len(user.Following),
		BookmarksCount:  bookmarksCount,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id int64, upd model.ProfileUpdate) (*model.User, error) {
	user, err := s.userStore.UpdateProfile(ctx, id, upd)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update profile",
			"error", err,
			"user_id", id,
		)
		return nil, err
	}
	slog.InfoContext(ctx, "profile updated", "user_id", id)
	return user, nil
}

func (s *userService) RecentActivity(ctx context.Context, id int64, limit int) ([]model.Question, []model.Answer, error) {
	if limit < 1 {
		limit = 10
	}
	questions, err := s.questionStore.ListByAuthor(ctx, id, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("listing questions: %w", err)
	}
	answers, err := s.answerStore.ListByAuthor(ctx, id, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("listing answers: %w", err)
	}
	return questions, answers, nil
}

func summaries(users []model.User) []model.UserSummary {
	out := make([]model.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	return out
}
