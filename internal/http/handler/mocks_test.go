package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"

	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/service"
	"queryhub.app/api/internal/store"
)

// perform runs a request against the engine and returns the recorder.
// A non-empty token is sent as a bearer Authorization header.
func perform(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	Expect(json.Unmarshal(w.Body.Bytes(), &out)).To(Succeed())
	return out
}

// authFor accepts any bearer token as the given user.
func authFor(userID int64) *mockAuthService {
	return &mockAuthService{
		validateTokenFn: func(string) (int64, error) { return userID, nil },
	}
}

type mockAuthService struct {
	registerFn      func(ctx context.Context, name, email, password string) (*model.User, string, error)
	loginFn         func(ctx context.Context, email, password string) (*model.User, string, error)
	validateTokenFn func(token string) (int64, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, name, email, password)
	}
	return nil, "", service.ErrEmailTaken
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return nil, "", service.ErrInvalidCredentials
}

func (m *mockAuthService) ValidateToken(token string) (int64, error) {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(token)
	}
	return 0, service.ErrInvalidToken
}

type mockUserService struct {
	listFn           func(ctx context.Context, limit int) ([]model.UserSummary, error)
	getFn            func(ctx context.Context, id int64) (*model.User, error)
	searchFn         func(ctx context.Context, query string, limit int) ([]model.UserSummary, error)
	profileFn        func(ctx context.Context, id int64) (*model.Profile, error)
	updateProfileFn  func(ctx context.Context, id int64, upd model.ProfileUpdate) (*model.User, error)
	recentActivityFn func(ctx context.Context, id int64, limit int) ([]model.Question, []model.Answer, error)
}

func (m *mockUserService) List(ctx context.Context, limit int) ([]model.UserSummary, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockUserService) Get(ctx context.Context, id int64) (*model.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserService) Search(ctx context.Context, query string, limit int) ([]model.UserSummary, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockUserService) Profile(ctx context.Context, id int64) (*model.Profile, error) {
	if m.profileFn != nil {
		return m.profileFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserService) UpdateProfile(ctx context.Context, id int64, upd model.ProfileUpdate) (*model.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, id, upd)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserService) RecentActivity(ctx context.Context, id int64, limit int) ([]model.Question, []model.Answer, error) {
	if m.recentActivityFn != nil {
		return m.recentActivityFn(ctx, id, limit)
	}
	return nil, nil, nil
}

type mockQuestionService struct {
	createFn       func(ctx context.Context, authorID int64, in service.QuestionInput) (*model.Question, error)
	listFn         func(ctx context.Context, f store.QuestionFilter) (*model.QuestionPage, error)
	getFn          func(ctx context.Context, id int64) (*service.QuestionView, error)
	updateFn       func(ctx context.Context, questionID, actorID int64, in service.QuestionInput) (*model.Question, error)
	deleteFn       func(ctx context.Context, questionID, actorID int64) error
	listByAuthorFn func(ctx context.Context, authorID int64, limit int) ([]model.QuestionCard, error)
	searchFn       func(ctx context.Context, query string, limit int) ([]model.QuestionCard, error)
}

func (m *mockQuestionService) Create(ctx context.Context, authorID int64, in service.QuestionInput) (*model.Question, error) {
	if m.createFn != nil {
		return m.createFn(ctx, authorID, in)
	}
	return nil, store.ErrNotFound
}

func (m *mockQuestionService) List(ctx context.Context, f store.QuestionFilter) (*model.QuestionPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return &model.QuestionPage{}, nil
}

func (m *mockQuestionService) Get(ctx context.Context, id int64) (*service.QuestionView, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockQuestionService) Update(ctx context.Context, questionID, actorID int64, in service.QuestionInput) (*model.Question, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, questionID, actorID, in)
	}
	return nil, store.ErrNotFound
}

func (m *mockQuestionService) Delete(ctx context.Context, questionID, actorID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, questionID, actorID)
	}
	return store.ErrNotFound
}

func (m *mockQuestionService) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.QuestionCard, error) {
	if m.listByAuthorFn != nil {
		return m.listByAuthorFn(ctx, authorID, limit)
	}
	return nil, nil
}

func (m *mockQuestionService) Search(ctx context.Context, query string, limit int) ([]model.QuestionCard, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return nil, nil
}

type mockVoteService struct {
	applyFn func(ctx context.Context, kind model.VoteTargetKind, targetID, actorID int64, direction model.VoteDirection) (*model.VoteResult, error)
}

func (m *mockVoteService) Apply(ctx context.Context, kind model.VoteTargetKind, targetID, actorID int64, direction model.VoteDirection) (*model.VoteResult, error) {
	if m.applyFn != nil {
		return m.applyFn(ctx, kind, targetID, actorID, direction)
	}
	return nil, store.ErrNotFound
}

type mockAnswerService struct {
	createFn       func(ctx context.Context, questionID, authorID int64, content string) (*model.Answer, error)
	updateFn       func(ctx context.Context, answerID, actorID int64, content string) (*model.Answer, error)
	deleteFn       func(ctx context.Context, answerID, actorID int64) error
	listByAuthorFn func(ctx context.Context, authorID int64, limit int) ([]model.AnswerCard, error)
	toggleBestFn   func(ctx context.Context, answerID, actorID int64) (*model.Answer, error)
	addCommentFn   func(ctx context.Context, answerID, authorID int64, content string) (*model.Answer, error)
}

func (m *mockAnswerService) Create(ctx context.Context, questionID, authorID int64, content string) (*model.Answer, error) {
	if m.createFn != nil {
		return m.createFn(ctx, questionID, authorID, content)
	}
	return nil, store.ErrNotFound
}

func (m *mockAnswerService) Update(ctx context.Context, answerID, actorID int64, content string) (*model.Answer, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, answerID, actorID, content)
	}
	return nil, store.ErrNotFound
}

func (m *mockAnswerService) Delete(ctx context.Context, answerID, actorID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, answerID, actorID)
	}
	return store.ErrNotFound
}

func (m *mockAnswerService) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.AnswerCard, error) {
	if m.listByAuthorFn != nil {
		return m.listByAuthorFn(ctx, authorID, limit)
	}
	return nil, nil
}

func (m *mockAnswerService) ToggleBest(ctx context.Context, answerID, actorID int64) (*model.Answer, error) {
	if m.toggleBestFn != nil {
		return m.toggleBestFn(ctx, answerID, actorID)
	}
	return nil, store.ErrNotFound
}

func (m *mockAnswerService) AddComment(ctx context.Context, answerID, authorID int64, content string) (*model.Answer, error) {
	if m.addCommentFn != nil {
		return m.addCommentFn(ctx, answerID, authorID, content)
	}
	return nil, store.ErrNotFound
}

type mockBookmarkService struct {
	toggleFn func(ctx context.Context, actorID, questionID int64) (*model.BookmarkResult, error)
	statusFn func(ctx context.Context, actorID, questionID int64) (bool, error)
	listFn   func(ctx context.Context, actorID int64) ([]model.QuestionCard, error)
}

func (m *mockBookmarkService) Toggle(ctx context.Context, actorID, questionID int64) (*model.BookmarkResult, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, actorID, questionID)
	}
	return nil, store.ErrNotFound
}

func (m *mockBookmarkService) Status(ctx context.Context, actorID, questionID int64) (bool, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, actorID, questionID)
	}
	return false, nil
}

func (m *mockBookmarkService) List(ctx context.Context, actorID int64) ([]model.QuestionCard, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actorID)
	}
	return nil, nil
}

type mockFollowService struct {
	toggleFn    func(ctx context.Context, actorID, targetID int64) (*model.FollowResult, error)
	statusFn    func(ctx context.Context, actorID, targetID int64) (bool, error)
	followersFn func(ctx context.Context, userID int64) ([]model.UserSummary, error)
	followingFn func(ctx context.Context, userID int64) ([]model.UserSummary, error)
	statsFn     func(ctx context.Context, userID int64) (*service.FollowStats, error)
	feedFn      func(ctx context.Context, actorID int64) ([]model.QuestionCard, error)
}

func (m *mockFollowService) Toggle(ctx context.Context, actorID, targetID int64) (*model.FollowResult, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, actorID, targetID)
	}
	return nil, store.ErrNotFound
}

func (m *mockFollowService) Status(ctx context.Context, actorID, targetID int64) (bool, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, actorID, targetID)
	}
	return false, nil
}

func (m *mockFollowService) Followers(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	if m.followersFn != nil {
		return m.followersFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFollowService) Following(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	if m.followingFn != nil {
		return m.followingFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFollowService) Stats(ctx context.Context, userID int64) (*service.FollowStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, userID)
	}
	return &service.FollowStats{}, nil
}

func (m *mockFollowService) Feed(ctx context.Context, actorID int64) ([]model.QuestionCard, error) {
	if m.feedFn != nil {
		return m.feedFn(ctx, actorID)
	}
	return nil, nil
}

type mockTagService struct {
	trendingFn func(ctx context.Context, limit int) ([]model.TagStat, error)
	allFn      func(ctx context.Context) ([]model.TagStat, error)
}

func (m *mockTagService) Trending(ctx context.Context, limit int) ([]model.TagStat, error) {
	if m.trendingFn != nil {
		return m.trendingFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockTagService) All(ctx context.Context) ([]model.TagStat, error) {
	if m.allFn != nil {
		return m.allFn(ctx)
	}
	return nil, nil
}
