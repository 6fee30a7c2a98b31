package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"queryhub.app/api/common/id"
	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/search"
	"queryhub.app/api/internal/store"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrNotAuthor       = errors.New("only the author may modify this")
	ErrEmptyContent    = errors.New("content must not be empty")
)

type QuestionInput struct {
	Title       string
	Content     string
	Category    model.Category
	Tags        []string
	IsAnonymous bool
}

// QuestionView is a question with author and answers resolved.
type QuestionView struct {
	Question *model.Question
	Author   *model.UserSummary
	Answers  []model.AnswerCard
}

type QuestionService interface {
	Create(ctx context.Context, authorID int64, in QuestionInput) (*model.Question, error)
	List(ctx context.Context, f store.QuestionFilter) (*model.QuestionPage, error)
	// Get returns the question after counting the view, with answers
	// sorted best-first then newest.
	Get(ctx context.Context, id int64) (*QuestionView, error)
	Update(ctx context.Context, questionID, actorID int64, in QuestionInput) (*model.Question, error)
	Delete(ctx context.Context, questionID, actorID int64) error
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.QuestionCard, error)
	// Search queries the full-text index when available and falls back
	// to a database text scan otherwise.
	Search(ctx context.Context, query string, limit int) ([]model.QuestionCard, error)
}

type questionService struct {
	questionStore store.QuestionStore
	answerStore   store.AnswerStore
	userStore     store.UserStore
	index         search.QuestionIndex
}

func NewQuestionService(
	questionStore store.QuestionStore,
	answerStore store.AnswerStore,
	userStore store.UserStore,
	index search.QuestionIndex,
) QuestionService {
	return &questionService{
		questionStore: questionStore,
		answerStore:   answerStore,
		userStore:     userStore,
		index:         index,
	}
}

func (s *questionService) Create(ctx context.Context, authorID int64, in QuestionInput) (*model.Question, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return nil, ErrEmptyContent
	}
	if !in.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	question := &model.Question{
		ID:          id.New(),
		Title:       strings.TrimSpace(in.Title),
		Content:     in.Content,
		AuthorID:    authorID,
		Category:    in.Category,
		Tags:        normalizeTags(in.Tags),
		IsAnonymous: in.IsAnonymous,
	}

	if err := s.questionStore.Create(ctx, question); err != nil {
		slog.ErrorContext(ctx, "failed to create question",
			"error", err,
			"user_id", authorID,
		)
		return nil, fmt.Errorf("creating question: %w", err)
	}

	if err := s.userStore.IncrementCounter(ctx, authorID, store.CounterQuestions, 1); err != nil {
		slog.ErrorContext(ctx, "failed to bump questions count",
			"error", err,
			"user_id", authorID,
		)
	}

	if err := s.index.Index(ctx, question); err != nil {
		slog.WarnContext(ctx, "failed to index question",
			"error", err,
			"question_id", question.ID,
		)
	}

	slog.InfoContext(ctx, "question created", "question_id", question.ID, "user_id", authorID)
	return question, nil
}

func (s *questionService) List(ctx context.Context, f store.QuestionFilter) (*model.QuestionPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 50 {
		f.Limit = 10
	}

	questions, total, err := s.questionStore.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}

	cards, err := s.toCards(ctx, questions)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(f.Limit)
	if total%int64(f.Limit) != 0 {
		totalPages++
	}
	return &model.QuestionPage{
		Questions:      cards,
		TotalQuestions: total,
		TotalPages:     totalPages,
		CurrentPage:    f.Page,
	}, nil
}

func (s *questionService) Get(ctx context.Context, questionID int64) (*QuestionView, error) {
	question, err := s.questionStore.GetAndCountView(ctx, questionID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answerStore.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}

	authorIDs := make([]int64, 0, len(answers)+1)
	if !question.IsAnonymous {
		authorIDs = append(authorIDs, question.AuthorID)
	}
	for i := range answers {
		authorIDs = append(authorIDs, answers[i].AuthorID)
	}
	authors, err := s.authorIndex(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	view := &QuestionView{Question: question}
	if !question.IsAnonymous {
		view.Author = authors[question.AuthorID]
	}
	view.Answers = make([]model.AnswerCard, 0, len(answers))
	for i := range answers {
		view.Answers = append(view.Answers, model.AnswerCard{
			Answer: &answers[i],
			Author: authors[answers[i].AuthorID],
		})
	}
	return view, nil
}

func (s *questionService) Update(ctx context.Context, questionID, actorID int64, in QuestionInput) (*model.Question, error) {
	question, err := s.questionStore.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.AuthorID != actorID {
		return nil, ErrNotAuthor
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return nil, ErrEmptyContent
	}
	if !in.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	question.Title = strings.TrimSpace(in.Title)
	question.Content = in.Content
	question.Category = in.Category
	question.Tags = normalizeTags(in.Tags)
	question.IsAnonymous = in.IsAnonymous

	if err := s.questionStore.Update(ctx, question); err != nil {
		return nil, fmt.Errorf("updating question: %w", err)
	}

	if err := s.index.Index(ctx, question); err != nil {
		slog.WarnContext(ctx, "failed to reindex question",
			"error", err,
			"question_id", questionID,
		)
	}
	return question, nil
}

func (s *questionService) Delete(ctx context.Context, questionID, actorID int64) error {
	question, err := s.questionStore.GetByID(ctx, questionID)
	if err != nil {
		return err
	}
	if question.AuthorID != actorID {
		return ErrNotAuthor
	}

	// Cascade: remove the answers first, then adjust every answer
	// author's counter. Bookmarks referencing the question stay in user
	// documents; reads filter them against existing questions.
	answers, err := s.answerStore.DeleteByQuestion(ctx, questionID)
	if err != nil {
		return fmt.Errorf("deleting answers: %w", err)
	}
	for i := range answers {
		if err := s.userStore.IncrementCounter(ctx, answers[i].AuthorID, store.CounterAnswers, -1); err != nil {
			slog.ErrorContext(ctx, "failed to decrement answers count",
				"error", err,
				"user_id", answers[i].AuthorID,
			)
		}
	}

	if err := s.questionStore.Delete(ctx, questionID); err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}

	if err := s.userStore.IncrementCounter(ctx, question.AuthorID, store.CounterQuestions, -1); err != nil {
		slog.ErrorContext(ctx, "failed to decrement questions count",
			"error", err,
			"user_id", question.AuthorID,
		)
	}

	if err := s.index.Remove(ctx, questionID); err != nil {
		slog.WarnContext(ctx, "failed to remove question from index",
			"error", err,
			"question_id", questionID,
		)
	}

	slog.InfoContext(ctx, "question deleted",
		"question_id", questionID,
		"user_id", actorID,
		"answers_removed", len(answers),
	)
	return nil
}

func (s *questionService) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.QuestionCard, error) {
	questions, err := s.questionStore.ListByAuthor(ctx, authorID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	return s.toCards(ctx, questions)
}

func (s *questionService) Search(ctx context.Context, query string, limit int) ([]model.QuestionCard, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	if s.index.Enabled() {
		ids, err := s.index.Search(ctx, query, limit)
		if err == nil {
			questions, err := s.questionStore.ListByIDs(ctx, ids)
			if err != nil {
				return nil, fmt.Errorf("resolving search results: %w", err)
			}
			return s.toCards(ctx, questions)
		}
		slog.WarnContext(ctx, "index search failed, falling back to store", "error", err)
	}

	questions, err := s.questionStore.SearchText(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching questions: %w", err)
	}
	return s.toCards(ctx, questions)
}

func (s *questionService) toCards(ctx context.Context, questions []model.Question) ([]model.QuestionCard, error) {
	return resolveQuestionCards(ctx, s.userStore, questions)
}

func (s *questionService) authorIndex(ctx context.Context, ids []int64) (map[int64]*model.UserSummary, error) {
	return authorIndex(ctx, s.userStore, ids)
}

// resolveQuestionCards resolves authors for a batch of questions.
// Anonymous questions keep a nil author card.
func resolveQuestionCards(ctx context.Context, users store.UserStore, questions []model.Question) ([]model.QuestionCard, error) {
	authorIDs := make([]int64, 0, len(questions))
	for i := range questions {
		if !questions[i].IsAnonymous {
			authorIDs = append(authorIDs, questions[i].AuthorID)
		}
	}
	authors, err := authorIndex(ctx, users, authorIDs)
	if err != nil {
		return nil, err
	}

	cards := make([]model.QuestionCard, 0, len(questions))
	for i := range questions {
		card := model.QuestionCard{Question: &questions[i]}
		if !questions[i].IsAnonymous {
			card.Author = authors[questions[i].AuthorID]
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func authorIndex(ctx context.Context, users store.UserStore, ids []int64) (map[int64]*model.UserSummary, error) {
	if len(ids) == 0 {
		return map[int64]*model.UserSummary{}, nil
	}
	resolved, err := users.GetByIDs(ctx, dedupeIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("resolving authors: %w", err)
	}
	index := make(map[int64]*model.UserSummary, len(resolved))
	for i := range resolved {
		summary := resolved[i].Summary()
		index[resolved[i].ID] = &summary
	}
	return index, nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// normalizeTags lowercases, trims and dedupes tags.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
