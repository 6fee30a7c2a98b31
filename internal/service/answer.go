package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"queryhub.app/api/common/id"
	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/store"
)

var ErrNotQuestionAuthor = errors.New("only the question author may do this")

type AnswerService interface {
	Create(ctx context.Context, questionID, authorID int64, content string) (*model.Answer, error)
	Update(ctx context.Context, answerID, actorID int64, content string) (*model.Answer, error)
	Delete(ctx context.Context, answerID, actorID int64) error
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.AnswerCard, error)
	// ToggleBest flips an answer's best-answer flag. Only the parent
	// question's author may do it; several answers on one question may
	// carry the flag at the same time. The question's isAnswered state
	// is recomputed after every flip.
	ToggleBest(ctx context.Context, answerID, actorID int64) (*model.Answer, error)
	AddComment(ctx context.Context, answerID, authorID int64, content string) (*model.Answer, error)
}

type answerService struct {
	answerStore   store.AnswerStore
	questionStore store.QuestionStore
	userStore     store.UserStore
}

func NewAnswerService(answerStore store.AnswerStore, questionStore store.QuestionStore, userStore store.UserStore) AnswerService {
	return &answerService{
		answerStore:   answerStore,
		questionStore: questionStore,
		userStore:     userStore,
	}
}

func (s *answerService) Create(ctx context.Context, questionID, authorID int64, content string) (*model.Answer, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	if _, err := s.questionStore.GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	answer := &model.Answer{
		ID:         id.New(),
		Content:    content,
		QuestionID: questionID,
		AuthorID:   authorID,
	}

	if err := s.answerStore.Create(ctx, answer); err != nil {
		slog.ErrorContext(ctx, "failed to create answer",
			"error", err,
			"question_id", questionID,
			"user_id", authorID,
		)
		return nil, fmt.Errorf("creating answer: %w", err)
	}

	if err := s.questionStore.IncrementAnswersCount(ctx, questionID, 1); err != nil {
		slog.ErrorContext(ctx, "failed to bump question answers count",
			"error", err,
			"question_id", questionID,
		)
	}
	if err := s.userStore.IncrementCounter(ctx, authorID, store.CounterAnswers, 1); err != nil {
		slog.ErrorContext(ctx, "failed to bump user answers count",
			"error", err,
			"user_id", authorID,
		)
	}

	slog.InfoContext(ctx, "answer created", "answer_id", answer.ID, "question_id", questionID)
	return answer, nil
}

func (s *answerService) Update(ctx context.Context, answerID, actorID int64, content string) (*model.Answer, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	answer, err := s.answerStore.GetByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer.AuthorID != actorID {
		return nil, ErrNotAuthor
	}

	updated, err := s.answerStore.UpdateContent(ctx, answerID, content)
	if err != nil {
		return nil, fmt.Errorf("updating answer: %w", err)
	}
	return updated, nil
}

func (s *answerService) Delete(ctx context.Context, answerID, actorID int64) error {
	answer, err := s.answerStore.GetByID(ctx, answerID)
	if err != nil {
		return err
	}
	if answer.AuthorID != actorID {
		return ErrNotAuthor
	}

	if err := s.answerStore.Delete(ctx, answerID); err != nil {
		return fmt.Errorf("deleting answer: %w", err)
	}

	if err := s.questionStore.IncrementAnswersCount(ctx, answer.QuestionID, -1); err != nil {
		slog.ErrorContext(ctx, "failed to decrement question answers count",
			"error", err,
			"question_id", answer.QuestionID,
		)
	}
	if err := s.userStore.IncrementCounter(ctx, actorID, store.CounterAnswers, -1); err != nil {
		slog.ErrorContext(ctx, "failed to decrement user answers count",
			"error", err,
			"user_id", actorID,
		)
	}

	// Best-answer deletion may leave the question unanswered.
	if answer.IsBestAnswer {
		s.recomputeAnswered(ctx, answer.QuestionID)
	}

	slog.InfoContext(ctx, "answer deleted", "answer_id", answerID, "question_id", answer.QuestionID)
	return nil
}

func (s *answerService) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.AnswerCard, error) {
	answers, err := s.answerStore.ListByAuthor(ctx, authorID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}

	author, err := s.userStore.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	summary := author.Summary()

	cards := make([]model.AnswerCard, 0, len(answers))
	for i := range answers {
		cards = append(cards, model.AnswerCard{Answer: &answers[i], Author: &summary})
	}
	return cards, nil
}

func (s *answerService) ToggleBest(ctx context.Context, answerID, actorID int64) (*model.Answer, error) {
	answer, err := s.answerStore.GetByID(ctx, answerID)
	if err != nil {
		return nil, err
	}

	question, err := s.questionStore.GetByID(ctx, answer.QuestionID)
	if err != nil {
		return nil, err
	}
	if question.AuthorID != actorID {
		return nil, ErrNotQuestionAuthor
	}

	answer.IsBestAnswer = !answer.IsBestAnswer
	if err := s.answerStore.SetBest(ctx, answerID, answer.IsBestAnswer); err != nil {
		return nil, fmt.Errorf("setting best answer: %w", err)
	}

	s.recomputeAnswered(ctx, answer.QuestionID)

	slog.InfoContext(ctx, "best answer toggled",
		"answer_id", answerID,
		"question_id", answer.QuestionID,
		"best", answer.IsBestAnswer,
	)
	return answer, nil
}

func (s *answerService) AddComment(ctx context.Context, answerID, authorID int64, content string) (*model.Answer, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	comment := model.Comment{
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.answerStore.AddComment(ctx, answerID, comment); err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}
	return s.answerStore.GetByID(ctx, answerID)
}

// recomputeAnswered sets the parent question's isAnswered to whether any
// best answer remains.
func (s *answerService) recomputeAnswered(ctx context.Context, questionID int64) {
	count, err := s.answerStore.CountBestByQuestion(ctx, questionID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count best answers",
			"error", err,
			"question_id", questionID,
		)
		return
	}
	if err := s.questionStore.SetAnswered(ctx, questionID, count > 0); err != nil {
		slog.ErrorContext(ctx, "failed to update answered state",
			"error", err,
			"question_id", questionID,
		)
	}
}
