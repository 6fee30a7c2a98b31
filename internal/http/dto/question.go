package dto

import (
	"time"

	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/service"
)

type CreateQuestionRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=500"`
	Content     string   `json:"content" binding:"required,min=1"`
	Category    string   `json:"category" binding:"required"`
	Tags        []string `json:"tags" binding:"omitempty,max=5,dive,min=1,max=64"`
	IsAnonymous bool     `json:"is_anonymous"`
}

func (r CreateQuestionRequest) ToInput() service.QuestionInput {
	return service.QuestionInput{
		Title:       r.Title,
		Content:     r.Content,
		Category:    model.Category(r.Category),
		Tags:        r.Tags,
		IsAnonymous: r.IsAnonymous,
	}
}

type QuestionResponse struct {
	ID             int64         `json:"id,string"`
	Title          string        `json:"title"`
	Content        string        `json:"content"`
	Author         *UserSummary  `json:"author,omitempty"`
	Category       string        `json:"category"`
	Tags           []string      `json:"tags"`
	UpvotesCount   int           `json:"upvotes_count"`
	DownvotesCount int           `json:"downvotes_count"`
	VoteScore      int           `json:"vote_score"`
	Views          int           `json:"views"`
	AnswersCount   int           `json:"answers_count"`
	IsAnswered     bool          `json:"is_answered"`
	IsAnonymous    bool          `json:"is_anonymous"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type UserSummary struct {
	ID       int64  `json:"id,string"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

func toUserSummary(s *model.UserSummary) *UserSummary {
	if s == nil {
		return nil
	}
	return &UserSummary{
		ID:       s.ID,
		Name:     s.Name,
		Username: s.Username,
		Avatar:   s.Avatar,
		Bio:      s.Bio,
	}
}

func ToQuestionResponse(q *model.Question, author *model.UserSummary) *QuestionResponse {
	return &QuestionResponse{
		ID:             q.ID,
		Title:          q.Title,
		Content:        q.Content,
		Author:         toUserSummary(author),
		Category:       string(q.Category),
		Tags:           q.Tags,
		UpvotesCount:   q.UpvotesCount(),
		DownvotesCount: q.DownvotesCount(),
		VoteScore:      q.VoteScore(),
		Views:          q.Views,
		AnswersCount:   q.AnswersCount,
		IsAnswered:     q.IsAnswered,
		IsAnonymous:    q.IsAnonymous,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func ToQuestionResponses(cards []model.QuestionCard) []*QuestionResponse {
	out := make([]*QuestionResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, ToQuestionResponse(card.Question, card.Author))
	}
	return out
}

type QuestionPageResponse struct {
	Questions      []*QuestionResponse `json:"questions"`
	TotalQuestions int64               `json:"total_questions"`
	TotalPages     int64               `json:"total_pages"`
	CurrentPage    int                 `json:"current_page"`
}

func ToQuestionPageResponse(page *model.QuestionPage) *QuestionPageResponse {
	return &QuestionPageResponse{
		Questions:      ToQuestionResponses(page.Questions),
		TotalQuestions: page.TotalQuestions,
		TotalPages:     page.TotalPages,
		CurrentPage:    page.CurrentPage,
	}
}

type QuestionDetailResponse struct {
	Question *QuestionResponse `json:"question"`
	Answers  []*AnswerResponse `json:"answers"`
}

func ToQuestionDetailResponse(view *service.QuestionView) *QuestionDetailResponse {
	return &QuestionDetailResponse{
		Question: ToQuestionResponse(view.Question, view.Author),
		Answers:  ToAnswerResponses(view.Answers),
	}
}

type TagStatResponse struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Score float64 `json:"score"`
}

func ToTagStatResponses(stats []model.TagStat) []TagStatResponse {
	out := make([]TagStatResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, TagStatResponse{Name: s.Name, Count: s.Count, Score: s.Score})
	}
	return out
}
