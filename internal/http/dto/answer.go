package dto

import (
	"time"

	"queryhub.app/api/internal/model"
)

type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

type UpdateAnswerRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2048"`
}

type CommentResponse struct {
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id,string"`
	CreatedAt time.Time `json:"created_at"`
}

type AnswerResponse struct {
	ID             int64             `json:"id,string"`
	Content        string            `json:"content"`
	QuestionID     int64             `json:"question_id,string"`
	Author         *UserSummary      `json:"author,omitempty"`
	UpvotesCount   int               `json:"upvotes_count"`
	DownvotesCount int               `json:"downvotes_count"`
	VoteScore      int               `json:"vote_score"`
	IsBestAnswer   bool              `json:"is_best_answer"`
	Comments       []CommentResponse `json:"comments"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func ToAnswerResponse(a *model.Answer, author *model.UserSummary) *AnswerResponse {
	comments := make([]CommentResponse, 0, len(a.Comments))
	for _, c := range a.Comments {
		comments = append(comments, CommentResponse{
			Content:   c.Content,
			AuthorID:  c.AuthorID,
			CreatedAt: c.CreatedAt,
		})
	}
	return &AnswerResponse{
		ID:             a.ID,
		Content:        a.Content,
		QuestionID:     a.QuestionID,
		Author:         toUserSummary(author),
		UpvotesCount:   a.UpvotesCount(),
		DownvotesCount: a.DownvotesCount(),
		VoteScore:      a.VoteScore(),
		IsBestAnswer:   a.IsBestAnswer,
		Comments:       comments,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func ToAnswerResponses(cards []model.AnswerCard) []*AnswerResponse {
	out := make([]*AnswerResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, ToAnswerResponse(card.Answer, card.Author))
	}
	return out
}
