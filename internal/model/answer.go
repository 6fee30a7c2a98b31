package model

import "time"

type Answer struct {
	ID         int64     `json:"id,string"`
	Content    string    `json:"content"`
	QuestionID int64     `json:"question_id,string"`
	AuthorID   int64     `json:"author_id,string"`
	Upvotes    []int64   `json:"-"`
	Downvotes  []int64   `json:"-"`

	// Multiple answers to the same question may hold this flag at once;
	// the parent's IsAnswered is "any best answer exists".
	IsBestAnswer bool `json:"is_best_answer"`

	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Answer) UpvotesCount() int   { return len(a.Upvotes) }
func (a *Answer) DownvotesCount() int { return len(a.Downvotes) }
func (a *Answer) VoteScore() int      { return len(a.Upvotes) - len(a.Downvotes) }

// Comment is an embedded, append-only sub-entity of an answer.
type Comment struct {
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id,string"`
	CreatedAt time.Time `json:"created_at"`
}

// AnswerCard is an answer with its author resolved for display.
type AnswerCard struct {
	Answer *Answer      `json:"answer"`
	Author *UserSummary `json:"author,omitempty"`
}
