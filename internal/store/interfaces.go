package store

import (
	"context"
	"errors"

	"queryhub.app/api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// SetOp is a set-membership edit applied atomically by the store.
// Add is a unique push (duplicate application is a no-op), Remove removes
// the value wherever present. Toggle logic is built purely on these two.
type SetOp string

const (
	SetAdd    SetOp = "add"
	SetRemove SetOp = "remove"
)

// VoteField selects one of the two mutually exclusive vote sets.
type VoteField string

const (
	VoteFieldUp   VoteField = "upvotes"
	VoteFieldDown VoteField = "downvotes"
)

// VoteOp is one membership edit of a vote set. ApplyVote applies all ops
// for a call as a single atomic document update, so an actor can never be
// observed in both sets.
type VoteOp struct {
	Field VoteField
	Op    SetOp
}

// RelationField selects one of a user's relationship sets.
type RelationField string

const (
	RelationFollowers RelationField = "followers"
	RelationFollowing RelationField = "following"
	RelationBookmarks RelationField = "bookmarks"
)

// CounterField selects one of a user's maintained counters.
type CounterField string

const (
	CounterQuestions CounterField = "questionsCount"
	CounterAnswers   CounterField = "answersCount"
)

// QuestionFilter narrows and orders a question listing.
type QuestionFilter struct {
	Category model.Category
	Tag      string
	Search   string
	Sort     model.QuestionSort
	Page     int
	Limit    int
}

// TagSource is the raw per-question input of the tag aggregation views.
type TagSource struct {
	Tags    []string
	Upvotes int
}

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdateProfile(ctx context.Context, id int64, upd model.ProfileUpdate) (*model.User, error)
	List(ctx context.Context, limit int) ([]model.User, error)
	Search(ctx context.Context, query string, limit int) ([]model.User, error)

	// SaveRelation atomically edits membership of value in one of the
	// user's relationship sets.
	SaveRelation(ctx context.Context, userID int64, field RelationField, op SetOp, value int64) error

	// IncrementCounter atomically adds delta to a maintained counter.
	// Never implemented as load-add-save.
	IncrementCounter(ctx context.Context, userID int64, field CounterField, delta int) error
}

// QuestionStore defines the contract for question data access
type QuestionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Question, error)
	// GetAndCountView returns the question after atomically incrementing
	// its view counter.
	GetAndCountView(ctx context.Context, id int64) (*model.Question, error)
	Create(ctx context.Context, q *model.Question) error
	Update(ctx context.Context, q *model.Question) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f QuestionFilter) ([]model.Question, int64, error)
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Question, error)
	ListByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]model.Question, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Question, error)
	// CountExistingByIDs counts how many of the ids refer to questions
	// that still exist (bookmark counts are existence-filtered).
	CountExistingByIDs(ctx context.Context, ids []int64) (int, error)

	ApplyVote(ctx context.Context, id, actorID int64, ops []VoteOp) (upvotes, downvotes []int64, err error)
	IncrementAnswersCount(ctx context.Context, id int64, delta int) error
	SetAnswered(ctx context.Context, id int64, answered bool) error

	SumUpvotesByAuthor(ctx context.Context, authorID int64) (int, error)
	TagSources(ctx context.Context) ([]TagSource, error)
	SearchText(ctx context.Context, needle string, limit int) ([]model.Question, error)
}

// AnswerStore defines the contract for answer data access
type AnswerStore interface {
	GetByID(ctx context.Context, id int64) (*model.Answer, error)
	Create(ctx context.Context, a *model.Answer) error
	UpdateContent(ctx context.Context, id int64, content string) (*model.Answer, error)
	Delete(ctx context.Context, id int64) error
	// DeleteByQuestion removes all answers of a question and returns the
	// removed answers so callers can cascade counter adjustments.
	DeleteByQuestion(ctx context.Context, questionID int64) ([]model.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]model.Answer, error)
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Answer, error)

	ApplyVote(ctx context.Context, id, actorID int64, ops []VoteOp) (upvotes, downvotes []int64, err error)
	SetBest(ctx context.Context, id int64, best bool) error
	CountBestByQuestion(ctx context.Context, questionID int64) (int, error)

	SumUpvotesByAuthor(ctx context.Context, authorID int64) (int, error)
	AddComment(ctx context.Context, answerID int64, c model.Comment) error
}
