package model

import "time"

type Category string

const (
	CategoryTechnology  Category = "Technology"
	CategoryProgramming Category = "Programming"
	CategoryScience     Category = "Science"
	CategoryMathematics Category = "Mathematics"
	CategoryBusiness    Category = "Business"
	CategoryCareer      Category = "Career"
	CategoryEducation   Category = "Education"
	CategoryHealth      Category = "Health"
	CategoryLifestyle   Category = "Lifestyle"
	CategoryArtsCulture Category = "Arts & Culture"
	CategorySports      Category = "Sports"
	CategoryOther       Category = "Other"
)

func Categories() []Category {
	return []Category{
		CategoryTechnology, CategoryProgramming, CategoryScience,
		CategoryMathematics, CategoryBusiness, CategoryCareer,
		CategoryEducation, CategoryHealth, CategoryLifestyle,
		CategoryArtsCulture, CategorySports, CategoryOther,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

type Question struct {
	ID           int64     `json:"id,string"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	AuthorID     int64     `json:"author_id,string"`
	Category     Category  `json:"category"`
	Tags         []string  `json:"tags"`
	Upvotes      []int64   `json:"-"`
	Downvotes    []int64   `json:"-"`
	Views        int       `json:"views"`
	AnswersCount int       `json:"answers_count"`
	IsAnswered   bool      `json:"is_answered"`
	BestAnswer   *int64    `json:"best_answer,omitempty"`
	IsAnonymous  bool      `json:"is_anonymous"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (q *Question) UpvotesCount() int   { return len(q.Upvotes) }
func (q *Question) DownvotesCount() int { return len(q.Downvotes) }

// VoteScore is always derived, never stored.
func (q *Question) VoteScore() int { return len(q.Upvotes) - len(q.Downvotes) }

// QuestionCard is a question with its author resolved for display.
type QuestionCard struct {
	Question *Question    `json:"question"`
	Author   *UserSummary `json:"author,omitempty"`
}

// QuestionPage is one page of a filtered question listing.
type QuestionPage struct {
	Questions      []QuestionCard `json:"questions"`
	TotalQuestions int64          `json:"total_questions"`
	TotalPages     int64          `json:"total_pages"`
	CurrentPage    int            `json:"current_page"`
}

type QuestionSort string

const (
	SortNewest       QuestionSort = "newest"
	SortOldest       QuestionSort = "oldest"
	SortMostVoted    QuestionSort = "most-voted"
	SortMostAnswered QuestionSort = "most-answered"
	SortMostViewed   QuestionSort = "most-viewed"
)

// TagStat is one entry of the trending/discovery tag views.
type TagStat struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Score float64 `json:"score"`
}
