package model

import "time"

type User struct {
	ID           int64     `json:"id,string"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar"`
	Bio          string    `json:"bio"`
	Location     string    `json:"location"`
	Website      string    `json:"website"`
	Twitter      string    `json:"twitter"`
	Github       string    `json:"github"`
	Linkedin     string    `json:"linkedin"`

	// Relationship sets. Membership is the source of truth for
	// follow/bookmark state; counts are derived from set sizes.
	Followers []int64 `json:"-"`
	Following []int64 `json:"-"`
	Bookmarks []int64 `json:"-"`

	// Incrementally maintained counters, mutated only through the
	// store's atomic increment.
	QuestionsCount int `json:"questions_count"`
	AnswersCount   int `json:"answers_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummary is the author card embedded in question/answer payloads.
type UserSummary struct {
	ID       int64  `json:"id,string"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
	}
}

// Profile is a user plus the read-time aggregates. UpvotesReceived is
// never stored; it is summed over authored content on every read.
// BookmarksCount only counts bookmarks whose question still exists.
type Profile struct {
	User            *User `json:"user"`
	UpvotesReceived int   `json:"upvotes_received"`
	FollowersCount  int   `json:"followers_count"`
	FollowingCount  int   `json:"following_count"`
	BookmarksCount  int   `json:"bookmarks_count"`
}

// ProfileUpdate carries the editable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	Name     *string
	Avatar   *string
	Bio      *string
	Location *string
	Website  *string
	Twitter  *string
	Github   *string
	Linkedin *string
}
