package model

type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

func (d VoteDirection) Valid() bool {
	return d == VoteUp || d == VoteDown
}

// Opposite returns the mutually exclusive direction.
func (d VoteDirection) Opposite() VoteDirection {
	if d == VoteUp {
		return VoteDown
	}
	return VoteUp
}

type VoteTargetKind string

const (
	VoteTargetQuestion VoteTargetKind = "question"
	VoteTargetAnswer   VoteTargetKind = "answer"
)

// VoteResult reports the target's vote state after a toggle. Counts are
// derived from the updated membership sets, never stored.
type VoteResult struct {
	UpvotesCount   int `json:"upvotes_count"`
	DownvotesCount int `json:"downvotes_count"`
	VoteScore      int `json:"vote_score"`
}

// FollowResult reports both derived counts after a follow toggle.
type FollowResult struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followers_count"`
	FollowingCount int  `json:"following_count"`
}

type BookmarkResult struct {
	Bookmarked bool `json:"bookmarked"`
}
