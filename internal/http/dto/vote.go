package dto

import "queryhub.app/api/internal/model"

type VoteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

type VoteResponse struct {
	UpvotesCount   int `json:"upvotes_count"`
	DownvotesCount int `json:"downvotes_count"`
	VoteScore      int `json:"vote_score"`
}

func ToVoteResponse(r *model.VoteResult) *VoteResponse {
	return &VoteResponse{
		UpvotesCount:   r.UpvotesCount,
		DownvotesCount: r.DownvotesCount,
		VoteScore:      r.VoteScore,
	}
}

type FollowResponse struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followers_count"`
	FollowingCount int  `json:"following_count"`
}

func ToFollowResponse(r *model.FollowResult) *FollowResponse {
	return &FollowResponse{
		Following:      r.Following,
		FollowersCount: r.FollowersCount,
		FollowingCount: r.FollowingCount,
	}
}

type BookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

type UserSummaries struct {
	Users []UserSummary `json:"users"`
}

func ToUserSummaries(users []model.UserSummary) UserSummaries {
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, *toUserSummary(&users[i]))
	}
	return UserSummaries{Users: out}
}
