package dto

import (
	"time"

	"queryhub.app/api/internal/model"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

type UserResponse struct {
	ID             int64     `json:"id,string"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Username       string    `json:"username"`
	Avatar         string    `json:"avatar,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Location       string    `json:"location,omitempty"`
	Website        string    `json:"website,omitempty"`
	Twitter        string    `json:"twitter,omitempty"`
	Github         string    `json:"github,omitempty"`
	Linkedin       string    `json:"linkedin,omitempty"`
	QuestionsCount int       `json:"questions_count"`
	AnswersCount   int       `json:"answers_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Username:       u.Username,
		Avatar:         u.Avatar,
		Bio:            u.Bio,
		Location:       u.Location,
		Website:        u.Website,
		Twitter:        u.Twitter,
		Github:         u.Github,
		Linkedin:       u.Linkedin,
		QuestionsCount: u.QuestionsCount,
		AnswersCount:   u.AnswersCount,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// ToPublicUserResponse strips the email for non-owner reads.
func ToPublicUserResponse(u *model.User) *UserResponse {
	resp := ToUserResponse(u)
	resp.Email = ""
	return resp
}

type ProfileResponse struct {
	User            *UserResponse `json:"user"`
	UpvotesReceived int           `json:"upvotes_received"`
	FollowersCount  int           `json:"followers_count"`
	FollowingCount  int           `json:"following_count"`
	BookmarksCount  int           `json:"bookmarks_count"`
}

func ToProfileResponse(p *model.Profile) *ProfileResponse {
	return &ProfileResponse{
		User:            ToUserResponse(p.User),
		UpvotesReceived: p.UpvotesReceived,
		FollowersCount:  p.FollowersCount,
		FollowingCount:  p.FollowingCount,
		BookmarksCount:  p.BookmarksCount,
	}
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Avatar   *string `json:"avatar,omitempty" binding:"omitempty,url,max=2048"`
	Bio      *string `json:"bio,omitempty" binding:"omitempty,max=1024"`
	Location *string `json:"location,omitempty" binding:"omitempty,max=255"`
	Website  *string `json:"website,omitempty" binding:"omitempty,max=2048"`
	Twitter  *string `json:"twitter,omitempty" binding:"omitempty,max=255"`
	Github   *string `json:"github,omitempty" binding:"omitempty,max=255"`
	Linkedin *string `json:"linkedin,omitempty" binding:"omitempty,max=255"`
}

func (r UpdateProfileRequest) ToModel() model.ProfileUpdate {
	return model.ProfileUpdate{
		Name:     r.Name,
		Avatar:   r.Avatar,
		Bio:      r.Bio,
		Location: r.Location,
		Website:  r.Website,
		Twitter:  r.Twitter,
		Github:   r.Github,
		Linkedin: r.Linkedin,
	}
}
