package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"queryhub.app/api/internal/http/dto"
	"queryhub.app/api/internal/service"
)

type UserHandler struct {
	userService     service.UserService
	questionService service.QuestionService
	answerService   service.AnswerService
	followService   service.FollowService
	bookmarkService service.BookmarkService
}

func NewUserHandler(
	userService service.UserService,
	questionService service.QuestionService,
	answerService service.AnswerService,
	followService service.FollowService,
	bookmarkService service.BookmarkService,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		questionService: questionService,
		answerService:   answerService,
		followService:   followService,
		bookmarkService: bookmarkService,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	users, err := h.userService.List(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserSummaries(users))
}

func (h *UserHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, err := h.userService.Search(c.Request.Context(), query, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserSummaries(users))
}

// Get returns a user's public profile with live aggregates.
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.userService.Profile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := dto.ToProfileResponse(profile)
	resp.User.Email = ""
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Questions(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	cards, err := h.questionService.ListByAuthor(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": dto.ToQuestionResponses(cards)})
}

func (h *UserHandler) Answers(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	cards, err := h.answerService.ListByAuthor(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answers": dto.ToAnswerResponses(cards)})
}

// Activity returns the user's latest questions and answers together.
func (h *UserHandler) Activity(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	questions, answers, err := h.userService.RecentActivity(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	questionResponses := make([]*dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		questionResponses = append(questionResponses, dto.ToQuestionResponse(&questions[i], nil))
	}
	answerResponses := make([]*dto.AnswerResponse, 0, len(answers))
	for i := range answers {
		answerResponses = append(answerResponses, dto.ToAnswerResponse(&answers[i], nil))
	}
	c.JSON(http.StatusOK, gin.H{
		"questions": questionResponses,
		"answers":   answerResponses,
	})
}

func (h *UserHandler) Followers(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	users, err := h.followService.Followers(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserSummaries(users))
}

func (h *UserHandler) Following(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	users, err := h.followService.Following(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserSummaries(users))
}

// Bookmarks returns the caller's bookmarked questions. Bookmarks are
// private; the path id must match the authenticated user.
func (h *UserHandler) Bookmarks(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}
	if userID != actorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "bookmarks are private"})
		return
	}

	cards, err := h.bookmarkService.List(c.Request.Context(), actorID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": dto.ToQuestionResponses(cards)})
}
