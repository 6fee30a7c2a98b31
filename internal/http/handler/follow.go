package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"queryhub.app/api/internal/http/dto"
	"queryhub.app/api/internal/service"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func (h *FollowHandler) Toggle(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	result, err := h.followService.Toggle(c.Request.Context(), actorID, targetID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFollowResponse(result))
}

func (h *FollowHandler) Status(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	following, err := h.followService.Status(c.Request.Context(), actorID, targetID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}

func (h *FollowHandler) Followers(c *gin.Context) {
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

func (h *FollowHandler) Following(c *gin.Context) {
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

func (h *FollowHandler) Stats(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := h.followService.Stats(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Feed returns recent questions from the users the caller follows.
func (h *FollowHandler) Feed(c *gin.Context) {
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	cards, err := h.followService.Feed(c.Request.Context(), actorID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": dto.ToQuestionResponses(cards)})
}
