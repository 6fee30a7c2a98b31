package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"queryhub.app/api/internal/http/dto"
	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/service"
)

type AnswerHandler struct {
	answerService service.AnswerService
	voteService   service.VoteService
}

func NewAnswerHandler(answerService service.AnswerService, voteService service.VoteService) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
		voteService:   voteService,
	}
}

func (h *AnswerHandler) Update(c *gin.Context) {
	answerID, ok := answerPathID(c)
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.answerService.Update(c.Request.Context(), answerID, actorID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAnswerResponse(answer, nil))
}

func (h *AnswerHandler) Delete(c *gin.Context) {
	answerID, ok := answerPathID(c)
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	if err := h.answerService.Delete(c.Request.Context(), answerID, actorID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "answer deleted"})
}

func (h *AnswerHandler) Vote(c *gin.Context) {
	answerID, ok := answerPathID(c)
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.voteService.Apply(c.Request.Context(), model.VoteTargetAnswer, answerID, actorID, model.VoteDirection(req.Direction))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVoteResponse(result))
}

// ToggleBest marks or unmarks an answer as a best answer of its question.
func (h *AnswerHandler) ToggleBest(c *gin.Context) {
	answerID, ok := answerPathID(c)
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	answer, err := h.answerService.ToggleBest(c.Request.Context(), answerID, actorID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAnswerResponse(answer, nil))
}

func (h *AnswerHandler) AddComment(c *gin.Context) {
	answerID, ok := answerPathID(c)
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.answerService.AddComment(c.Request.Context(), answerID, actorID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAnswerResponse(answer, nil))
}
