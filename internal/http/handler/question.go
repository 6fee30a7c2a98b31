package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"queryhub.app/api/internal/http/dto"
	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/service"
	"queryhub.app/api/internal/store"
)

type QuestionHandler struct {
	questionService service.QuestionService
	voteService     service.VoteService
	answerService   service.AnswerService
	bookmarkService service.BookmarkService
}

func NewQuestionHandler(
	questionService service.QuestionService,
	voteService service.VoteService,
	answerService service.AnswerService,
	bookmarkService service.BookmarkService,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		voteService:     voteService,
		answerService:   answerService,
		bookmarkService: bookmarkService,
	}
}

func (h *QuestionHandler) Create(c *gin.Context) {
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), actorID, req.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToQuestionResponse(question, nil))
}

func (h *QuestionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := store.QuestionFilter{
		Category: model.Category(c.Query("category")),
		Tag:      c.Query("tag"),
		Search:   c.Query("search"),
		Sort:     model.QuestionSort(c.DefaultQuery("sort", string(model.SortNewest))),
		Page:     page,
		Limit:    limit,
	}

	result, err := h.questionService.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuestionPageResponse(result))
}

func (h *QuestionHandler) Get(c *gin.Context) {
	questionID, ok := questionPathID(c)
	if !ok {
		return
	}

	view, err := h.questionService.Get(c.Request.Context(), questionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuestionDetailResponse(view))
}

func (h *QuestionHandler) Update(c *gin.Context) {
	questionID, ok := questionPathID(c)
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questionService.Update(c.Request.Context(), questionID, actorID, req.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuestionResponse(question, nil))
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	questionID, ok := questionPathID(c)
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), questionID, actorID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "question deleted"})
}

func (h *QuestionHandler) Vote(c *gin.Context) {
	questionID, ok := questionPathID(c)
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

	result, err := h.voteService.Apply(c.Request.Context(), model.VoteTargetQuestion, questionID, actorID, model.VoteDirection(req.Direction))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVoteResponse(result))
}

func (h *QuestionHandler) CreateAnswer(c *gin.Context) {
	questionID, ok := questionPathID(c)
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.answerService.Create(c.Request.Context(), questionID, actorID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAnswerResponse(answer, nil))
}

func (h *QuestionHandler) ToggleBookmark(c *gin.Context) {
	questionID, ok := questionPathID(c)
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	result, err := h.bookmarkService.Toggle(c.Request.Context(), actorID, questionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BookmarkResponse{Bookmarked: result.Bookmarked})
}

func (h *QuestionHandler) BookmarkStatus(c *gin.Context) {
	questionID, ok := questionPathID(c)
	if !ok {
		return
	}
	actorID, ok := authUserID(c)
	if !ok {
		return
	}

	bookmarked, err := h.bookmarkService.Status(c.Request.Context(), actorID, questionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BookmarkResponse{Bookmarked: bookmarked})
}

func (h *QuestionHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	cards, err := h.questionService.Search(c.Request.Context(), query, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": dto.ToQuestionResponses(cards)})
}
