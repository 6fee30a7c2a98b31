package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"queryhub.app/api/internal/http/dto"
	"queryhub.app/api/internal/service"
)

type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) All(c *gin.Context) {
	stats, err := h.tagService.All(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": dto.ToTagStatResponses(stats)})
}

func (h *TagHandler) Trending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
	stats, err := h.tagService.Trending(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": dto.ToTagStatResponses(stats)})
}
