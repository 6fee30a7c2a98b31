package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"queryhub.app/api/common/logger"
	"queryhub.app/api/internal/http/middleware"
	"queryhub.app/api/internal/service"
	"queryhub.app/api/internal/store"
)

// pathID parses the named path parameter as an int64 id. On failure it
// writes a 400 and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// questionID parses the id path parameter and tags the request context so
// downstream logs carry the question id.
func questionPathID(c *gin.Context) (int64, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return 0, false
	}
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{QuestionID: logger.Ptr(id)})
	c.Request = c.Request.WithContext(ctx)
	return id, true
}

// answerPathID is questionPathID's counterpart for answer routes.
func answerPathID(c *gin.Context) (int64, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return 0, false
	}
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{AnswerID: logger.Ptr(id)})
	c.Request = c.Request.WithContext(ctx)
	return id, true
}

// authUserID reads the id set by the auth middleware. Handlers behind
// RequireAuth can rely on it being present.
func authUserID(c *gin.Context) (int64, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}
	return id, true
}

// writeError maps service errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrInvalidVote),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotAuthor),
		errors.Is(err, service.ErrNotQuestionAuthor):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
