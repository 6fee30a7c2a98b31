package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"queryhub.app/api/internal/http/handler"
	"queryhub.app/api/internal/http/middleware"
	"queryhub.app/api/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := services.Auth()
	requireAuth := middleware.RequireAuth(auth)

	authHandler := handler.NewAuthHandler(auth, services.Users())
	userHandler := handler.NewUserHandler(
		services.Users(),
		services.Questions(),
		services.Answers(),
		services.Follows(),
		services.Bookmarks(),
	)
	questionHandler := handler.NewQuestionHandler(
		services.Questions(),
		services.Votes(),
		services.Answers(),
		services.Bookmarks(),
	)
	answerHandler := handler.NewAnswerHandler(services.Answers(), services.Votes())
	followHandler := handler.NewFollowHandler(services.Follows())
	tagHandler := handler.NewTagHandler(services.Tags())

	// OptionalAuth resolves the caller on public reads so access logs and
	// traces carry the user id; protected routes still go through
	// RequireAuth.
	api := router.Group("/api", middleware.OptionalAuth(auth))
	{
		AuthRouter(api.Group("/auth"), authHandler, requireAuth)
		UserRouter(api.Group("/users"), userHandler, requireAuth)
		QuestionRouter(api.Group("/questions"), questionHandler, requireAuth)
		AnswerRouter(api.Group("/answers"), answerHandler, requireAuth)
		FollowRouter(api.Group("/follow"), followHandler, requireAuth)
		TagRouter(api.Group("/tags"), tagHandler)
	}
}
