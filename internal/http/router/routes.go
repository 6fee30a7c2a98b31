package router

import (
	"github.com/gin-gonic/gin"

	"queryhub.app/api/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireAuth gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.GET("/me", requireAuth, h.Me)
	rg.PUT("/me", requireAuth, h.UpdateProfile)
}

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler, requireAuth gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/questions", h.Questions)
	rg.GET("/:id/answers", h.Answers)
	rg.GET("/:id/activity", h.Activity)
	rg.GET("/:id/followers", h.Followers)
	rg.GET("/:id/following", h.Following)
	rg.GET("/:id/bookmarks", requireAuth, h.Bookmarks)
}

func QuestionRouter(rg *gin.RouterGroup, h *handler.QuestionHandler, requireAuth gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/:id", h.Get)
	rg.POST("", requireAuth, h.Create)
	rg.PUT("/:id", requireAuth, h.Update)
	rg.DELETE("/:id", requireAuth, h.Delete)
	rg.POST("/:id/vote", requireAuth, h.Vote)
	rg.POST("/:id/answers", requireAuth, h.CreateAnswer)
	rg.POST("/:id/bookmark", requireAuth, h.ToggleBookmark)
	rg.GET("/:id/bookmark", requireAuth, h.BookmarkStatus)
}

func AnswerRouter(rg *gin.RouterGroup, h *handler.AnswerHandler, requireAuth gin.HandlerFunc) {
	rg.PUT("/:id", requireAuth, h.Update)
	rg.DELETE("/:id", requireAuth, h.Delete)
	rg.POST("/:id/vote", requireAuth, h.Vote)
	rg.POST("/:id/best", requireAuth, h.ToggleBest)
	rg.POST("/:id/comments", requireAuth, h.AddComment)
}

func FollowRouter(rg *gin.RouterGroup, h *handler.FollowHandler, requireAuth gin.HandlerFunc) {
	rg.GET("/feed", requireAuth, h.Feed)
	rg.POST("/:id", requireAuth, h.Toggle)
	rg.GET("/:id/status", requireAuth, h.Status)
	rg.GET("/:id/followers", h.Followers)
	rg.GET("/:id/following", h.Following)
	rg.GET("/:id/stats", h.Stats)
}

func TagRouter(rg *gin.RouterGroup, h *handler.TagHandler) {
	rg.GET("", h.All)
	rg.GET("/trending", h.Trending)
}
