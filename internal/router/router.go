package router

import (
	"agora/internal/handlers"
	"agora/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	threadHandler := handlers.NewThreadHandler()
	commentHandler := handlers.NewCommentHandler()
	voteHandler := handlers.NewVoteHandler()
	reactionHandler := handlers.NewReactionHandler()
	notificationHandler := handlers.NewNotificationHandler()
	followerHandler := handlers.NewFollowerHandler()
	bookmarkHandler := handlers.NewBookmarkHandler()
	watcherHandler := handlers.NewWatcherHandler()
	profileHandler := handlers.NewProfileHandler()
	adminHandler := handlers.NewAdminHandler()
	categoryHandler := handlers.NewCategoryHandler()

	// Public routes
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)

	r.GET("/threads", threadHandler.List)
	r.GET("/threads/:id", threadHandler.Detail)
	r.GET("/comments/:id/replies", commentHandler.Replies)
	r.GET("/categories", categoryHandler.List)
	r.GET("/search", threadHandler.Search)
	r.GET("/leaderboard", profileHandler.Leaderboard)
	r.GET("/users/:username", profileHandler.Show)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/threads", threadHandler.Create)
		authorized.DELETE("/threads/:id", threadHandler.Delete)
		authorized.PATCH("/threads/:id/moderate", threadHandler.Moderate)

		authorized.POST("/comments", commentHandler.Create)
		authorized.DELETE("/comments/:id", commentHandler.Delete)

		authorized.POST("/votes", voteHandler.Set)
		authorized.POST("/reactions", reactionHandler.Set)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.PATCH("/notifications/mark-read", notificationHandler.MarkRead)
		authorized.POST("/notifications/mark-all-read", notificationHandler.ReadAll)
		authorized.PATCH("/notifications/:id", notificationHandler.Read)
		authorized.DELETE("/notifications/:id", notificationHandler.Delete)

		authorized.POST("/followers", followerHandler.Follow)
		authorized.DELETE("/followers", followerHandler.Unfollow)
		authorized.POST("/bookmarks", bookmarkHandler.Add)
		authorized.DELETE("/bookmarks", bookmarkHandler.Remove)
		authorized.GET("/bookmarks", bookmarkHandler.List)
		authorized.POST("/watchers", watcherHandler.Watch)
		authorized.DELETE("/watchers", watcherHandler.Unwatch)

		authorized.PATCH("/profile", profileHandler.Update)
		authorized.PATCH("/profile/update", profileHandler.UpdateDetails)

		authorized.GET("/admin/users", adminHandler.ListUsers)
		authorized.PATCH("/admin/update-role", adminHandler.UpdateRole)
	}
}
