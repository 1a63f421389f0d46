package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	vidtubeHTTP "vidtube/internal/controller/http"
	"vidtube/internal/repo/persistent"
	"vidtube/internal/usecase"
	"vidtube/pkg/config"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"
	"vidtube/pkg/middleware"
	"vidtube/pkg/queue"
	"vidtube/pkg/response"
	"vidtube/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "vidtube/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	tweetRepo := persistent.NewTweetRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, s3Client, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, userRepo, s3Client, redisClient, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, queueClient, log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, userRepo)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, queueClient, log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, userRepo)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, queueClient, log)
	dashboardUseCase := usecase.NewDashboardUseCase(videoRepo, likeRepo, userRepo)

	// Initialize HTTP handlers
	authHandler := vidtubeHTTP.NewAuthHandler(authUseCase, log)
	videoHandler := vidtubeHTTP.NewVideoHandler(videoUseCase, log)
	commentHandler := vidtubeHTTP.NewCommentHandler(commentUseCase, log)
	tweetHandler := vidtubeHTTP.NewTweetHandler(tweetUseCase, log)
	likeHandler := vidtubeHTTP.NewLikeHandler(likeUseCase, log)
	playlistHandler := vidtubeHTTP.NewPlaylistHandler(playlistUseCase, log)
	subscriptionHandler := vidtubeHTTP.NewSubscriptionHandler(subscriptionUseCase, log)
	dashboardHandler := vidtubeHTTP.NewDashboardHandler(dashboardUseCase, log)

	wrap := func(fn response.HandlerFunc) gin.HandlerFunc {
		return response.Wrap(log, fn)
	}

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", wrap(authHandler.Register))
		public.POST("/auth/login", wrap(authHandler.Login))
		public.POST("/auth/refresh", wrap(authHandler.Refresh))
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute)) // 100 requests per minute

	{
		api.POST("/auth/logout", wrap(authHandler.Logout))
		api.GET("/auth/me", wrap(authHandler.Me))

		api.GET("/videos", wrap(videoHandler.ListVideos))
		api.POST("/videos", wrap(videoHandler.PublishVideo))
		api.GET("/videos/:videoId", wrap(videoHandler.GetVideo))
		api.PATCH("/videos/:videoId", wrap(videoHandler.UpdateVideo))
		api.DELETE("/videos/:videoId", wrap(videoHandler.DeleteVideo))
		api.PATCH("/videos/:videoId/toggle-publish", wrap(videoHandler.TogglePublish))
		api.POST("/videos/:videoId/view", wrap(videoHandler.RecordView))

		api.GET("/videos/:videoId/comments", wrap(commentHandler.GetVideoComments))
		api.POST("/videos/:videoId/comments", wrap(commentHandler.AddComment))
		api.PATCH("/comments/:commentId", wrap(commentHandler.UpdateComment))
		api.DELETE("/comments/:commentId", wrap(commentHandler.DeleteComment))

		api.POST("/videos/:videoId/like", wrap(likeHandler.ToggleVideoLike))
		api.POST("/comments/:commentId/like", wrap(likeHandler.ToggleCommentLike))
		api.POST("/tweets/:tweetId/like", wrap(likeHandler.ToggleTweetLike))
		api.GET("/likes/videos", wrap(likeHandler.GetLikedVideos))

		api.POST("/tweets", wrap(tweetHandler.CreateTweet))
		api.GET("/tweets", wrap(tweetHandler.GetUserTweets))
		api.PATCH("/tweets/:tweetId", wrap(tweetHandler.UpdateTweet))
		api.DELETE("/tweets/:tweetId", wrap(tweetHandler.DeleteTweet))

		api.POST("/playlists", wrap(playlistHandler.CreatePlaylist))
		api.GET("/playlists/:playlistId", wrap(playlistHandler.GetPlaylist))
		api.PATCH("/playlists/:playlistId", wrap(playlistHandler.UpdatePlaylist))
		api.DELETE("/playlists/:playlistId", wrap(playlistHandler.DeletePlaylist))
		api.PATCH("/playlists/:playlistId/videos/:videoId", wrap(playlistHandler.AddVideo))
		api.DELETE("/playlists/:playlistId/videos/:videoId", wrap(playlistHandler.RemoveVideo))

		api.POST("/channels/:channelId/subscribe", wrap(subscriptionHandler.ToggleSubscription))
		api.GET("/channels/:channelId/subscribers", wrap(subscriptionHandler.GetChannelSubscribers))
		api.GET("/channels/:channelId/stats", wrap(dashboardHandler.GetChannelStats))
		api.GET("/channels/:channelId/videos", wrap(dashboardHandler.GetChannelVideos))

		api.GET("/users/history", wrap(videoHandler.GetWatchHistory))
		api.GET("/users/:userId/playlists", wrap(playlistHandler.GetUserPlaylists))
		api.GET("/users/:userId/subscriptions", wrap(subscriptionHandler.GetSubscribedChannels))
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("VidTube API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down VidTube API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("VidTube API exited")
}
