package server

import (
	"github.com/labstack/echo/v4"

	"example.com/dhansakhi/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	sessionHandler *handlers.SessionHandler,
	budgetHandler *handlers.BudgetHandler,
	qaHandler *handlers.QAHandler,
	guideHandler *handlers.GuideHandler,
	audioHandler *handlers.AudioHandler,
	notificationHandler *handlers.NotificationHandler,
	aiRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	api.POST("/sessions", sessionHandler.Create)

	sessions := api.Group("/sessions/:id")
	sessions.GET("", sessionHandler.Get)
	sessions.PUT("/locale", sessionHandler.SetLocale)

	sessions.PUT("/budget/income", budgetHandler.SetIncome)
	sessions.PUT("/budget/expenses", budgetHandler.SetExpenses)
	sessions.GET("/budget/savings", budgetHandler.Savings)

	sessions.POST("/question", qaHandler.Ask, aiRateLimiter)
	sessions.POST("/voice/start", qaHandler.VoiceStart)
	sessions.POST("/voice/result", qaHandler.VoiceResult)
	sessions.POST("/voice/end", qaHandler.VoiceEnd)

	sessions.GET("/guide", guideHandler.Get)
	sessions.POST("/guide/next", guideHandler.Next)
	sessions.POST("/guide/previous", guideHandler.Previous)
	sessions.POST("/guide/know-more", guideHandler.KnowMore, aiRateLimiter)

	sessions.GET("/stories", audioHandler.Stories)
	sessions.POST("/audio/play", audioHandler.Play)
	sessions.POST("/audio/pause", audioHandler.Pause)
	sessions.POST("/audio/resume", audioHandler.Resume)
	sessions.POST("/audio/ended", audioHandler.Ended)

	sessions.GET("/events", notificationHandler.Stream)
}
