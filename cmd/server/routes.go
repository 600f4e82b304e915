package main

import (
	"github.com/gin-gonic/gin"
	"glg-capital.backend/internal/interfaces/http/handlers"
	"glg-capital.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	clientHandler       *handlers.ClientHandler
	kycHandler          *handlers.KYCHandler
	investmentHandler   *handlers.InvestmentHandler
	notificationHandler *handlers.NotificationHandler
	adminHandler        *handlers.AdminHandler
	authMiddleware      gin.HandlerFunc
	adminMiddleware     gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.PUT("/me", d.authMiddleware, d.authHandler.UpdateMe)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		me := v1.Group("/me")
		me.Use(d.authMiddleware)
		{
			me.GET("/client", d.clientHandler.GetMine)
			me.PUT("/client", d.clientHandler.SaveMine)
		}

		kyc := v1.Group("/kyc")
		kyc.Use(d.authMiddleware)
		{
			kyc.POST("/simple", d.kycHandler.Submit)
			kyc.GET("/simple", d.kycHandler.GetMine)
			kyc.POST("/simple/:id/verify", d.kycHandler.VerifyEmail)
			kyc.POST("/simple/:id/resend", d.kycHandler.ResendCode)
			kyc.POST("/records", d.kycHandler.SubmitRecord)
			kyc.GET("/records", d.kycHandler.GetMyRecord)
		}

		investments := v1.Group("/investments")
		investments.Use(d.authMiddleware)
		{
			investments.POST("", middleware.IdempotencyMiddleware(), d.investmentHandler.Create)
			investments.GET("", d.investmentHandler.ListMine)
			investments.GET("/:id", d.investmentHandler.GetMine)
		}

		notifications := v1.Group("/notifications")
		notifications.Use(d.authMiddleware)
		{
			notifications.GET("", d.notificationHandler.List)
			notifications.GET("/unread-count", d.notificationHandler.UnreadCount)
			notifications.PATCH("/:id/read", d.notificationHandler.MarkAsRead)
			notifications.POST("/read-all", d.notificationHandler.MarkAllAsRead)
		}

		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, d.adminMiddleware)
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/clients", d.adminHandler.ListClients)
			admin.GET("/clients/:id", d.adminHandler.GetClient)
			admin.GET("/stats", d.adminHandler.Stats)
			admin.POST("/notifications", d.adminHandler.SendMessage)

			admin.GET("/kyc", d.kycHandler.ListRecords)
			admin.PATCH("/kyc/:id/status", d.kycHandler.ReviewRecord)

			admin.GET("/simple-kyc", d.kycHandler.ListForms)
			admin.GET("/simple-kyc/:id", d.kycHandler.GetForm)
			admin.PATCH("/simple-kyc/:id/review", d.kycHandler.ReviewForm)

			admin.GET("/investments", d.investmentHandler.List)
			admin.PATCH("/investments/:id/status", d.investmentHandler.UpdateStatus)
			admin.PATCH("/investments/:id", d.investmentHandler.Update)
			admin.DELETE("/investments/:id", d.investmentHandler.Delete)
		}
	}
}
