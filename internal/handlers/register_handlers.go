package handlers

import (
	"net/http"

	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/fintrack/fintrack_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public auth routes and the authenticated
// /api/v1 resource routes on the given engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerAuthRoutes(r, cfg, services.User)

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		registerAccountRoutes(api, services.Account)
		registerCategoryRoutes(api, services.Category)
		registerTransactionRoutes(api, services.Transaction)
	}
}
