package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"elegant-hotel/auth"
	"elegant-hotel/controllers"
	"elegant-hotel/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires middleware and the API surface onto a gin engine.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	adc *controllers.AdminController,
	jwtService *auth.JWTService,
	tokens auth.TokenStore,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(jwtService, tokens, logger)
	requireAdmin := middleware.RequireAdmin()
	loginLimiter := middleware.NewRateLimiter(10, 5)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", loginLimiter.Limit(), ac.Register)
			authRoutes.POST("/login", loginLimiter.Limit(), ac.Login)
			authRoutes.POST("/logout", requireAuth, ac.Logout)
			authRoutes.GET("/check", requireAuth, ac.Check)
			authRoutes.PUT("/password", requireAuth, ac.ChangePassword)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.List)
			rooms.GET("/:id", rc.Get)
			rooms.POST("", requireAuth, requireAdmin, rc.Create)
			rooms.PUT("/:id", requireAuth, requireAdmin, rc.Update)
			rooms.DELETE("/:id", requireAuth, requireAdmin, rc.Delete)
		}

		bookings := api.Group("/bookings", requireAuth)
		{
			bookings.GET("", bc.List)
			bookings.POST("", bc.Create)

			// /my must stay ahead of /:id
			bookings.GET("/my", bc.My)

			bookings.GET("/:id", bc.Get)
			bookings.PUT("/:id/cancel", bc.Cancel)
			bookings.DELETE("/:id", requireAdmin, bc.Delete)
		}

		admin := api.Group("/admin", requireAuth, requireAdmin)
		{
			admin.GET("/stats", adc.GetStats)
			admin.GET("/bookings/recent", adc.RecentBookings)
			admin.PATCH("/bookings/:id", adc.UpdateBookingStatus)
			admin.GET("/users", adc.ListUsers)
			admin.PATCH("/users/:id", adc.UpdateUser)
			admin.DELETE("/users/:id", adc.DeleteUser)
		}
	}

	return r
}
