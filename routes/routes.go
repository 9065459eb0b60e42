package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"canteen-backend/controllers"
	"canteen-backend/middleware"
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

func SetupRouter(
	ac *controllers.AuthController,
	cc *controllers.CanteenController,
	rc *controllers.RoomController,
	dc *controllers.DishController,
	pc *controllers.PackageController,
	mc *controllers.MenuController,
	rvc *controllers.RatingController,
	bc *controllers.ReservationController,
	oc *controllers.OrderController,
	adc *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

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

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/me", middleware.Authentication(), ac.Me)
		}

		canteens := api.Group("/canteens")
		{
			canteens.GET("", cc.GetAll)
			canteens.GET("/:id", cc.GetByID)
			canteens.POST("", middleware.Authentication(), middleware.RequireElevated(), cc.Create)
			canteens.PUT("/:id", middleware.Authentication(), middleware.RequireElevated(), cc.Update)
			canteens.DELETE("/:id", middleware.Authentication(), middleware.RequireElevated(), cc.Delete)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetAll)
			rooms.GET("/:id", rc.GetByID)
			rooms.GET("/:id/availability", rc.CheckAvailability)
			rooms.POST("", middleware.Authentication(), middleware.RequireElevated(), rc.Create)
			rooms.PUT("/:id", middleware.Authentication(), middleware.RequireElevated(), rc.Update)
			rooms.DELETE("/:id", middleware.Authentication(), middleware.RequireElevated(), rc.Delete)
		}

		dishes := api.Group("/dishes")
		{
			dishes.GET("", dc.GetAll)
			dishes.GET("/:id", dc.GetByID)
			dishes.POST("", middleware.Authentication(), middleware.RequireElevated(), dc.Create)
			dishes.PUT("/:id", middleware.Authentication(), middleware.RequireElevated(), dc.Update)
			dishes.DELETE("/:id", middleware.Authentication(), middleware.RequireElevated(), dc.Delete)
		}

		tags := api.Group("/dietary-tags")
		{
			tags.GET("", dc.GetDietaryTags)
			tags.POST("", middleware.Authentication(), middleware.RequireElevated(), dc.CreateDietaryTag)
		}

		allergens := api.Group("/allergens")
		{
			allergens.GET("", dc.GetAllergens)
			allergens.POST("", middleware.Authentication(), middleware.RequireElevated(), dc.CreateAllergen)
		}

		packages := api.Group("/packages")
		{
			packages.GET("", pc.GetAll)
			packages.GET("/:id", pc.GetByID)
			packages.POST("", middleware.Authentication(), middleware.RequireElevated(), pc.Create)
			packages.DELETE("/:id", middleware.Authentication(), middleware.RequireElevated(), pc.Delete)
		}

		menus := api.Group("/menus")
		{
			menus.GET("/canteen/:canteenId", mc.GetByCanteen)
			menus.POST("", middleware.Authentication(), middleware.RequireElevated(), mc.Publish)
			menus.DELETE("/:id", middleware.Authentication(), middleware.RequireElevated(), mc.Delete)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/dish/:dishId", rvc.GetByDish)
			reviews.POST("", middleware.Authentication(), rvc.Create)
			reviews.DELETE("/:id", middleware.Authentication(), rvc.Delete)
		}

		banquets := api.Group("/banquets", middleware.Authentication())
		{
			banquets.POST("", bc.Create)
			banquets.GET("", middleware.RequireElevated(), bc.GetAll)
			banquets.GET("/my", bc.GetMine)
			banquets.GET("/canteen/:canteenId", middleware.RequireElevated(), bc.GetByCanteen)
			banquets.GET("/:id", bc.GetByID)
			banquets.PUT("/:id", bc.Update)
			banquets.PUT("/:id/status", bc.UpdateStatus)
			banquets.PUT("/:id/cancel", bc.Cancel)
		}

		admin := api.Group("/admin", middleware.Authentication(), middleware.RequireElevated())
		{
			admin.GET("/users", adc.ListUsers)
			admin.PUT("/users/:id/role", adc.UpdateRole)
			admin.PUT("/users/:id/password", adc.ResetPassword)
			admin.DELETE("/users/:id", adc.DeleteUser)
		}

		orders := api.Group("/orders", middleware.Authentication())
		{
			orders.POST("", oc.Create)
			orders.GET("", middleware.RequireElevated(), oc.GetAll)
			orders.GET("/my", oc.GetMine)
			orders.GET("/canteen/:canteenId", middleware.RequireElevated(), oc.GetByCanteen)
			orders.GET("/:id", oc.GetByID)
			orders.PUT("/:id/status", oc.UpdateStatus)
			orders.PUT("/:id/cancel", oc.Cancel)
		}
	}

	return r
}
