package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"canteen-backend/config"
	"canteen-backend/controllers"
	"canteen-backend/routes"
	"canteen-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database connection established, migrations applied")

	// Services
	userService := services.NewUserService(db)
	canteenService := services.NewCanteenService(db)
	roomService := services.NewRoomService(db)
	dishService := services.NewDishService(db)
	packageService := services.NewPackageService(db)
	menuService := services.NewMenuService(db)
	ratingService := services.NewRatingService(db)
	reservationService := services.NewReservationService(db)
	orderService := services.NewOrderService(db)

	// Controllers
	authController := controllers.NewAuthController(userService)
	canteenController := controllers.NewCanteenController(canteenService)
	roomController := controllers.NewRoomController(roomService, reservationService)
	dishController := controllers.NewDishController(dishService)
	packageController := controllers.NewPackageController(packageService)
	menuController := controllers.NewMenuController(menuService)
	ratingController := controllers.NewRatingController(ratingService)
	reservationController := controllers.NewReservationController(reservationService)
	orderController := controllers.NewOrderController(orderService)
	adminController := controllers.NewAdminController(userService)

	router := routes.SetupRouter(
		authController,
		canteenController,
		roomController,
		dishController,
		packageController,
		menuController,
		ratingController,
		reservationController,
		orderController,
		adminController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
