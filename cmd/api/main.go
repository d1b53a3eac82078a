package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/verlof-hq/leave-backend-go/internal/config"
	appHTTP "github.com/verlof-hq/leave-backend-go/internal/handler/http"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/cron"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/database"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/jwt"
	"github.com/verlof-hq/leave-backend-go/internal/repository/postgresql"
	authService "github.com/verlof-hq/leave-backend-go/internal/service/auth"
	employeeService "github.com/verlof-hq/leave-backend-go/internal/service/employee"
	leaveService "github.com/verlof-hq/leave-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.Database.URL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	specialLeaveUsageRepo := postgresql.NewSpecialLeaveUsageRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiration)
	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, leaveBalanceRepo, specialLeaveUsageRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(cfg.App, jwtService, authHandler, employeeHandler, leaveHandler)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("close-elapsed-leaves", time.Hour, leaveSvc.CloseElapsedLeaves)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
