package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/verlof-hq/leave-backend-go/internal/config"
	"github.com/verlof-hq/leave-backend-go/internal/fixtures"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/database"
	"github.com/verlof-hq/leave-backend-go/internal/repository/postgresql"
	"github.com/verlof-hq/leave-backend-go/migrations"
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

	ctx := context.Background()

	if err := migrations.Apply(ctx, db); err != nil {
		fmt.Println("Error applying migrations:", err)
		os.Exit(1)
	}

	if err := seed(ctx, db); err != nil {
		fmt.Println("Error seeding database:", err)
		os.Exit(1)
	}

	fmt.Println("Database seeded successfully")
}

func seed(ctx context.Context, db *database.DB) error {
	// Clear existing data, children first
	tables := []string{"special_leave_usages", "leaves", "leave_balances", "employees"}
	for _, table := range tables {
		if _, err := db.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	balanceRepo := postgresql.NewLeaveBalanceRepository(db)

	for _, emp := range fixtures.Employees() {
		if _, err := employeeRepo.Create(ctx, emp); err != nil {
			return fmt.Errorf("create employee %s: %w", emp.EmployeeID, err)
		}
	}

	for _, balance := range fixtures.Balances(time.Now().UTC().Year()) {
		if _, err := balanceRepo.Create(ctx, balance); err != nil {
			return fmt.Errorf("create balance for %s: %w", balance.EmployeeID, err)
		}
	}

	for _, lv := range fixtures.Leaves() {
		if _, err := leaveRepo.Create(ctx, lv); err != nil {
			return fmt.Errorf("create leave %q: %w", lv.LeaveLabel, err)
		}
	}

	return nil
}
