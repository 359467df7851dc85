package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/stemsi/curriculum-backend/internal/config"
	"github.com/stemsi/curriculum-backend/internal/database"
	"github.com/stemsi/curriculum-backend/internal/logger"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/repository"
	"github.com/stemsi/curriculum-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Services ───────────────────────────────────────────
	adminService := service.NewAdminService(repository.NewAdminRepository(pool))
	// Password hashing only; no session store is needed here.
	authService := service.NewAuthService(cfg, nil)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin User ===")

	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Newline after password input
	if err != nil {
		fmt.Println("Error reading password")
		return
	}
	password := string(bytePassword)
	if len(password) < 8 {
		fmt.Println("Error: Password must be at least 8 characters")
		return
	}

	fmt.Printf("Enter Role [%s/%s] (default %s): ", model.RoleRegistrar, model.RoleAdvisor, model.RoleRegistrar)
	roleStr, _ := reader.ReadString('\n')
	role := model.Role(strings.ToUpper(strings.TrimSpace(roleStr)))
	if role == "" {
		role = model.RoleRegistrar
	}
	if !role.Valid() {
		fmt.Printf("Error: Unknown role %q\n", role)
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	hashedPassword, err := authService.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	newAdmin := &model.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := adminService.Create(ctx, newAdmin); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			fmt.Printf("Error: %s is already registered\n", email)
			return
		}
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	fmt.Printf("\nSuccess! %s '%s' (%s) created with ID: %d\n", newAdmin.Role, newAdmin.Name, newAdmin.Email, newAdmin.ID)
}
