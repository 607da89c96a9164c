package main

import (
	"context"
	"errors"
	"log"
	"os"

	"tasklist_api/internal/db"
	"tasklist_api/internal/domain"
	"tasklist_api/internal/repository"
	"tasklist_api/internal/service"
)

func main() {
	// expects DATABASE_URL and JWT_SECRET env vars
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	userID := os.Getenv("TEST_USER_ID")
	if userID == "" {
		userID = "alice"
	}
	password := os.Getenv("TEST_USER_PASSWORD")
	if password == "" {
		password = "password123"
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	existing, err := repo.GetByID(ctx, userID)
	if err == nil {
		log.Printf("user already exists id=%s created_at=%v\n", existing.ID, existing.CreatedAt)
	} else if errors.Is(err, repository.ErrUserNotFound) {
		hash, err := service.HashPassword(password)
		if err != nil {
			log.Fatalf("hash password failed: %v", err)
		}
		u := &domain.User{ID: userID, PasswordHash: hash}
		if err := repo.Create(ctx, u); err != nil {
			log.Fatalf("create user failed: %v", err)
		}
		log.Printf("user created id=%s\n", u.ID)
	} else {
		log.Fatalf("get user failed: %v", err)
	}

	// initialize JWT and print token
	service.InitJWT()
	token, err := service.GenerateJWT(userID)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
