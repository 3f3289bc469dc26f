package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/meetingbot-team/meetingbot/pkg/config"
	pkgjwt "github.com/meetingbot-team/meetingbot/pkg/jwt"
)

// Mints a bearer token for the given user id, using the configured
// JWT secret and expiry. With no argument a fresh user id is used.
//
// Usage: go run scripts/generate_token.go [user-id]
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	userID := uuid.New()
	if len(os.Args) > 1 {
		userID, err = uuid.Parse(os.Args[1])
		if err != nil {
			log.Fatalf("Invalid user id %q: %v", os.Args[1], err)
		}
	}

	manager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	token, err := manager.GenerateToken(userID)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Printf("User ID: %s\n", userID)
	fmt.Printf("Token:   %s\n", token)
	fmt.Printf("Expires: %s\n", cfg.JWT.Expiry)
}
