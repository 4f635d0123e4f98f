// Command issue-token prints a signed access token for a user, for local
// development against the API.
//
//	issue-token -user 3f1c...  # uses PICKLE_AUTH_* from the environment
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/config"
	"github.com/pickle-rental/pickle-api/internal/service/auth"
)

func main() {
	userFlag := flag.String("user", "", "user id (uuid) to issue the token for")
	flag.Parse()

	token, err := issue(*userFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue-token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func issue(rawUserID string) (string, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return "", fmt.Errorf("invalid -user %q: %w", rawUserID, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return "", err
	}
	return jwtService.GenerateToken(context.Background(), userID)
}
