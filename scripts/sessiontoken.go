// Command sessiontoken prints a session token for a user id, for local
// testing against a running API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tradenomi-backend/config"
	"tradenomi-backend/pkg/auth"
)

func main() {
	userID := flag.Int64("user", 0, "user id (users.id)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "usage: sessiontoken -user <id> [-ttl 24h]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	token, err := auth.NewSessions(cfg.SessionSecret).Issue(*userID, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
