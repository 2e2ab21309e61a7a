package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	"github.com/DB3NJ4/StackFlow/internal/session"
)

func main() {
	key := flag.String("key", os.Getenv("JWT_SECRET"), "Secret used to sign the token (defaults to JWT_SECRET)")
	issuer := flag.String("issuer", os.Getenv("JWT_ISSUER"), "Token issuer")
	sub := flag.String("sub", "", "User id, random when empty")
	email := flag.String("email", "", "User email")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	if *key == "" {
		fmt.Println("--key is required")
		os.Exit(1)
	}

	if *sub == "" {
		*sub = uuid.NewString()
	} else if _, err := uuid.Parse(*sub); err != nil {
		fmt.Println("--sub must be a UUID")
		os.Exit(1)
	}

	now := time.Now()
	ss, err := session.NewToken([]byte(*key), *issuer, entity.User{ID: *sub, Email: *email}, now, now.Add(*ttl))
	if err != nil {
		fmt.Println("Signing failure:", err)
		os.Exit(1)
	}

	fmt.Println("User:", *sub)
	fmt.Println("Token:", ss)
}
