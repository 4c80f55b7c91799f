package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"guarderia-felina/internal/adapters/auth/jwtauth"
	"guarderia-felina/internal/platform/config"

	"github.com/joho/godotenv"
)

// token emite un JWT de administrador firmado con JWT_SECRET.
//
//	go run ./cmd/token -user admin-1 -email ana@example.com -ttl 12h
func main() {
	_ = godotenv.Load()

	userID := flag.String("user", "admin", "user id del administrador")
	email := flag.String("email", "", "email opcional")
	ttl := flag.Duration("ttl", 24*time.Hour, "vigencia del token")
	flag.Parse()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no configurado")
		os.Exit(1)
	}

	token, err := jwtauth.NewVerifier(cfg.JWTSecret).Issue(*userID, *email, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
