// Command customertoken issues operator tokens for the customer API, signed
// with SERVICE_JWT_SECRET.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"customer-manager/config"
	"customer-manager/internal/infrastructure/jwt"
)

var errNoSecret = errors.New("no signing secret: set SERVICE_JWT_SECRET or pass --secret")

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("error loading .env file: %v", err)
	}

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("customertoken: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fl := pflag.NewFlagSet("customertoken", pflag.ContinueOnError)
	fl.SetOutput(io.Discard)
	operator := fl.StringP("operator", "o", "", "operator the token is issued to")
	scope := fl.StringP("scope", "s", jwt.ScopeWrite, "space separated scopes")
	ttl := fl.Duration("ttl", time.Hour, "token lifetime")
	secret := fl.String("secret", cfg.App.JWTSecret, "signing secret")
	if err = fl.Parse(args); err != nil {
		return err
	}

	if *operator == "" {
		return errors.New("--operator is required")
	}
	if *secret == "" {
		return errNoSecret
	}
	if *ttl <= 0 {
		return fmt.Errorf("--ttl must be positive, got %s", *ttl)
	}

	tok, err := jwt.New(*secret).GenerateJWT(*operator, *scope, *ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, tok)
	return err
}
