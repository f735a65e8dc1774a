package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/osse101/CoinQuest_Go/internal/auth"
	"github.com/osse101/CoinQuest_Go/internal/config"
)

type TokenCommand struct{}

func (c *TokenCommand) Name() string {
	return "token"
}

func (c *TokenCommand) Description() string {
	return "Issue a local bearer token (-sub <auth id> [-email e] [-ttl 1h])"
}

func (c *TokenCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	sub := fs.String("sub", "", "auth subject id")
	email := fs.String("email", "", "email claim")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sub == "" {
		return fmt.Errorf("-sub is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		return fmt.Errorf("refusing to mint tokens in %s", cfg.Environment)
	}

	v, err := auth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	if err != nil {
		return err
	}
	tok, err := v.Issue(*sub, *email, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(tok)
	return nil
}
