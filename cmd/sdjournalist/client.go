package main

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/dmitrijs2005/securedrop"
	"github.com/dmitrijs2005/securedrop/auth"
	"github.com/dmitrijs2005/securedrop/internal/config"
	"github.com/dmitrijs2005/securedrop/internal/logging"
	"github.com/dmitrijs2005/securedrop/internal/termx"
)

// newClient loads configuration, prompts for the passphrase (and, without a
// TOTP secret, for a one-time code), and authenticates against the server.
func newClient(ctx context.Context, cmd *cli.Command) (*securedrop.Client, error) {
	cfg := config.Load()
	if v := cmd.String("url"); v != "" {
		cfg.BaseURL = v
	}
	if v := cmd.String("username"); v != "" {
		cfg.Username = v
	}
	if v := cmd.String("otp-secret"); v != "" {
		cfg.OTPSecret = v
	}

	logger := logging.New(cfg.LogLevel)

	username := cfg.Username
	if username == "" {
		var err error
		username, err = termx.ReadLine(bufio.NewReader(os.Stdin), "Username", os.Stderr)
		if err != nil {
			return nil, err
		}
	}
	passphrase, err := termx.ReadSecret("Passphrase", os.Stderr)
	if err != nil {
		return nil, err
	}

	var creds auth.Credentials
	if cfg.OTPSecret != "" {
		creds, err = auth.NewUserPassTotp(username, passphrase, cfg.OTPSecret)
	} else {
		var code string
		code, err = termx.ReadLine(bufio.NewReader(os.Stdin), "One-time code", os.Stderr)
		if err != nil {
			return nil, err
		}
		creds, err = auth.NewUserPassCode(username, passphrase, code)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("authenticating", "url", cfg.BaseURL, "username", username)
	client, err := securedrop.NewClient(ctx, cfg.BaseURL, creds, nil)
	if err != nil {
		return nil, err
	}
	logger.Info("session established",
		"username", username,
		"expires", client.TokenExpiry().Format(time.RFC3339),
	)
	return client, nil
}
