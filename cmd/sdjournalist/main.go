// Package main provides the sdjournalist CLI, a thin interactive front end
// over the SecureDrop journalist API client.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:    "sdjournalist",
		Usage:   "Interact with a SecureDrop journalist API server",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Usage: "journalist API base URL (overrides SD_BASE_URL)",
			},
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "journalist account name (overrides SD_USERNAME)",
			},
			&cli.StringFlag{
				Name:  "otp-secret",
				Usage: "base32 TOTP secret; when unset a one-time code is prompted (overrides SD_OTP_SECRET)",
			},
		},
		Commands: getCommands(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
