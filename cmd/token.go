package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ammar944/AI-GOS-sub011/internal/auth"
)

var (
	tokenEmail string
	tokenTTL   time.Duration
)

// tokenCmd mints bearer tokens with the configured secret, for local
// development and smoke tests against serve.
var tokenCmd = &cobra.Command{
	Use:   "token <subject>",
	Short: "Issue a signed API token for a principal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := auth.NewJWTVerifier(cfg.Auth)
		if err != nil {
			return err
		}
		tok, err := v.Issue(args[0], tokenEmail, tokenTTL)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
