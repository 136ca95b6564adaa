package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cargotrack/cargotrack/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage authentication tokens",
	Long:  `Issue API tokens and hash operator passwords for the config file`,
}

var issueTokenCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a JWT for the configured operator",
	Long: `Issue a JWT signed with the jwt_secret from the configuration file.

The token carries the configured admin username and expires after the
configured jwt_expiration.

Examples:
  cargotrack token issue
  cargotrack token issue --config /etc/cargotrack/config.yaml`,
	RunE: runIssueToken,
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash [password]",
	Short: "Hash a password for admin_password_hash",
	Long: `Hash a password with bcrypt for use as security.admin_password_hash.

Storing the hash instead of admin_password keeps the plaintext out of the
config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runHashPassword,
}

func init() {
	tokenCmd.AddCommand(issueTokenCmd)
	tokenCmd.AddCommand(hashPasswordCmd)
}

func runIssueToken(cmd *cobra.Command, args []string) error {
	if cfg.Security.JWTSecret == "" {
		return fmt.Errorf(`jwt_secret not found in config file

Add to your config.yaml:
  security:
    jwt_secret: your-secret-here`)
	}

	svc := auth.NewJWTService(cfg)
	token, expiresAt, err := svc.GenerateToken(cfg.Security.AdminUsername)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Printf("Token for %s (expires %s):\n%s\n", cfg.Security.AdminUsername, expiresAt.Format("2006-01-02 15:04:05"), token)
	return nil
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	hash, err := auth.HashPassword(args[0])
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Printf("Add this to your config.yaml:\n")
	fmt.Printf("  security:\n")
	fmt.Printf("    admin_password_hash: %s\n", hash)
	return nil
}
