// Package token issues access tokens for local development and smoke tests.
package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/auth"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/config"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
)

var (
	env    string
	userID uint
	role   string
	email  string
	name   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		Long:  `Issue a signed access token for the given user using the configured JWT secret.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().UintVar(&userID, "user-id", 0, "User ID (required)")
	cmd.Flags().StringVar(&role, "role", string(authorization.RoleCustomer), "Role: customer, installer or admin")
	cmd.Flags().StringVar(&email, "email", "", "Email address carried in the token")
	cmd.Flags().StringVar(&name, "name", "", "Display name carried in the token")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	userRole := authorization.UserRole(role)
	if !userRole.IsValid() {
		return fmt.Errorf("invalid role %q", role)
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessTTL())
	signed, err := svc.Issue(authorization.Actor{
		UserID: userID,
		Role:   userRole,
		Email:  email,
		Name:   name,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
