package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage API tokens",
}

var tokenCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Issue a new API token for --user",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.cleanup()

		actorID, err := s.actor(ctx)
		if err != nil {
			return err
		}

		token := uuid.NewString()
		if err := s.store.CreateAuthToken(ctx, token, actorID); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}
		s.logger.Info("api token issued", "user", actingUser)

		result := map[string]any{"user": actingUser, "token": token}
		return render(os.Stdout, result, func(out io.Writer) error {
			successColor.Fprintf(out, "Token for %s:\n", actingUser)
			_, err := fmt.Fprintln(out, token)
			return err
		})
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	tokenCmd.AddCommand(tokenCreateCmd)
	rootCmd.AddCommand(tokenCmd)
}
