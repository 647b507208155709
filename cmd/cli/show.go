package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a nomination with its contents and reviewers",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid nomination id %q", args[0])
		}

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.cleanup()

		actorID, err := s.actor(ctx)
		if err != nil {
			return err
		}

		details, err := s.service.Details(ctx, actorID, id)
		if err != nil {
			return describe(err)
		}
		return printDetails(details)
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(showCmd)
}
