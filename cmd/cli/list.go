package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/quality-warden/internal/core"
	"github.com/sevigo/quality-warden/internal/nomination"
)

var (
	listMode     string
	listPage     string
	listPageSize string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List quality nominations",
	Long: `List quality nominations as --user. Modes:

  all       every nomination (reviewers only)
  assigned  nominations assigned to the user (reviewers only)
  mine      nominations filed by the user`,
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

		var list func(context.Context, int64, nomination.PageRequest) ([]core.NominationSummary, error)
		switch listMode {
		case "all":
			list = s.service.ListAll
		case "assigned":
			list = s.service.ListAssignedToMe
		case "mine":
			list = s.service.ListMine
		default:
			return fmt.Errorf("unknown mode %q, expected all, assigned or mine", listMode)
		}

		nominations, err := list(ctx, actorID, nomination.PageRequest{Page: listPage, PageSize: listPageSize})
		if err != nil {
			return describe(err)
		}
		return printNominations(nominations)
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	listCmd.Flags().StringVar(&listMode, "mode", "mine", "Which nominations to list: all, assigned or mine")
	listCmd.Flags().StringVar(&listPage, "page", "", "Page number, starting at 1")
	listCmd.Flags().StringVar(&listPageSize, "page-size", "", "Nominations per page")
	rootCmd.AddCommand(listCmd)
}
