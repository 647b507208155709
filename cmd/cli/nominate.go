package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/quality-warden/internal/nomination"
)

var (
	nominateProblem  string
	nominateKind     string
	nominateContents string
)

var nominateCmd = &cobra.Command{
	Use:   "nominate",
	Short: "File a promotion or demotion nomination for a problem",
	Long: `File a quality nomination as --user. Contents is a JSON document given inline
or read from a file with @path, for example:

  quality-cli nominate -u alice --problem aplusb --kind demotion \
    --contents '{"rationale":"copy of sumas","reason":"duplicate","original":"sumas"}'`,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()

		contents, err := readContents(nominateContents)
		if err != nil {
			return err
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

		n, err := s.service.Create(ctx, actorID, nomination.CreateRequest{
			ProblemAlias: nominateProblem,
			Nomination:   nominateKind,
			Contents:     contents,
		})
		if err != nil {
			return describe(err)
		}

		result := map[string]any{"status": "ok", "qualitynomination_id": n.ID}
		return render(os.Stdout, result, func(out io.Writer) error {
			_, err := successColor.Fprintf(out, "Nomination #%d filed for %s.\n", n.ID, nominateProblem)
			return err
		})
	},
}

func readContents(arg string) (json.RawMessage, error) {
	if path, ok := strings.CutPrefix(arg, "@"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read contents file: %w", err)
		}
		return data, nil
	}
	return json.RawMessage(arg), nil
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	nominateCmd.Flags().StringVar(&nominateProblem, "problem", "", "Alias of the nominated problem")
	nominateCmd.Flags().StringVar(&nominateKind, "kind", "", "Nomination kind: promotion or demotion")
	nominateCmd.Flags().StringVar(&nominateContents, "contents", "", "Nomination contents as JSON, or @file")
	_ = nominateCmd.MarkFlagRequired("problem")
	_ = nominateCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(nominateCmd)
}
