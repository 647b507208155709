package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/quality-warden/internal/core"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

// render writes v in the structured formats, or calls table for the default one.
func render(out io.Writer, v any, table func(io.Writer) error) error {
	switch strings.ToLower(outputFormat) {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		defer encoder.Close()
		return encoder.Encode(v)
	case "table", "":
		return table(out)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

func statusColor(status core.Status) *color.Color {
	switch status {
	case core.StatusApproved:
		return successColor
	case core.StatusDenied:
		return errorColor
	default:
		return warnColor
	}
}

func printNominations(nominations []core.NominationSummary) error {
	return render(os.Stdout, nominations, func(out io.Writer) error {
		if len(nominations) == 0 {
			dimColor.Fprintln(out, "No nominations found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		titleColor.Fprintln(w, "ID\tKIND\tSTATUS\tPROBLEM\tNOMINATOR\tCREATED")
		for _, n := range nominations {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				n.ID,
				n.Kind,
				statusColor(n.Status).Sprint(n.Status),
				n.Problem.Alias,
				n.Nominator.Username,
				n.CreatedAt.Format(time.RFC822),
			)
		}
		return w.Flush()
	})
}

func printDetails(d *core.NominationDetails) error {
	return render(os.Stdout, d, func(out io.Writer) error {
		titleColor.Fprintf(out, "Nomination #%d\n", d.ID)
		fmt.Fprintf(out, "  Kind:      %s\n", d.Kind)
		fmt.Fprintf(out, "  Status:    %s\n", statusColor(d.Status).Sprint(d.Status))
		fmt.Fprintf(out, "  Problem:   %s (%s)\n", d.Problem.Alias, d.Problem.Title)
		fmt.Fprintf(out, "  Nominator: %s\n", d.Nominator.Username)
		fmt.Fprintf(out, "  Created:   %s\n", d.CreatedAt.Format(time.RFC822))

		names := make([]string, 0, len(d.Reviewers))
		for _, r := range d.Reviewers {
			names = append(names, r.Username)
		}
		if len(names) == 0 {
			dimColor.Fprintln(out, "  Reviewers: none")
		} else {
			fmt.Fprintf(out, "  Reviewers: %s\n", strings.Join(names, ", "))
		}

		var pretty any
		if err := json.Unmarshal(d.Contents, &pretty); err != nil {
			return fmt.Errorf("failed to decode contents: %w", err)
		}
		body, err := json.MarshalIndent(pretty, "  ", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  Contents:\n  %s\n", body)
		return nil
	})
}
