package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/tripwizard/internal/cli"
	"github.com/aretw0/tripwizard/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	var format string
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the confirmation page: traveller, trip and cost breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cli.ValidFormat(format) {
				return fmt.Errorf("unknown format %q", format)
			}
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}

			snap := rt.Wizard.Load(cmd.Context())
			out := cmd.OutOrStdout()

			switch format {
			case cli.FormatJSON:
				return cli.WriteJSON(out, snap)
			case cli.FormatYAML:
				return cli.WriteYAML(out, snap)
			case cli.FormatMarkdown:
				return cli.WriteMarkdown(out, tui.SummaryMarkdown(snap), isTerminal(out))
			default:
				_, err := io.WriteString(out, tui.SummaryText(snap))
				return err
			}
		},
	}
	summaryCmd.Flags().StringVarP(&format, "format", "f", cli.FormatText, "Output format: text, json, yaml or markdown")
	return summaryCmd
}

// isTerminal reports whether w is a terminal, so rich rendering is worth it.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && tui.IsTerminal(f)
}
