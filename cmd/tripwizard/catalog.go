package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/tripwizard/internal/cli"
	"github.com/aretw0/tripwizard/pkg/pages"
	"github.com/spf13/cobra"
)

func newDestinationCmd(a *app) *cobra.Command {
	destinationCmd := &cobra.Command{
		Use:   "destination",
		Short: "Destination page",
	}

	var format string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List destinations",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}
			list, err := rt.Wizard.Catalog().Destinations(cmd.Context())
			if err != nil {
				return err
			}
			switch format {
			case cli.FormatJSON:
				return cli.WriteJSON(cmd.OutOrStdout(), list)
			case cli.FormatYAML:
				return cli.WriteYAML(cmd.OutOrStdout(), list)
			}

			money := rt.Wizard.Formatter()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPRICE/DAY")
			for _, d := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.ID, d.Record.Name, money.Format(d.Record.Price))
			}
			return tw.Flush()
		},
	}
	listCmd.Flags().StringVar(&format, "format", cli.FormatText, "Output format: text, json or yaml")

	selectCmd := &cobra.Command{
		Use:   "select <id>",
		Short: "Choose a destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}
			d, err := rt.Wizard.Catalog().Destination(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := pages.SelectDestination(cmd.Context(), rt.Wizard.Durable(), d.Record); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Destination selected: %s\n", d.Record.Name)
			return nil
		},
	}

	destinationCmd.AddCommand(listCmd, selectCmd)
	return destinationCmd
}

func newGuideCmd(a *app) *cobra.Command {
	guideCmd := &cobra.Command{
		Use:   "guide",
		Short: "Guide page",
	}

	var format string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List local guides",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}
			list, err := rt.Wizard.Catalog().Guides(cmd.Context())
			if err != nil {
				return err
			}
			switch format {
			case cli.FormatJSON:
				return cli.WriteJSON(cmd.OutOrStdout(), list)
			case cli.FormatYAML:
				return cli.WriteYAML(cmd.OutOrStdout(), list)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSPECIALTY\tRATING\tLANGUAGES")
			for _, g := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\n",
					g.ID, g.Record.Name, g.Record.Specialty, g.Record.Rating, strings.Join(g.Record.Languages, ", "))
			}
			return tw.Flush()
		},
	}
	listCmd.Flags().StringVar(&format, "format", cli.FormatText, "Output format: text, json or yaml")

	selectCmd := &cobra.Command{
		Use:   "select <id>",
		Short: "Choose a guide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}
			g, err := rt.Wizard.Catalog().Guide(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := pages.SelectGuide(cmd.Context(), rt.Wizard.Durable(), g.Record); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Guide selected: %s\n", g.Record.Name)
			return nil
		},
	}

	noneCmd := &cobra.Command{
		Use:   "none",
		Short: "Explore your hometown without a guide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}
			if err := pages.ChooseHometown(cmd.Context(), rt.Wizard.Durable()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Exploring without a guide")
			return nil
		},
	}

	guideCmd.AddCommand(listCmd, selectCmd, noneCmd)
	return guideCmd
}
