package main

import (
	"fmt"

	"github.com/aretw0/tripwizard/internal/cli"
	"github.com/aretw0/tripwizard/pkg/navigation"
	"github.com/spf13/cobra"
)

func newNavCmd(a *app) *cobra.Command {
	var noDelay bool
	navCmd := &cobra.Command{
		Use:   "nav <from-page> <trigger>",
		Short: "Fire a page trigger and print the page it leads to",
		Long: `Resolves a trigger on a page the way the wizard buttons do, including the
transition delay and the guide page guard.

Pages:    home, planner, destinations, guides, confirmation
Triggers: book_now, calculate_plan, select_destination, next_activities, next_confirmation`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := navigation.ParsePage(args[0])
			if err != nil {
				return err
			}

			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{NoDelays: noDelay})
			if err != nil {
				return err
			}

			sigCtx := cli.NewSignalContext(cmd.Context())
			defer sigCtx.Cancel()

			to, err := rt.Wizard.Navigate(sigCtx, from, navigation.Trigger(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), to)
			return nil
		},
	}
	navCmd.Flags().BoolVar(&noDelay, "no-delay", false, "Skip transition delays")
	return navCmd
}
