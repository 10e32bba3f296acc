package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/aretw0/tripwizard/internal/cli"
	"github.com/aretw0/tripwizard/pkg/persistence/middleware"
	"github.com/aretw0/tripwizard/pkg/ports"
	"github.com/spf13/cobra"
)

func newSessionCmd(a *app) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or reset the stored wizard data",
	}

	var reveal bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the raw values of both stores",
		Long:  `Prints every stored key. Contact details are masked unless --reveal is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}

			session, durable := rt.Wizard.Session(), rt.Wizard.Durable()
			if !reveal {
				mask := middleware.NewPIIMiddleware(middleware.DefaultPIIPatterns)
				session, durable = mask(session), mask(durable)
			}

			out := cmd.OutOrStdout()
			if rt.SessionID != "" {
				fmt.Fprintf(out, "Session: %s\n", rt.SessionID)
			}
			fmt.Fprintln(out, "\n[session]")
			if err := dumpStore(cmd.Context(), out, session); err != nil {
				return err
			}
			fmt.Fprintln(out, "\n[durable]")
			return dumpStore(cmd.Context(), out, durable)
		},
	}
	showCmd.Flags().BoolVar(&reveal, "reveal", false, "Show contact details unmasked")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored wizard data and start a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}
			if err := rt.Wizard.Reset(cmd.Context()); err != nil {
				return err
			}
			if a.cfg.SessionID == "" {
				if err := cli.ForgetSessionID(a.cfg.Store.DataDir); err != nil {
					return fmt.Errorf("failed to forget session id: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session cleared")
			return nil
		},
	}

	sessionCmd.AddCommand(showCmd, clearCmd)
	return sessionCmd
}

func dumpStore(ctx context.Context, w io.Writer, store ports.Store) error {
	keys, err := store.Keys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Fprintln(w, "(empty)")
		return nil
	}
	sort.Strings(keys)
	for _, k := range keys {
		v, err := store.Get(ctx, k)
		if err != nil {
			v = fmt.Sprintf("<unreadable: %v>", err)
		}
		fmt.Fprintf(w, "%s = %s\n", k, v)
	}
	return nil
}
