package main

import (
	"fmt"

	"github.com/aretw0/tripwizard/internal/cli"
	"github.com/aretw0/tripwizard/pkg/pages"
	"github.com/spf13/cobra"
)

func newProfileCmd(a *app) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Traveller profile page",
	}

	var p pages.Profile
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Save the traveller profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}
			if err := pages.SubmitProfile(cmd.Context(), rt.Wizard.Session(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved for %s %s\n", p.FirstName, p.LastName)
			return nil
		},
	}
	setCmd.Flags().StringVar(&p.FirstName, "first", "", "First name")
	setCmd.Flags().StringVar(&p.LastName, "last", "", "Last name")
	setCmd.Flags().StringVar(&p.DOB, "dob", "", "Date of birth (YYYY-MM-DD)")
	setCmd.Flags().StringVar(&p.Email, "email", "", "Email address")
	setCmd.Flags().StringVar(&p.Mobile, "mobile", "", "Mobile number")
	setCmd.Flags().StringVar(&p.Gender, "gender", "", "Gender")
	_ = setCmd.MarkFlagRequired("first")
	_ = setCmd.MarkFlagRequired("last")

	profileCmd.AddCommand(setCmd)
	return profileCmd
}

func newTripCmd(a *app) *cobra.Command {
	tripCmd := &cobra.Command{
		Use:   "trip",
		Short: "Trip planner page",
	}

	var travelers, days int
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Save the number of travellers and the trip length",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}
			if err := pages.SubmitTrip(cmd.Context(), rt.Wizard.Session(), travelers, days); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Trip saved: %d traveller(s), %d day(s)\n", travelers, days)
			return nil
		},
	}
	setCmd.Flags().IntVar(&travelers, "travelers", 0, "Number of travellers")
	setCmd.Flags().IntVar(&days, "days", 0, "Trip duration in days")
	_ = setCmd.MarkFlagRequired("travelers")
	_ = setCmd.MarkFlagRequired("days")

	tripCmd.AddCommand(setCmd)
	return tripCmd
}
