package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCleanupCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove assignments in bulk",
	}
	cmd.AddCommand(newCleanupProductCmd(opts))
	cmd.AddCommand(newCleanupLocationCmd(opts))
	return cmd
}

func newCleanupProductCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "product <item>",
		Short: "Remove every assignment of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			res, err := svc.assignments.CleanupByProduct(cmd.Context(), args[0], opts.session())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d assignment(s) of %s\n", res.Deleted, args[0])
			return nil
		},
	}
}

func newCleanupLocationCmd(opts *rootOptions) *cobra.Command {
	var descendants bool

	cmd := &cobra.Command{
		Use:   "location <id>",
		Short: "Remove every assignment at a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locationID, err := parseLocationID(args[0])
			if err != nil {
				return err
			}

			svc, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			res, err := svc.assignments.CleanupByLocation(cmd.Context(), locationID, descendants, opts.session())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d assignment(s) at location %d\n", res.Deleted, locationID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&descendants, "descendants", false, "Also clear every location below this one")
	return cmd
}
