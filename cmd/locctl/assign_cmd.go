package main

import (
	"github.com/muhammadheryan/item-location/application/resolution"
	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	"github.com/spf13/cobra"
)

func newAssignCmd(opts *rootOptions) *cobra.Command {
	var (
		mode        string
		client      string
		exclusive   bool
		certificate bool
		yes         bool
	)

	cmd := &cobra.Command{
		Use:   "assign <item> <location>",
		Short: "Assign an item to a location, resolving conflicts interactively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			locationID, err := parseLocationID(args[1])
			if err != nil {
				return err
			}

			svc, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			tree, err := svc.locations.Tree(cmd.Context())
			if err != nil {
				return err
			}

			req := &model.AssignRequest{
				ItemID:              args[0],
				LocationID:          locationID,
				IsExclusive:         exclusive,
				RequiresCertificate: certificate,
				Mode:                constant.AssignmentMode(mode),
			}
			if client != "" {
				req.ClientID = &client
			}

			r := &resolver{
				flow:      resolution.NewFlow(svc.assignments, svc.assignments, opts.session()),
				tree:      tree,
				prompter:  newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				out:       cmd.OutOrStdout(),
				assumeYes: yes,
			}
			_, err = r.run(cmd.Context(), req)
			return err
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Write mode: add, move, add_and_mix or move_and_mix (default: decided by the conflict check)")
	cmd.Flags().StringVar(&client, "client", "", "Reserve the assignment for this customer")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "Mark the assignment exclusive to the client")
	cmd.Flags().BoolVar(&certificate, "certificate", false, "Require a certificate when picking")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Accept the suggested resolution without asking")
	return cmd
}
