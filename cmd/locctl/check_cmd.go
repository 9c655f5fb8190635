package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muhammadheryan/item-location/model"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <item> <location>",
		Short: "Report what stands in the way of assigning an item to a location",
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

			session := opts.session()
			res, err := svc.assignments.Check(cmd.Context(), &model.ConflictCheckRequest{ItemID: args[0], LocationID: locationID}, session.SessionID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "product has other locations: %t", res.ProductHasOtherLocations)
			if len(res.OtherLocations) > 0 {
				ids := make([]string, 0, len(res.OtherLocations))
				for _, id := range res.OtherLocations {
					ids = append(ids, strconv.FormatUint(id, 10))
				}
				fmt.Fprintf(cmd.OutOrStdout(), " (%s)", strings.Join(ids, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "location has other products: %t", res.LocationHasOtherProducts)
			if res.ConflictingProduct != nil {
				fmt.Fprintf(cmd.OutOrStdout(), " (%s %s)", res.ConflictingProduct.Code, res.ConflictingProduct.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "location is mixed: %t\n", res.LocationIsMixed)
			fmt.Fprintf(cmd.OutOrStdout(), "location is locked: %t\n", res.IsLocked)
			return nil
		},
	}
}

func parseLocationID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid location id %q", s)
	}
	return id, nil
}
