package main

import (
	"fmt"
	"strings"

	"github.com/muhammadheryan/item-location/application/location"
	"github.com/spf13/cobra"
)

func newTreeCmd(opts *rootOptions) *cobra.Command {
	var rootID uint64

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the location hierarchy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			tree, err := svc.locations.Tree(cmd.Context())
			if err != nil {
				return err
			}

			roots := tree.Roots()
			if cmd.Flags().Changed("root") {
				if _, ok := tree.Node(rootID); !ok {
					return fmt.Errorf("location %d not found", rootID)
				}
				roots = []uint64{rootID}
			}
			for _, id := range roots {
				printSubtree(cmd, tree, id)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&rootID, "root", 0, "Only print the subtree under this location id")
	return cmd
}

func printSubtree(cmd *cobra.Command, tree *location.Tree, id uint64) {
	base, _ := tree.Node(id)
	printNode(cmd, tree, id, 0)
	for _, d := range tree.Descendants(id) {
		n, _ := tree.Node(d)
		printNode(cmd, tree, d, n.Depth-base.Depth)
	}
}

func printNode(cmd *cobra.Command, tree *location.Tree, id uint64, indent int) {
	n, _ := tree.Node(id)
	line := fmt.Sprintf("%s%s [%d, %s]", strings.Repeat("  ", indent), n.Name, n.ID, n.Type)
	if n.IsMixed {
		line += " mixed"
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
