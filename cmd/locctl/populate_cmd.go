package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/muhammadheryan/item-location/application/location"
	"github.com/muhammadheryan/item-location/application/resolution"
	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	customErrors "github.com/muhammadheryan/item-location/utils/errors"
	"github.com/spf13/cobra"
)

type populateStats struct {
	assigned int
	skipped  int
	locked   int
	failed   int
}

func newPopulateCmd(opts *rootOptions) *cobra.Command {
	var (
		client   string
		leaseTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "populate <rackID>",
		Short: "Walk every bin under a rack and assign a product to each",
		Long: "Visits each leaf location under the rack in path order. Each one is leased " +
			"for the duration of the question; enter a product code to assign it, leave the " +
			"answer blank to skip, or enter q to stop.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rackID, err := parseLocationID(args[0])
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
			if _, ok := tree.Node(rackID); !ok {
				return fmt.Errorf("location %d not found", rackID)
			}

			w := &populateWizard{
				locations: svc.locations,
				tree:      tree,
				session:   opts.session(),
				prompter:  newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				out:       cmd.OutOrStdout(),
				leaseTTL:  leaseTTL,
			}
			if client != "" {
				w.client = &client
			}
			w.flow = resolution.NewFlow(svc.assignments, svc.assignments, w.session)

			stats, err := w.run(cmd.Context(), rackID)
			fmt.Fprintf(cmd.OutOrStdout(), "Done: %d assigned, %d skipped, %d locked, %d failed\n",
				stats.assigned, stats.skipped, stats.locked, stats.failed)
			return err
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Reserve every assignment for this customer")
	cmd.Flags().DurationVar(&leaseTTL, "lease-ttl", 0, "How long each location is held while waiting for input (default: server setting)")
	return cmd
}

type populateWizard struct {
	locations location.LocationApp
	flow      *resolution.Flow
	tree      *location.Tree
	session   *model.OperatorSession
	prompter  *prompter
	out       io.Writer
	client    *string
	leaseTTL  time.Duration
}

var errQuit = errors.New("quit")

func (w *populateWizard) run(ctx context.Context, rackID uint64) (populateStats, error) {
	var stats populateStats
	for _, leaf := range w.tree.Leaves(rackID) {
		err := w.visit(ctx, leaf, &stats)
		if errors.Is(err, errQuit) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// visit handles one leaf. Assignment failures are reported and counted so the
// walk can continue; only input and lease infrastructure errors stop it.
func (w *populateWizard) visit(ctx context.Context, locationID uint64, stats *populateStats) error {
	path := w.tree.Path(locationID)

	if _, err := w.locations.AcquireLease(ctx, locationID, w.session.SessionID, w.leaseTTL); err != nil {
		if customErrors.Is(err, constant.ErrLocationLocked) {
			fmt.Fprintf(w.out, "%s: in use by another session, skipped\n", path)
			stats.locked++
			return nil
		}
		return err
	}
	defer func() {
		_ = w.locations.ReleaseLease(context.WithoutCancel(ctx), locationID, w.session.SessionID)
	}()

	code, err := w.prompter.Ask(fmt.Sprintf("%s product code: ", path))
	if err == io.EOF {
		return errQuit
	}
	if err != nil {
		return err
	}
	switch code {
	case "":
		stats.skipped++
		return nil
	case "q", "quit":
		return errQuit
	}

	r := &resolver{flow: w.flow, tree: w.tree, prompter: w.prompter, out: w.out}
	res, err := r.run(ctx, &model.AssignRequest{ItemID: code, LocationID: locationID, ClientID: w.client})
	switch {
	case err != nil:
		fmt.Fprintf(w.out, "%s: %v\n", path, err)
		stats.failed++
	case res == nil:
		stats.skipped++
	default:
		stats.assigned++
	}
	return nil
}
