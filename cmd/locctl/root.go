package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/muhammadheryan/item-location/model"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	operator string
	connect  servicesFactory
}

// session is the identity the CLI writes under. Each invocation gets its own
// session id, which also owns any lease it takes.
func (o *rootOptions) session() *model.OperatorSession {
	return &model.OperatorSession{
		Username:  o.operator,
		Role:      "cli",
		SessionID: uuid.NewString(),
	}
}

func newRootCmd(connect servicesFactory) *cobra.Command {
	opts := &rootOptions{connect: connect}

	cmd := &cobra.Command{
		Use:           "locctl",
		Short:         "Item-location assignment tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.operator, "operator", defaultOperator(), "Operator name recorded as updated_by")

	cmd.AddCommand(newTreeCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newAssignCmd(opts))
	cmd.AddCommand(newPopulateCmd(opts))
	cmd.AddCommand(newCleanupCmd(opts))
	return cmd
}

func defaultOperator() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "locctl"
}

func execute() {
	cmd := newRootCmd(connectServices)
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
