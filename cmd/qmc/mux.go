package main

import (
	"github.com/spf13/cobra"

	"github.com/pborges/qmc/internal/input"
	"github.com/pborges/qmc/internal/mux"
)

func newMuxCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "mux [minterms...]",
		Short:   "Implement a function with a reduced multiplexer",
		Example: "  qmc mux 1 3 5 6",
		RunE: func(cmd *cobra.Command, args []string) error {
			minterms, err := input.ParseArgs(args)
			if err != nil {
				return err
			}
			tbl, err := mux.Reduce(minterms)
			if err != nil {
				return err
			}
			o.log.WithField("width", tbl.Width).Debug("reduced multiplexer")
			return o.write(cmd.OutOrStdout(), tbl, tbl.String)
		},
	}
}
