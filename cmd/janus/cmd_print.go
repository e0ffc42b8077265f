package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhamidi/janus/text"
)

func newPrintCmd() *cobra.Command {
	var sepStyle string

	cmd := &cobra.Command{
		Use:           "print <value>...",
		Short:         "Render values through the chain's printer",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]uint64, len(args))
			for i, a := range args {
				v, err := strconv.ParseUint(a, 10, 64)
				if err != nil {
					return fmt.Errorf("bad value %q: %w", a, err)
				}
				values[i] = v
			}

			sep, err := separator(sepStyle)
			if err != nil {
				return err
			}
			unit, err := chain(len(values), sep)
			if err != nil {
				return err
			}

			cur := text.New("")
			if err := unit.Print(values, cur); err != nil {
				return err
			}
			fmt.Println(cur.Rest())
			return nil
		},
	}

	cmd.Flags().StringVar(&sepStyle, "sep", "dot", "separator style: dot or dash")

	return cmd
}
