package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/janus/text"
)

func newParseCmd() *cobra.Command {
	var arity int
	var sepStyle string

	cmd := &cobra.Command{
		Use:           "parse <input>",
		Short:         "Parse a separated decimal chain",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, err := separator(sepStyle)
			if err != nil {
				return err
			}
			unit, err := chain(arity, sep)
			if err != nil {
				return err
			}

			cur := text.New(args[0])
			values, err := unit.Parse(cur)
			if err != nil {
				return describeFailure(err)
			}
			if rest := cur.Rest(); rest != "" {
				log.Noticef("trailing input left unparsed: %q", rest)
			}

			for i, v := range values {
				fmt.Printf("%d\t%d\n", i+1, v)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&arity, "arity", 3, "number of elements in the chain (max 12)")
	cmd.Flags().StringVar(&sepStyle, "sep", "dot", "separator style: dot or dash")

	return cmd
}
