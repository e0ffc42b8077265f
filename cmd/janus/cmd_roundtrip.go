package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/janus/text"
)

func newRoundtripCmd() *cobra.Command {
	var sepStyle string

	cmd := &cobra.Command{
		Use:           "roundtrip <input>",
		Short:         "Parse input, print it back and verify byte equality",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			sep, err := separator(sepStyle)
			if err != nil {
				return err
			}
			sepChar := "."
			if sepStyle == "dash" {
				sepChar = "-"
			}
			arity := strings.Count(input, sepChar) + 1
			unit, err := chain(arity, sep)
			if err != nil {
				return err
			}

			cur := text.New(input)
			values, err := unit.Parse(cur)
			if err != nil {
				return describeFailure(err)
			}
			consumed := input[:cur.Pos().Offset]

			out := text.New("")
			if err := unit.Print(values, out); err != nil {
				return err
			}
			if out.Rest() != consumed {
				return fmt.Errorf("round trip mismatch: consumed %q, printed %q", consumed, out.Rest())
			}

			log.Infof("round trip ok: %d values, %d bytes", len(values), len(consumed))
			fmt.Println("ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&sepStyle, "sep", "dot", "separator style: dot or dash")

	return cmd
}
