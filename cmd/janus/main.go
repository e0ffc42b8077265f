package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("janus")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "janus",
		Short: "Invertible parser/printer tools",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newRoundtripCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
