package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/ocean-notes/internal/version"
)

// Version is set at build time via ldflags
var Version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ocean version %s\n", version.Effective(Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
