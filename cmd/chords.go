package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "List the chord fingerprint table",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, fp := range cfg.Table() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-7s %s\n", fp.Name, strings.Join(fp.PitchClasses, " "))
		}
		return nil
	},
}
