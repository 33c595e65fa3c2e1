package main

import (
	"fmt"
	"strconv"

	"github.com/0xlemi/tunechord/internal/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note <notation|hz>...",
	Short: "Convert between note names and frequencies",
	Long: `Each argument is either a frequency in Hz (e.g. 440) or a note in
"<Letter>[♯|#|b][octave]" notation (e.g. C♯4, Bb, A).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			note, err := resolveNote(arg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.2f Hz\t%s\n",
				note.Notation(), note.PitchClass(), note.Frequency(), note.HumanReadable(locale()))
		}
		return nil
	},
}

func resolveNote(arg string) (pitch.Note, error) {
	if hz, err := strconv.ParseFloat(arg, 64); err == nil {
		return pitch.FromHz(hz)
	}
	return pitch.ParseNote(arg), nil
}
