package main

import (
	"fmt"

	"github.com/0xlemi/tunechord/internal/audio"
	"github.com/0xlemi/tunechord/internal/log"
	"github.com/spf13/cobra"
)

var human bool

func init() {
	analyzeCmd.Flags().BoolVar(&human, "human", false, "print localized note and chord names")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.wav>...",
	Short: "Detect notes and chords in WAV files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline := newPipeline()
		out := cmd.OutOrStdout()

		for i, path := range args {
			buf, err := audio.DecodeWAV(path)
			if err != nil {
				return err
			}

			res := pipeline.RunBuffer(buf)
			log.Logger.WithField("file", path).
				WithField("duration", buf.Duration()).
				WithFields(res.Fields()).
				Debug("Analyzed file")

			if i > 0 {
				fmt.Fprintln(out)
			}
			if len(args) > 1 {
				fmt.Fprintf(out, "%s:\n", path)
			}
			if human {
				fmt.Fprintln(out, res.FormatHuman(locale(), pipeline.Table()))
			} else {
				fmt.Fprintln(out, res.Format())
			}
		}
		return nil
	},
}
