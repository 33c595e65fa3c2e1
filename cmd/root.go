package main

import (
	"github.com/0xlemi/tunechord/internal/analysis"
	"github.com/0xlemi/tunechord/internal/config"
	"github.com/0xlemi/tunechord/internal/log"
	"github.com/0xlemi/tunechord/internal/pitch"
	"github.com/spf13/cobra"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "tunechord",
	Short: "Detect notes and chords in audio",
	Long: `TuneChord finds the significant frequencies in an audio buffer, maps
them to pitch classes and reports the chords that share the most notes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		return log.Setup(cfg.LogLevel, cfg.LogFormat)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")
	flags.StringVar(&cfg.Locale, "locale", cfg.Locale, "language for human-readable names (ru, en)")
	flags.StringVar(&cfg.Chords, "chords", cfg.Chords, "chord table (full, triads)")
	flags.Float64Var(&cfg.MinFrequency, "min-freq", cfg.MinFrequency, "lowest analyzed frequency in Hz")
	flags.Float64Var(&cfg.MaxFrequency, "max-freq", cfg.MaxFrequency, "highest analyzed frequency in Hz")
	flags.Float64Var(&cfg.ThresholdRatio, "threshold", cfg.ThresholdRatio, "significance threshold as a fraction of the strongest bin")
}

func newPipeline() *analysis.Pipeline {
	return analysis.NewPipeline(cfg.AnalyzerConfig(), cfg.Table())
}

func locale() pitch.Locale {
	return pitch.ParseLocale(cfg.Locale)
}
