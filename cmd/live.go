package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/0xlemi/tunechord/internal/analysis"
	"github.com/0xlemi/tunechord/internal/audio"
	"github.com/0xlemi/tunechord/internal/log"
	"github.com/0xlemi/tunechord/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

var (
	liveInput string
	livePlain bool
)

func init() {
	flags := liveCmd.Flags()
	flags.StringVar(&liveInput, "input", "", "replay a WAV file instead of capturing the default input device")
	flags.BoolVar(&livePlain, "plain", false, "print results as text instead of the terminal UI")
	flags.IntVar(&cfg.SampleRate, "sample-rate", cfg.SampleRate, "capture sample rate in Hz")
	flags.IntVar(&cfg.Channels, "channels", cfg.Channels, "capture channels, averaged to mono")
	flags.IntVar(&cfg.FramesPerBuffer, "frames", cfg.FramesPerBuffer, "frames per capture callback")
	flags.DurationVar(&cfg.BufferDuration, "buffer", cfg.BufferDuration, "length of audio kept in the ring buffer")
	flags.Float64Var(&cfg.WindowFraction, "window", cfg.WindowFraction, "share of the ring buffer analyzed on each poll")
	flags.DurationVar(&cfg.PollInterval, "interval", cfg.PollInterval, "time between analyses")
	flags.Float64Var(&cfg.Amplification, "gain", cfg.Amplification, "input amplification factor")
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Continuously detect chords from the microphone",
	RunE: func(cmd *cobra.Command, args []string) error {
		capturer, err := newCapturer()
		if err != nil {
			return fmt.Errorf("create audio capturer: %w", err)
		}

		if err := capturer.Start(); err != nil {
			return fmt.Errorf("start audio capture: %w", err)
		}
		defer capturer.Stop()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pipeline := newPipeline()
		windowSize := cfg.WindowSize()

		log.Logger.WithFields(logrus.Fields{
			"sample_rate": cfg.SampleRate,
			"capacity":    cfg.RingCapacity(),
			"window":      windowSize,
			"interval":    cfg.PollInterval,
		}).Info("Listening for chords")

		if livePlain {
			out := cmd.OutOrStdout()
			pollLoop(ctx, capturer, pipeline, windowSize, cfg.PollInterval, func(res analysis.Result, _ float64, _ float64) {
				fmt.Fprintln(out, res.Format())
			})
			log.Logger.Info("Stopped")
			return nil
		}

		// the alternate screen owns the terminal from here on
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)

		p := tea.NewProgram(ui.NewModel("TuneChord - Chord Detector"), tea.WithAltScreen())
		go func() {
			pollLoop(ctx, capturer, pipeline, windowSize, cfg.PollInterval, func(res analysis.Result, rms, db float64) {
				p.Send(ui.UpdateAudioLevelMsg{RMS: rms, DB: db})
				p.Send(ui.UpdateResultMsg(res))
			})
			p.Quit()
		}()

		_, err = p.Run()
		stop()
		return err
	},
}

func newCapturer() (audio.Capturer, error) {
	if liveInput != "" {
		buf, err := audio.DecodeWAV(liveInput)
		if err != nil {
			return nil, err
		}
		cfg.SampleRate = buf.SampleRate
		return audio.NewFileCapturer(buf, cfg.RingCapacity(), cfg.FramesPerBuffer, true)
	}

	capturer, err := audio.NewPortAudioCapturer(cfg.RingCapacity(), cfg.FramesPerBuffer, cfg.SampleRate, cfg.Channels)
	if err != nil {
		return nil, err
	}
	capturer.SetAmplification(cfg.Amplification)
	return capturer, nil
}

// pollLoop analyzes the latest window every interval until ctx is done
func pollLoop(ctx context.Context, capturer audio.Capturer, pipeline *analysis.Pipeline, windowSize int, interval time.Duration, emit func(res analysis.Result, rms, db float64)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		buf, err := capturer.Window(windowSize)
		if errors.Is(err, audio.ErrNotEnoughSamples) {
			continue
		}
		if err != nil {
			log.Logger.WithError(err).Warn("Reading audio window failed")
			continue
		}

		res := pipeline.RunBuffer(buf)
		rms, db := getAudioLevel(buf.Samples)
		log.Logger.WithFields(res.Fields()).WithField("db", db).Debug("Analyzed window")
		emit(res, rms, db)
	}
}

// getAudioLevel calculates RMS and dB level
func getAudioLevel(samples []float64) (rms, db float64) {
	if len(samples) == 0 {
		return 0, -100
	}

	rms = math.Sqrt(floats.Dot(samples, samples) / float64(len(samples)))

	// Calculate dB (with protection against log(0))
	if rms > 0.0000001 {
		db = 20 * math.Log10(rms)
	} else {
		db = -100
	}

	return rms, db
}
