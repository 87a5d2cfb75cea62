package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/ufostrike/internal/audio"
	"github.com/tomz197/ufostrike/internal/config"
	"github.com/tomz197/ufostrike/internal/loop"
	"github.com/tomz197/ufostrike/internal/render"
)

const defaultVolume = 0.5 // Linear gain

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := config.OpenLogFile(config.GetEnv("UFOSTRIKE_LOG", ""), "game")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	seed, err := config.GetEnvInt64("UFOSTRIKE_SEED", time.Now().UnixNano())
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var sound audio.Player = audio.Nop{}
	if synth := openSynth(logger); synth != nil {
		defer synth.Close()
		sound = synth
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{
		Seed:   seed,
		Logger: logger,
		Sound:  sound,
	}
	view := render.New(os.Stdout, nil)
	if err := loop.Run(ctx, os.Stdin, view, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// openSynth opens the audio device unless UFOSTRIKE_AUDIO turns it off. It
// returns nil when there is no sound to play.
func openSynth(logger *log.Logger) *audio.Synth {
	enabled, err := config.GetEnvBool("UFOSTRIKE_AUDIO", true)
	if err != nil {
		logger.Warn("ignoring UFOSTRIKE_AUDIO", "err", err)
	}
	if !enabled {
		return nil
	}
	volume, err := config.GetEnvFloat("UFOSTRIKE_VOLUME", defaultVolume)
	if err != nil {
		logger.Warn("ignoring UFOSTRIKE_VOLUME", "err", err)
	}
	synth := audio.NewSynth(volume)
	if err := synth.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return nil
	}
	return synth
}
