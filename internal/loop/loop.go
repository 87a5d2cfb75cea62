package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/ufostrike/internal/audio"
	"github.com/tomz197/ufostrike/internal/input"
	"github.com/tomz197/ufostrike/internal/loop/config"
	"github.com/tomz197/ufostrike/internal/physics"
)

// Renderer draws snapshots to a display.
type Renderer interface {
	Render(s *Snapshot) error
	// Close restores the display.
	Close() error
}

// Options configures a game run.
type Options struct {
	Seed   int64
	Logger *log.Logger
	Sound  audio.Player

	// TrackInactivity warns and then disconnects idle players.
	TrackInactivity bool
	// ShutdownGrace is how long the shutdown notice shows once the context
	// is cancelled. Zero stops immediately.
	ShutdownGrace time.Duration
}

// Run plays one game session with the standard Input → Update → Draw
// cycle. The simulation always steps by config.TickStep regardless of
// wall-clock jitter. Run returns when the user quits, the input closes, or
// ctx is cancelled and the shutdown grace has passed.
func Run(ctx context.Context, r io.Reader, view Renderer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Nop{}
	}
	defer view.Close()

	session := NewSession(physics.NewRand(opts.Seed), func(e Event) {
		logger.Debug("game event", "event", e)
		if s, ok := soundFor(e); ok {
			sound.Play(s)
		}
	})
	stream := input.StartStream(bufio.NewReader(r))

	ticker := time.NewTicker(config.TickTime)
	defer ticker.Stop()

	done := ctx.Done()
	lastInput := time.Now()
	var shutdownAt time.Time

	logger.Info("session started", "seed", opts.Seed)
	for {
		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Closed {
			logger.Info("input closed")
			return nil
		}
		if len(in.Pressed) > 0 {
			lastInput = time.Now()
		}
		for _, a := range in.Actions {
			if session.Apply(a) {
				logger.Info("player quit", "kills", session.World.EnemiesKilled)
				return nil
			}
		}

		// ===== UPDATE PHASE =====
		prev := session.Mode()
		session.Tick(config.TickStep)
		if mode := session.Mode(); mode != prev {
			logger.Debug("mode changed", "from", prev, "to", mode)
		}

		notice := ""
		idle := time.Since(lastInput).Seconds()
		switch {
		case !shutdownAt.IsZero():
			left := opts.ShutdownGrace - time.Since(shutdownAt)
			if left <= 0 {
				return nil
			}
			notice = fmt.Sprintf("SERVER SHUTTING DOWN - disconnecting in %d s", int(left.Seconds())+1)
		case opts.TrackInactivity && idle > config.InactivityDisconnectUser:
			logger.Info("disconnecting idle player")
			return nil
		case opts.TrackInactivity && idle > config.InactivityWarnUser:
			notice = fmt.Sprintf("INACTIVE - disconnecting in %d s, press any key", int(config.InactivityDisconnectUser-idle))
		}

		// ===== DRAW PHASE =====
		snap := session.World.Snapshot()
		snap.Notice = notice
		if err := view.Render(snap); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		// ===== FRAME TIMING =====
		select {
		case <-done:
			done = nil
			logger.Info("shutdown requested")
			if opts.ShutdownGrace <= 0 {
				return nil
			}
			shutdownAt = time.Now()
		case <-ticker.C:
		}
	}
}

// soundFor maps a game event to its sound effect.
func soundFor(e Event) (audio.Sound, bool) {
	switch e {
	case EventPlayerHit:
		return audio.SoundPlayerHit, true
	case EventShieldHit:
		return audio.SoundShieldHit, true
	case EventGameOver:
		return audio.SoundGameOver, true
	case EventEnemyDefeated:
		return audio.SoundEnemyDefeated, true
	case EventLifeGift:
		return audio.SoundLifeGift, true
	case EventHelperUnlocked:
		return audio.SoundHelperUnlocked, true
	}
	return 0, false
}
