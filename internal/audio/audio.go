// Package audio plays short synthesized sound effects for game events.
package audio

import "time"

// Sound names one effect.
type Sound int

const (
	SoundPlayerHit Sound = iota
	SoundShieldHit
	SoundGameOver
	SoundEnemyDefeated
	SoundLifeGift
	SoundHelperUnlocked
)

func (s Sound) String() string {
	switch s {
	case SoundPlayerHit:
		return "player_hit"
	case SoundShieldHit:
		return "shield_hit"
	case SoundGameOver:
		return "game_over"
	case SoundEnemyDefeated:
		return "enemy_defeated"
	case SoundLifeGift:
		return "life_gift"
	case SoundHelperUnlocked:
		return "helper_unlocked"
	default:
		return "unknown"
	}
}

// Player plays sound effects. Implementations must not block the caller.
type Player interface {
	Play(s Sound)
}

// Nop is a Player that discards every sound.
type Nop struct{}

func (Nop) Play(Sound) {}

// Note is one tone of an effect.
type Note struct {
	Freq     float64 // Hz
	Duration time.Duration
}

// melodies holds the notes of each effect, played in order.
var melodies = map[Sound][]Note{
	SoundPlayerHit: {
		{Freq: 220, Duration: 80 * time.Millisecond},
		{Freq: 165, Duration: 120 * time.Millisecond},
	},
	SoundShieldHit: {
		{Freq: 1320, Duration: 40 * time.Millisecond},
	},
	SoundGameOver: {
		{Freq: 392, Duration: 200 * time.Millisecond},
		{Freq: 330, Duration: 200 * time.Millisecond},
		{Freq: 262, Duration: 200 * time.Millisecond},
		{Freq: 196, Duration: 400 * time.Millisecond},
	},
	SoundEnemyDefeated: {
		{Freq: 523, Duration: 90 * time.Millisecond},
		{Freq: 659, Duration: 90 * time.Millisecond},
		{Freq: 784, Duration: 90 * time.Millisecond},
		{Freq: 1047, Duration: 180 * time.Millisecond},
	},
	SoundLifeGift: {
		{Freq: 988, Duration: 70 * time.Millisecond},
		{Freq: 1319, Duration: 140 * time.Millisecond},
	},
	SoundHelperUnlocked: {
		{Freq: 659, Duration: 100 * time.Millisecond},
		{Freq: 880, Duration: 100 * time.Millisecond},
	},
}

// Melody returns the notes of s, or nil for an unknown sound.
func Melody(s Sound) []Note {
	return melodies[s]
}
