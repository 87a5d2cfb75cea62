package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

var allSounds = []Sound{
	SoundPlayerHit,
	SoundShieldHit,
	SoundGameOver,
	SoundEnemyDefeated,
	SoundLifeGift,
	SoundHelperUnlocked,
}

func TestEveryEffectHasMelody(t *testing.T) {
	for _, s := range allSounds {
		if len(Melody(s)) == 0 {
			t.Errorf("%s has no notes", s)
		}
	}
	if Melody(Sound(99)) != nil {
		t.Error("unknown sound should have no melody")
	}
}

func TestStreamerIsFinite(t *testing.T) {
	sr := beep.SampleRate(8000)
	for _, s := range allSounds {
		st, err := Streamer(s, sr, 0.5)
		if err != nil {
			t.Fatalf("Streamer(%s) error: %v", s, err)
		}

		var want int
		for _, n := range Melody(s) {
			want += sr.N(n.Duration)
		}

		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := st.Stream(buf)
			total += n
			if !ok {
				break
			}
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("%s sample %v out of range", s, buf[i][0])
				}
			}
		}
		if total != want {
			t.Errorf("%s streamed %d samples, want %d", s, total, want)
		}
	}
}

func TestStreamerUnknown(t *testing.T) {
	st, err := Streamer(Sound(99), beep.SampleRate(8000), 1)
	if err != nil || st != nil {
		t.Errorf("Streamer(unknown) = %v, %v; want nil, nil", st, err)
	}
}

func TestUninitializedSynthIsSilent(t *testing.T) {
	s := NewSynth(0.5)
	for _, snd := range allSounds {
		s.Play(snd)
	}
	s.Close()
}

func TestNop(t *testing.T) {
	var p Player = Nop{}
	p.Play(SoundGameOver)
}
