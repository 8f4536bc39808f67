package sound_test

import (
	"math"
	"testing"

	"go-globe-defense/internal/event"
	"go-globe-defense/internal/sound"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain читает стример до конца и возвращает число сэмплов и пиковую амплитуду.
func drain(t *testing.T, stream func([][2]float64) (int, bool)) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := stream(buf)
		for _, s := range buf[:n] {
			peak = math.Max(peak, math.Abs(s[0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatal("stream did not end")
	return 0, 0
}

func TestCueStreamer_FiniteAndBounded(t *testing.T) {
	for _, cue := range []sound.Cue{
		sound.CueShot, sound.CueKill, sound.CueLeak, sound.CuePlace,
		sound.CueWaveStart, sound.CueGameOver, sound.CueVictory,
	} {
		s, err := sound.NewCueStreamer(cue, sound.SampleRate)
		require.NoError(t, err, cue.String())

		total, peak := drain(t, s.Stream)
		assert.Greater(t, total, 0, cue.String())
		assert.Less(t, total, int(sound.SampleRate), "%s should be shorter than a second", cue)
		assert.Greater(t, peak, 0.0, cue.String())
		assert.LessOrEqual(t, peak, 1.0, cue.String())
	}
}

func TestCueStreamer_Unknown(t *testing.T) {
	_, err := sound.NewCueStreamer(sound.Cue(99), sound.SampleRate)
	assert.ErrorIs(t, err, sound.ErrUnknownCue)
	assert.Equal(t, "unknown", sound.Cue(99).String())
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		e    event.Event
		want sound.Cue
		ok   bool
	}{
		{event.Event{Type: event.ShotFired, Data: event.ShotData{}}, sound.CueShot, true},
		{event.Event{Type: event.ShotFired, Data: event.ShotData{Killed: true}}, sound.CueKill, true},
		{event.Event{Type: event.EnemyReachedEnd}, sound.CueLeak, true},
		{event.Event{Type: event.TowerPlaced}, sound.CuePlace, true},
		{event.Event{Type: event.WaveStarted}, sound.CueWaveStart, true},
		{event.Event{Type: event.GameOver}, sound.CueGameOver, true},
		{event.Event{Type: event.GameWon}, sound.CueVictory, true},
		{event.Event{Type: event.RoutesChanged}, 0, false},
	}
	for _, tt := range tests {
		got, ok := sound.CueFor(tt.e)
		assert.Equal(t, tt.ok, ok, string(tt.e.Type))
		if tt.ok {
			assert.Equal(t, tt.want, got, string(tt.e.Type))
		}
	}
}

func TestSoundManager_EventsReachMixer(t *testing.T) {
	sm := sound.NewSoundManager(sound.SampleRate)
	d := event.NewDispatcher()
	sm.Subscribe(d)

	d.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 1, Total: 10}})
	d.Dispatch(event.Event{Type: event.RoutesChanged})
	d.Dispatch(event.Event{Type: event.TowerPlaced})
	assert.Equal(t, 2, sm.Mixer().Len())

	// Микшер сам убирает доигравшие сигналы.
	buf := make([][2]float64, int(sound.SampleRate))
	sm.Mixer().Stream(buf)
	assert.Equal(t, 0, sm.Mixer().Len())

	sm.Muted = true
	d.Dispatch(event.Event{Type: event.GameOver})
	assert.Equal(t, 0, sm.Mixer().Len())
}

func TestSoundManager_VoiceLimit(t *testing.T) {
	sm := sound.NewSoundManager(sound.SampleRate)
	for i := 0; i < 50; i++ {
		sm.Play(sound.CueShot)
	}
	assert.LessOrEqual(t, sm.Mixer().Len(), 12)
	assert.Greater(t, sm.Mixer().Len(), 0)

	sm.Cleanup()
	assert.Equal(t, 0, sm.Mixer().Len())
}
