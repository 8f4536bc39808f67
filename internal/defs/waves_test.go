package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule()
	require.NoError(t, s.Validate())
	assert.Equal(t, 10, s.Len())

	first := s.At(0)
	assert.Equal(t, 8, first.Enemies)
	assert.Equal(t, 10.0, first.Health)
	assert.Equal(t, 1.0, first.Speed)
	assert.Equal(t, 0.8, first.SpawnInterval)
	assert.Equal(t, 0.3, first.SpawnVariance)
	assert.Equal(t, 10.0, first.BreakDuration)

	last := s.At(9)
	assert.Equal(t, 18, last.Enemies)
	assert.Equal(t, 50.0, last.Health)
	assert.Equal(t, 1.25, last.Speed)

	// Difficulty never decreases.
	for i := 1; i < s.Len(); i++ {
		assert.GreaterOrEqual(t, s.At(i).Enemies, s.At(i-1).Enemies)
		assert.Greater(t, s.At(i).Health, s.At(i-1).Health)
		assert.Greater(t, s.At(i).Speed, s.At(i-1).Speed)
	}

	// Mutating the copy leaves the package default untouched.
	s.Waves[0].Enemies = 99
	assert.Equal(t, 8, DefaultWaves[0].Enemies)
}

func TestWaveSchedule_AtClamps(t *testing.T) {
	s := DefaultSchedule()
	assert.Equal(t, 0, s.At(-5).Index)
	assert.Equal(t, 9, s.At(42).Index)

	empty := &WaveSchedule{Timing: DefaultTiming()}
	assert.Equal(t, 8, empty.At(3).Enemies)
}

func TestWaveSchedule_Overrides(t *testing.T) {
	interval, variance, pause := 0.5, 0.0, 3.0
	s := &WaveSchedule{
		Timing: DefaultTiming(),
		Waves: []WaveDefinition{
			{Enemies: 2, Health: 1, Speed: 2, SpawnInterval: &interval, SpawnVariance: &variance, BreakDuration: &pause},
		},
	}
	w := s.At(0)
	assert.Equal(t, 0.5, w.SpawnInterval)
	assert.Equal(t, 0.0, w.SpawnVariance)
	assert.Equal(t, 3.0, w.BreakDuration)
}

func TestWaveSchedule_Validate(t *testing.T) {
	negative := -1.0
	tests := []struct {
		name  string
		waves []WaveDefinition
		err   error
	}{
		{"empty", nil, ErrEmptySchedule},
		{"negative enemies", []WaveDefinition{{Enemies: -1, Health: 1, Speed: 1}}, ErrInvalidWave},
		{"zero health", []WaveDefinition{{Enemies: 1, Health: 0, Speed: 1}}, ErrInvalidWave},
		{"zero speed", []WaveDefinition{{Enemies: 1, Health: 1, Speed: 0}}, ErrInvalidWave},
		{"negative variance", []WaveDefinition{{Enemies: 1, Health: 1, Speed: 1, SpawnVariance: &negative}}, ErrInvalidWave},
		{"ok", []WaveDefinition{{Enemies: 1, Health: 1, Speed: 1}}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &WaveSchedule{Timing: DefaultTiming(), Waves: tc.waves}
			err := s.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoadWaveSchedule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "waves.json")
	data := `{"timing": {"break_duration": 4}, "waves": [{"enemies": 3, "health": 5, "speed": 1.5, "spawn_interval": 0.4}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := LoadWaveSchedule(path)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 4.0, s.Timing.BreakDuration)
	assert.Equal(t, 10.0, s.Timing.InitialDelay, "missing timing keeps default")

	w := s.At(0)
	assert.Equal(t, 3, w.Enemies)
	assert.Equal(t, 0.4, w.SpawnInterval)
	assert.Equal(t, 0.3, w.SpawnVariance)
}

func TestLoadWaveSchedule_Errors(t *testing.T) {
	_, err := LoadWaveSchedule(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ParseWaveSchedule([]byte("{not json"))
	assert.Error(t, err)

	_, err = ParseWaveSchedule([]byte(`{"waves": []}`))
	assert.ErrorIs(t, err, ErrEmptySchedule)
}

func TestBundledScheduleParses(t *testing.T) {
	s, err := LoadWaveSchedule(filepath.Join("..", "..", "assets", "data", "waves.json"))
	require.NoError(t, err)
	assert.Equal(t, 10, s.Len())
	assert.Equal(t, 12.0, s.At(4).BreakDuration)
	assert.Equal(t, 0.7, s.At(7).SpawnInterval)
}
