// internal/defs/waves.go
package defs

import (
	"errors"
	"fmt"

	"go-globe-defense/internal/config"
)

var (
	ErrEmptySchedule = errors.New("wave schedule has no waves")
	ErrInvalidWave   = errors.New("invalid wave definition")
)

// WaveDefinition описывает одну волну. Необязательные поля переопределяют
// общие тайминги расписания только для этой волны.
type WaveDefinition struct {
	Enemies       int      `json:"enemies"`
	Health        float64  `json:"health"`
	Speed         float64  `json:"speed"`
	SpawnInterval *float64 `json:"spawn_interval,omitempty"`
	SpawnVariance *float64 `json:"spawn_variance,omitempty"`
	BreakDuration *float64 `json:"break_duration,omitempty"`
}

// WaveTiming — общие тайминги, в секундах.
type WaveTiming struct {
	InitialDelay         float64 `json:"initial_delay"`
	BreakDuration        float64 `json:"break_duration"`
	BaseSpawnInterval    float64 `json:"base_spawn_interval"`
	BaseSpawnVariance    float64 `json:"base_spawn_variance"`
	MinimumSpawnInterval float64 `json:"minimum_spawn_interval"`
}

// ResolvedWave — волна с подставленными значениями по умолчанию.
type ResolvedWave struct {
	Index         int
	Enemies       int
	Health        float64
	Speed         float64
	SpawnInterval float64
	SpawnVariance float64
	BreakDuration float64
}

// WaveSchedule — упорядоченный список волн нарастающей сложности.
type WaveSchedule struct {
	Timing WaveTiming       `json:"timing"`
	Waves  []WaveDefinition `json:"waves"`
}

// DefaultWaves — стандартные десять волн.
var DefaultWaves = []WaveDefinition{
	{Enemies: 8, Health: 10, Speed: 1.0},
	{Enemies: 9, Health: 12, Speed: 1.05},
	{Enemies: 10, Health: 14, Speed: 1.1},
	{Enemies: 11, Health: 17, Speed: 1.12},
	{Enemies: 12, Health: 20, Speed: 1.14},
	{Enemies: 13, Health: 24, Speed: 1.16},
	{Enemies: 14, Health: 29, Speed: 1.18},
	{Enemies: 15, Health: 35, Speed: 1.2},
	{Enemies: 16, Health: 42, Speed: 1.22},
	{Enemies: 18, Health: 50, Speed: 1.25},
}

func DefaultTiming() WaveTiming {
	return WaveTiming{
		InitialDelay:         config.WaveInitialDelay,
		BreakDuration:        config.WaveBreakDuration,
		BaseSpawnInterval:    config.WaveBaseSpawnInterval,
		BaseSpawnVariance:    config.WaveBaseSpawnVariance,
		MinimumSpawnInterval: config.WaveMinimumSpawnInterval,
	}
}

// DefaultSchedule возвращает копию стандартного расписания.
func DefaultSchedule() *WaveSchedule {
	waves := make([]WaveDefinition, len(DefaultWaves))
	copy(waves, DefaultWaves)
	return &WaveSchedule{Timing: DefaultTiming(), Waves: waves}
}

func (s *WaveSchedule) Len() int { return len(s.Waves) }

// At возвращает волну по индексу; индекс зажимается в [0, Len-1].
// Пустое расписание отдаёт первую стандартную волну.
func (s *WaveSchedule) At(index int) ResolvedWave {
	waves := s.Waves
	if len(waves) == 0 {
		waves = DefaultWaves
	}
	if index < 0 {
		index = 0
	}
	if index > len(waves)-1 {
		index = len(waves) - 1
	}
	w := waves[index]

	resolved := ResolvedWave{
		Index:         index,
		Enemies:       w.Enemies,
		Health:        w.Health,
		Speed:         w.Speed,
		SpawnInterval: s.Timing.BaseSpawnInterval,
		SpawnVariance: s.Timing.BaseSpawnVariance,
		BreakDuration: s.Timing.BreakDuration,
	}
	if resolved.Speed <= 0 {
		resolved.Speed = 1
	}
	if w.SpawnInterval != nil {
		resolved.SpawnInterval = *w.SpawnInterval
	}
	if w.SpawnVariance != nil {
		resolved.SpawnVariance = *w.SpawnVariance
	}
	if w.BreakDuration != nil {
		resolved.BreakDuration = *w.BreakDuration
	}
	return resolved
}

// Validate проверяет расписание на осмысленность значений.
func (s *WaveSchedule) Validate() error {
	if len(s.Waves) == 0 {
		return ErrEmptySchedule
	}
	if s.Timing.MinimumSpawnInterval <= 0 {
		return fmt.Errorf("%w: minimum spawn interval must be positive", ErrInvalidWave)
	}
	for i, w := range s.Waves {
		switch {
		case w.Enemies < 0:
			return fmt.Errorf("%w: wave %d has negative enemy count", ErrInvalidWave, i+1)
		case w.Health <= 0:
			return fmt.Errorf("%w: wave %d has non-positive health", ErrInvalidWave, i+1)
		case w.Speed <= 0:
			return fmt.Errorf("%w: wave %d has non-positive speed", ErrInvalidWave, i+1)
		case w.SpawnVariance != nil && *w.SpawnVariance < 0:
			return fmt.Errorf("%w: wave %d has negative spawn variance", ErrInvalidWave, i+1)
		}
	}
	return nil
}
