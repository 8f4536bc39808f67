// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"go-globe-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// LoadWaveSchedule reads a JSON wave schedule. Timing fields missing from the
// file keep their default values.
func LoadWaveSchedule(path string) (*WaveSchedule, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave schedule file: %w", err)
	}
	return ParseWaveSchedule(file)
}

// ParseWaveSchedule decodes and validates a schedule from raw JSON.
func ParseWaveSchedule(data []byte) (*WaveSchedule, error) {
	schedule := &WaveSchedule{Timing: DefaultTiming()}
	if err := json.Unmarshal(data, schedule); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wave schedule: %w", err)
	}
	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("wave schedule rejected: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"waves":         schedule.Len(),
		"initial_delay": schedule.Timing.InitialDelay,
	}).Info("Loaded wave schedule")
	return schedule, nil
}
