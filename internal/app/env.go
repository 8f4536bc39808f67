// internal/app/env.go
package app

import (
	"fmt"
	"strconv"

	"go-globe-defense/internal/config"
	"go-globe-defense/internal/defs"
)

// Переменные окружения фронтендов.
const (
	EnvSeed      = "GLOBE_SEED"
	EnvFrequency = "GLOBE_FREQUENCY"
	EnvWaves     = "GLOBE_WAVES" // путь к JSON с расписанием волн
	EnvMesh      = "GLOBE_MESH_ADJACENCY"
	EnvProtect   = "GLOBE_PROTECT_ROUTES"
)

// OptionsFromEnv накладывает переменные окружения на DefaultOptions.
// frequency — частота по умолчанию для конкретного фронтенда.
func OptionsFromEnv(frequency int) (Options, error) {
	opts := DefaultOptions()
	opts.Frequency = config.GetEnvInt(EnvFrequency, frequency)

	if raw := config.GetEnv(EnvSeed, ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		opts.Seed = seed
	}

	if path := config.GetEnv(EnvWaves, ""); path != "" {
		schedule, err := defs.LoadWaveSchedule(path)
		if err != nil {
			return opts, err
		}
		opts.Schedule = schedule
	}

	var err error
	if opts.MeshAdjacency, err = envBool(EnvMesh); err != nil {
		return opts, err
	}
	if opts.ProtectRoutes, err = envBool(EnvProtect); err != nil {
		return opts, err
	}
	return opts, nil
}

func envBool(key string) (bool, error) {
	raw := config.GetEnv(key, "")
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
