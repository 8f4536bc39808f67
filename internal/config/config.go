// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	BaseHealth     = 100
	DamagePerEnemy = 10
	ClickCooldown  = 150 // мс
)

// Глобус
const (
	GlobeRadius          = 5.0
	TileThicknessFactor  = 0.22
	GlobeFrequency       = 10
	TerminalFrequency    = 3 // в терминале 1002 тайла не помещаются
	TileThickness        = GlobeRadius * TileThicknessFactor
	CameraDistanceFactor = 3.2
)

// Враги
const (
	EnemyTravelAngularSpeed = math.Pi / 12 // рад/с
	EnemyBaseRadiusFactor   = 0.8
	EnemySurfaceOffset      = 0.15
	EnemyMinSurfaceOffset   = 0.05
)

// Башни
const (
	TowerRangeHexes    = 3
	TowerDamagePerShot = 1.0
	TowerFireInterval  = 1.0
	TowerHeightFactor  = 1.7
	TowerRadiusFactor  = 0.6
	ShotLifetime       = 0.25
)

// Волны
const (
	WaveInitialDelay         = 10.0
	WaveBreakDuration        = 10.0
	WaveBaseSpawnInterval    = 0.8
	WaveBaseSpawnVariance    = 0.3
	WaveMinimumSpawnInterval = 0.2
	MinSpeedMultiplier       = 0.1
)

// UI
const (
	SpeedButtonX    = 60
	SpeedButtonY    = 40
	SpeedButtonSize = 18.0
	PauseButtonX    = 120
	HUDMarginX      = 20
	HUDLineHeight   = 20
	UIBorderWidth   = 1.5
	RotateSpeed     = 1.6   // рад/с для стрелок
	DragSensitivity = 0.008 // рад на пиксель
	ZoomStep        = 0.9
)

var (
	BackgroundColor     = rgb(0x02040b)
	HexFillColor        = rgb(0x2c3e50)
	HexBorderColor      = rgb(0x95a5a6)
	PentagonFillColor   = rgb(0xf1c40f)
	PentagonBorderColor = rgb(0x7d6608)
	HoverBorderColor    = rgb(0x1abc9c)
	ActiveHexFillColor  = rgb(0x27ae60)

	RouteSpawnColor  = rgb(0x2eff71)
	RouteTargetColor = rgb(0xff4d4d)
	RoutePathColor   = rgb(0x9b59ff)

	TowerColor       = rgb(0x8e44ad)
	TowerBorderColor = rgb(0xdcc8ff)
	ShotColor        = rgb(0xdcc8ff)
	EnemyColor       = rgb(0xe74c3c)

	TextLightColor = color.RGBA{240, 240, 240, 255}
	TextDarkColor  = color.RGBA{20, 20, 30, 255}
	HaloColor      = color.RGBA{0x21, 0x4f, 0xdd, 40}

	UIColorBlue         = color.RGBA{70, 130, 180, 255}
	UIBorderColor       = color.RGBA{220, 220, 220, 255}
	ButtonColor         = color.RGBA{39, 174, 96, 230}
	ButtonHoverColor    = color.RGBA{46, 204, 113, 240}
	ButtonDisabledColor = color.RGBA{60, 64, 72, 200}
	PanelColor          = color.RGBA{10, 14, 28, 210}
	PauseOverlayColor   = color.RGBA{0, 0, 0, 128}
	PauseButtonColor    = color.RGBA{194, 178, 128, 255}
	PlayButtonColor     = color.RGBA{46, 204, 113, 255}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	GameSpeeds = []float64{1, 2, 4}
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}
