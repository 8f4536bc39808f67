package ui_test

import (
	"image"
	"testing"
	"time"

	"go-globe-defense/internal/config"
	"go-globe-defense/internal/ui"

	"github.com/stretchr/testify/assert"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		0:  "",
		1:  "I",
		4:  "IV",
		9:  "IX",
		10: "X",
		14: "XIV",
		40: "XL",
	}
	for n, want := range cases {
		assert.Equal(t, want, ui.ToRoman(n), "n=%d", n)
	}
}

func TestCells(t *testing.T) {
	tests := []struct {
		health, max, per int
		filled, total    int
	}{
		{100, 100, 10, 10, 10},
		{70, 100, 10, 7, 10},
		{5, 100, 10, 1, 10},
		{0, 100, 10, 0, 10},
		{-10, 100, 10, 0, 10},
		{3, 3, 0, 3, 3},
	}
	for _, tt := range tests {
		filled, total := ui.Cells(tt.health, tt.max, tt.per)
		assert.Equal(t, tt.filled, filled, "%+v", tt)
		assert.Equal(t, tt.total, total, "%+v", tt)
	}
}

func TestCellColor(t *testing.T) {
	// 8 из 10: три «лишних» кружка синие, остальные красные, пустые тёмные.
	assert.Equal(t, config.UIColorBlue, ui.CellColor(0, 8, 10))
	assert.Equal(t, config.UIColorBlue, ui.CellColor(2, 8, 10))
	assert.Equal(t, config.RouteTargetColor, ui.CellColor(3, 8, 10))
	assert.Equal(t, config.RouteTargetColor, ui.CellColor(7, 8, 10))
	assert.Equal(t, config.TextDarkColor, ui.CellColor(8, 8, 10))

	assert.Equal(t, config.RouteTargetColor, ui.CellColor(0, 4, 10))
}

func TestButton_IsClicked(t *testing.T) {
	b := ui.NewButton(image.Rect(10, 10, 110, 40), "Start Game")
	assert.True(t, b.IsClicked(50, 20))
	assert.False(t, b.IsClicked(5, 20))
	assert.False(t, b.IsClicked(110, 40), "max edge is exclusive")

	b.Enabled = false
	assert.True(t, b.Contains(50, 20))
	assert.False(t, b.IsClicked(50, 20))
}

func TestBuildMenu_Sync(t *testing.T) {
	m := ui.NewBuildMenu(0, 0)
	m.Sync("Select a hex to build.", false)
	assert.Equal(t, "Select a hex to build.", m.Prompt)
	assert.False(t, m.Button.Enabled)
	assert.True(t, m.Contains(5, 5))

	m.Sync("Build a tower on the selected hex.", true)
	center := m.Button.Rect.Min.Add(image.Pt(m.Button.Rect.Dx()/2, m.Button.Rect.Dy()/2))
	assert.True(t, m.Button.IsClicked(center.X, center.Y))
}

func TestSpeedButton(t *testing.T) {
	b := ui.NewSpeedButton(60, 40, 18, config.SpeedButtonColors)
	assert.True(t, b.IsClicked(60, 40))
	assert.True(t, b.IsClicked(60+20, 40))
	assert.False(t, b.IsClicked(60+30, 40))

	assert.True(t, b.Ready(time.Now()))
	b.SetState(1)
	assert.Equal(t, 1, b.CurrentState)
	assert.False(t, b.Ready(time.Now()))
	assert.True(t, b.Ready(time.Now().Add(time.Second)))
}

func TestPauseButton(t *testing.T) {
	b := ui.NewPauseButton(120, 40, 12, config.PauseButtonColor, config.PlayButtonColor)
	assert.True(t, b.IsClicked(120, 40))
	assert.False(t, b.IsClicked(160, 40))

	b.SetPaused(true)
	assert.True(t, b.IsPaused)
	assert.False(t, b.Ready(time.Now()))
}
