// internal/sound/cues.go
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue — короткий звуковой сигнал на игровое событие.
type Cue int

const (
	CueShot Cue = iota
	CueKill
	CueLeak
	CuePlace
	CueWaveStart
	CueGameOver
	CueVictory
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueKill:
		return "kill"
	case CueLeak:
		return "leak"
	case CuePlace:
		return "place"
	case CueWaveStart:
		return "wave-start"
	case CueGameOver:
		return "game-over"
	case CueVictory:
		return "victory"
	}
	return "unknown"
}

// note — одна нота сигнала.
type note struct {
	freq     float64
	duration time.Duration
}

// Мелодии подобраны на слух; частоты в Гц.
var cueNotes = map[Cue][]note{
	CueShot:      {{1320, 40 * time.Millisecond}},
	CueKill:      {{660, 50 * time.Millisecond}, {990, 70 * time.Millisecond}},
	CueLeak:      {{180, 180 * time.Millisecond}},
	CuePlace:     {{523, 60 * time.Millisecond}, {784, 60 * time.Millisecond}},
	CueWaveStart: {{392, 120 * time.Millisecond}, {523, 120 * time.Millisecond}, {659, 160 * time.Millisecond}},
	CueGameOver:  {{330, 200 * time.Millisecond}, {262, 200 * time.Millisecond}, {196, 400 * time.Millisecond}},
	CueVictory:   {{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 120 * time.Millisecond}, {1047, 300 * time.Millisecond}},
}

var cueVolume = map[Cue]float64{
	CueShot: -3,
	CueKill: -2,
	CueLeak: -1,
}

// NewCueStreamer собирает конечный стример сигнала: ноты подряд, каждая
// с затуханием, чтобы не щёлкало на стыках.
func NewCueStreamer(cue Cue, rate beep.SampleRate) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, ErrUnknownCue
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, err
		}
		length := rate.N(n.duration)
		parts = append(parts, &fade{Streamer: beep.Take(length, tone), total: length})
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   cueVolume[cue] - 1,
	}, nil
}

// fade линейно гасит амплитуду к концу ноты.
type fade struct {
	beep.Streamer
	total int
	pos   int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		k := 1 - float64(f.pos)/float64(max(f.total, 1))
		k = math.Max(k, 0)
		samples[i][0] *= k
		samples[i][1] *= k
		f.pos++
	}
	return n, ok
}
