// internal/sound/sound_manager.go
package sound

import (
	"errors"
	"sync"
	"time"

	"go-globe-defense/internal/event"
	"go-globe-defense/pkg/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)
	// maxVoices — сколько сигналов звучит одновременно; лишние отбрасываются.
	maxVoices = 12
)

var ErrUnknownCue = errors.New("sound: unknown cue")

// SoundManager переводит игровые события в звуковые сигналы.
// Без Initialize сигналы копятся в микшере, но на устройство не идут.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
	Muted       bool
}

func NewSoundManager(rate beep.SampleRate) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		rate:  rate,
	}
}

// Initialize открывает аудиоустройство.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup останавливает все звуки и закрывает устройство.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		sm.mixer.Clear()
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// Play ставит сигнал в микшер.
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.Muted {
		return
	}
	s, err := NewCueStreamer(cue, sm.rate)
	if err != nil {
		logger.Log.WithError(err).WithField("cue", cue.String()).Warn("Cue skipped")
		return
	}

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	if sm.mixer.Len() >= maxVoices {
		return
	}
	sm.mixer.Add(s)
}

// Mixer — выход менеджера; без устройства его можно читать напрямую.
func (sm *SoundManager) Mixer() *beep.Mixer {
	return sm.mixer
}

// Subscribe подписывает менеджер на события игры.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.ShotFired,
		event.EnemyReachedEnd,
		event.TowerPlaced,
		event.WaveStarted,
		event.GameOver,
		event.GameWon,
	} {
		d.Subscribe(t, sm)
	}
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if cue, ok := CueFor(e); ok {
		sm.Play(cue)
	}
}

// CueFor выбирает сигнал для события.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.ShotFired:
		if data, ok := e.Data.(event.ShotData); ok && data.Killed {
			return CueKill, true
		}
		return CueShot, true
	case event.EnemyReachedEnd:
		return CueLeak, true
	case event.TowerPlaced:
		return CuePlace, true
	case event.WaveStarted:
		return CueWaveStart, true
	case event.GameOver:
		return CueGameOver, true
	case event.GameWon:
		return CueVictory, true
	}
	return 0, false
}
