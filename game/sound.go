package game

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/models"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

// SoundObserver plays short tones for game signals. Until Initialize
// succeeds every method is silent.
type SoundObserver struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         logrus.FieldLogger
}

func NewSoundObserver(log logrus.FieldLogger) *SoundObserver {
	return &SoundObserver{mixer: &beep.Mixer{}, log: log}
}

// Initialize opens the audio device.
func (s *SoundObserver) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything still playing.
func (s *SoundObserver) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

func (s *SoundObserver) BoardRebuilt(width, height, bombs uint16) {
	s.play(note{660, 40 * time.Millisecond})
}

// TileRevealed sounds for bombs only.
func (s *SoundObserver) TileRevealed(c models.Coordinate, count uint8, bomb bool) {
	if bomb {
		s.play(note{110, 300 * time.Millisecond})
	}
}

func (s *SoundObserver) FlagToggled(c models.Coordinate, flagged bool) {
	if flagged {
		s.play(note{880, 50 * time.Millisecond})
	} else {
		s.play(note{440, 50 * time.Millisecond})
	}
}

func (s *SoundObserver) GameWon() {
	s.play(note{523, 120 * time.Millisecond}, note{659, 120 * time.Millisecond}, note{784, 240 * time.Millisecond})
}

func (s *SoundObserver) GameLost() {
	s.play(note{196, 200 * time.Millisecond}, note{147, 400 * time.Millisecond})
}

// play queues the notes to sound one after another.
func (s *SoundObserver) play(notes ...note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	var parts []beep.Streamer
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			s.log.WithError(err).WithField("freq", n.freq).Warn("tone generation failed")
			return
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	speaker.Lock()
	s.mixer.Add(beep.Seq(parts...))
	speaker.Unlock()
}
