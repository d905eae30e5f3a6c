package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneDuration = 50 * time.Millisecond
)

// chime plays a short sine tone each time a box is committed
type chime struct {
	hz      float64
	enabled bool
}

// newChime always returns a usable chime; on error it stays silent
func newChime(hz float64, mute bool) (*chime, error) {
	c := &chime{hz: hz}
	if mute {
		return c, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, fmt.Errorf("init speaker: %w", err)
	}
	c.enabled = true
	return c, nil
}

// tone builds the streamer for one chime
func (c *chime) tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, c.hz)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(toneDuration), sine), nil
}

func (c *chime) play() {
	if c == nil || !c.enabled {
		return
	}
	s, err := c.tone()
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (c *chime) close() {
	if c != nil && c.enabled {
		speaker.Close()
		c.enabled = false
	}
}
