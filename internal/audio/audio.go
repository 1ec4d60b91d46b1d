// Package audio plays the game's procedural sound effects through oto.
package audio

import (
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Player implements snake.AudioSink. Sounds are synthesized once and
// played on their own goroutine so the caller never blocks.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	eat      []byte
	gameOver []byte
}

// New opens the audio device. oto allows a single context per process,
// so New must be called at most once.
func New(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &Player{
		ctx:      ctx,
		ready:    ready,
		volume:   clampF(volume, 0, 1),
		eat:      genEat(),
		gameOver: genGameOver(),
	}, nil
}

// PlayEat plays the short pop used when food is eaten.
func (p *Player) PlayEat() {
	if p == nil {
		return
	}
	p.play(p.eat)
}

// PlayGameOver plays the falling three-note chord.
func (p *Player) PlayGameOver() {
	if p == nil {
		return
	}
	p.play(p.gameOver)
}

func (p *Player) play(samples []byte) {
	if len(samples) == 0 || p.volume <= 0 {
		return
	}
	// Drop sounds until the device has finished starting up.
	select {
	case <-p.ready:
	default:
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Nop is a silent sink used for --mute and SSH sessions.
type Nop struct{}

func (Nop) PlayEat()      {}
func (Nop) PlayGameOver() {}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
