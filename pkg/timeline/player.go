package timeline

import (
	"sync/atomic"

	"github.com/framewright/timeline/pkg/animation"
	"github.com/framewright/timeline/pkg/dom"
	"github.com/framewright/timeline/pkg/tlerrors"
)

// DefaultMaxDurationMS bounds Duration()'s internal probing ticker.
const DefaultMaxDurationMS = 600_000

// PlayArgs configures one Play() call.
// Reverse defaults to false (forward playback); Speed <= 0 is treated as
// 1; a nil RAF uses animation.DefaultRAF.
type PlayArgs struct {
	OnUpdate func(currentTime int64)
	Reverse  bool
	Speed    float64
	RAF      animation.RAFFunc
}

// Player is the top-level driver: it converts an external tick source
// into root.Move calls and exposes play/pause/stop/seek/duration.
type Player struct {
	root        *Timeline
	eng         *engineState
	playID      atomic.Int64
	maxDuration int64
	length      *int64
}

// NewPlayer constructs a Player driving a fresh root timeline running fn,
// with doc as the document Select/SelectAll resolve against.
func NewPlayer(name string, fn InstructionFunc, doc *dom.Document) *Player {
	eng := newEngineState()
	root := NewRootTimeline(name, fn, doc)
	root.Attach(nil, eng)
	return &Player{root: root, eng: eng, maxDuration: DefaultMaxDurationMS}
}

// Root exposes the driven timeline, mainly so callers can pre-seed
// scope/settings before the first Play/Move call.
func (p *Player) Root() *Timeline { return p.root }

// Position is the current playhead position; the timeline's internal
// "not yet started" sentinel (-1) reads as 0.
func (p *Player) Position() int64 {
	p.eng.mu.Lock()
	defer p.eng.mu.Unlock()
	return max64(0, p.root.currentTime)
}

// IsPlaying reports whether a Play() loop is currently driving the
// timeline.
func (p *Player) IsPlaying() bool { return p.playID.Load() != 0 }

// Move forwards to the root timeline's seek.
func (p *Player) Move(t int64) error { return p.root.Move(t) }

// Pause invalidates the current play token; any in-flight paint closure
// resolves without scheduling another frame.
func (p *Player) Pause() { p.playID.Store(0) }

// Stop invalidates the current play token and seeks to 0.
func (p *Player) Stop() error {
	p.playID.Store(0)
	return p.root.Move(0)
}

// Play schedules a paint loop that steps the timeline one frame at a
// time via raf until playback reaches an end, is paused/stopped, or a
// new Play() call supersedes this one. The returned channel receives the
// final position and is closed exactly once; if a Move fails, the error is
// reported and the channel is closed without a value.
func (p *Player) Play(args PlayArgs) <-chan int64 {
	id := p.playID.Add(1)
	speed := args.Speed
	if speed <= 0 {
		speed = 1
	}
	raf := args.RAF
	if raf == nil {
		raf = animation.DefaultRAF
	}
	forward := !args.Reverse
	result := make(chan int64, 1)

	var paint func()
	paint = func() {
		if p.playID.Load() != id {
			result <- p.Position()
			close(result)
			return
		}
		t1 := p.Position()
		var t2 int64
		if forward {
			t2 = t1 + int64(float64(FrameMS)*speed)
		} else {
			t2 = t1 - int64(float64(FrameMS)*speed)
			if t2 < 0 {
				t2 = 0
			}
		}
		if err := p.root.Move(t2); err != nil {
			tlerrors.Report(&tlerrors.TimelineError{Op: "Player.Play", Kind: tlerrors.KindAsyncPipe, Err: err})
			close(result)
			return
		}
		if p.playID.Load() != id {
			result <- t1
			close(result)
			return
		}
		t2actual := p.Position()
		if args.OnUpdate != nil && t2actual != t1 {
			args.OnUpdate(t2actual)
		}
		atEnd := (forward && p.root.localEndTime == t2actual) || (!forward && t2actual == 0)
		if atEnd {
			p.playID.CompareAndSwap(id, 0)
			result <- t2actual
			close(result)
			return
		}
		raf(paint)
	}
	raf(paint)
	return result
}

// Duration memoizes the timeline's total length by running an internal
// probe ticker forward from 0 until a forward walk runs dry (or
// maxDuration is reached), then restores the prior position.
func (p *Player) Duration() (int64, error) {
	if p.length != nil {
		return *p.length, nil
	}
	startPos := p.Position()
	maxTicks := p.maxDuration / FrameMS
	var tick int64
	for tick = 1; tick <= maxTicks; tick++ {
		if err := p.root.Move(tick * FrameMS); err != nil {
			return 0, err
		}
		if p.root.localEndTime == p.Position() {
			break
		}
	}
	length := p.Position()
	p.length = &length
	if err := p.root.Move(startPos); err != nil {
		return 0, err
	}
	return length, nil
}
