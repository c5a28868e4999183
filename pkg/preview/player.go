// Package preview implements the playback state machine behind the
// personalized video preview: an intro bubble that expands into the full
// composed video after a short transition.
package preview

import (
	"sync"
	"time"
)

// State is the current playback phase
type State string

const (
	StateIntro         State = "intro"
	StateTransitioning State = "transitioning"
	StateExpanded      State = "expanded"
)

// DefaultExpandDelay is the fixed pause between the transition start and the
// expanded phase.
const DefaultExpandDelay = 800 * time.Millisecond

// Clip abstracts a playable video element
type Clip interface {
	// Play starts playback from the current position
	Play()
	// Pause stops playback without rewinding
	Pause()
	// Rewind seeks back to time zero
	Rewind()
}

// Player drives the intro/transitioning/expanded phases for one preview.
// The two phase changes run on cancellable timers: Reset, Close and lead
// navigation all cancel whatever is pending.
type Player struct {
	mu sync.Mutex

	introClip  Clip
	secondClip Clip

	transitionDelay time.Duration
	expandDelay     time.Duration
	useSecondClip   bool
	onStateChange   func(State)

	state     State
	playing   bool
	leadIndex int
	leadCount int

	transitionTimer *time.Timer
	expandTimer     *time.Timer
}

// Option configures a Player
type Option func(*Player)

// WithTransitionDelay sets how long the intro plays before transitioning
func WithTransitionDelay(d time.Duration) Option {
	return func(p *Player) {
		p.transitionDelay = d
	}
}

// WithExpandDelay overrides the fixed pause before the expanded phase
func WithExpandDelay(d time.Duration) Option {
	return func(p *Player) {
		p.expandDelay = d
	}
}

// WithSecondClip attaches the composed clip played in the expanded phase.
// The enabled flag mirrors the per-lead "use second video" toggle.
func WithSecondClip(clip Clip, enabled bool) Option {
	return func(p *Player) {
		p.secondClip = clip
		p.useSecondClip = enabled
	}
}

// WithStateCallback registers an observer invoked on every phase change.
// The callback runs with the player lock held, so it must not call back in.
func WithStateCallback(fn func(State)) Option {
	return func(p *Player) {
		p.onStateChange = fn
	}
}

// NewPlayer creates a player over leadCount leads, starting at index 0 in
// the intro phase, not playing.
func NewPlayer(introClip Clip, leadCount int, opts ...Option) *Player {
	p := &Player{
		introClip:       introClip,
		transitionDelay: 3 * time.Second,
		expandDelay:     DefaultExpandDelay,
		state:           StateIntro,
		leadCount:       leadCount,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current phase
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// IsPlaying reports whether playback is running
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// LeadIndex returns the current lead position
func (p *Player) LeadIndex() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.leadIndex
}

// Start plays the intro from time zero and schedules the two phase changes.
// Starting while already playing restarts from the intro.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelTimersLocked()
	p.setStateLocked(StateIntro)
	p.playing = true

	p.introClip.Rewind()
	p.introClip.Play()

	p.transitionTimer = time.AfterFunc(p.transitionDelay, p.enterTransitioning)
}

func (p *Player) enterTransitioning() {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A reset may have raced the timer
	if !p.playing {
		return
	}

	p.setStateLocked(StateTransitioning)
	p.expandTimer = time.AfterFunc(p.expandDelay, p.enterExpanded)
}

func (p *Player) enterExpanded() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.playing {
		return
	}

	p.setStateLocked(StateExpanded)
	if p.secondClip != nil && p.useSecondClip {
		p.secondClip.Rewind()
		p.secondClip.Play()
	}
}

// Reset cancels pending phase changes, stops and rewinds both clips and
// returns to the intro phase.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
}

func (p *Player) resetLocked() {
	p.cancelTimersLocked()

	p.introClip.Pause()
	p.introClip.Rewind()
	if p.secondClip != nil {
		p.secondClip.Pause()
		p.secondClip.Rewind()
	}

	p.setStateLocked(StateIntro)
	p.playing = false
}

func (p *Player) setStateLocked(s State) {
	if p.state == s {
		return
	}
	p.state = s
	if p.onStateChange != nil {
		p.onStateChange(s)
	}
}

// NextLead moves to the following lead, wrapping past the end back to the
// first. Navigation always resets playback, no state carries across leads.
func (p *Player) NextLead() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.leadCount > 0 {
		p.leadIndex = (p.leadIndex + 1) % p.leadCount
	}
	p.resetLocked()
	return p.leadIndex
}

// PrevLead moves to the previous lead, wrapping before the first to the last
func (p *Player) PrevLead() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.leadCount > 0 {
		p.leadIndex = (p.leadIndex - 1 + p.leadCount) % p.leadCount
	}
	p.resetLocked()
	return p.leadIndex
}

// SetUseSecondClip toggles whether the expanded phase plays the second clip
func (p *Player) SetUseSecondClip(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.useSecondClip = enabled
}

// Close cancels pending timers and stops playback, mirroring unmount
func (p *Player) Close() {
	p.Reset()
}

func (p *Player) cancelTimersLocked() {
	if p.transitionTimer != nil {
		p.transitionTimer.Stop()
		p.transitionTimer = nil
	}
	if p.expandTimer != nil {
		p.expandTimer.Stop()
		p.expandTimer = nil
	}
}
