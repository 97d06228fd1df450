package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
)

// ErrQuit is returned by Session.Update when the player asked to leave
var ErrQuit = errors.New("game: quit requested")

// SessionState is the screen the session is showing
type SessionState int

const (
	StateMenu SessionState = iota
	StateInstructions
	StatePlaying
	StateDefeat
)

func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateInstructions:
		return "instructions"
	case StatePlaying:
		return "playing"
	case StateDefeat:
		return "defeat"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// SessionContext is the state that outlives a round
type SessionContext struct {
	Muted    bool
	TopScore int
}

// Session drives the screens: menu, instructions, a round, and the defeat screen
type Session struct {
	config   Config
	profiles ProfileTable
	ctx      *SessionContext
	audio    AudioPlayer
	rng      *rand.Rand

	state      SessionState
	difficulty Difficulty
	round      *Round

	// Score of the last finished round, shown on the defeat screen
	finalScore int
}

// NewSession creates a session on the start menu
func NewSession(config Config, profiles ProfileTable, audio AudioPlayer, rng *rand.Rand) *Session {
	if audio == nil {
		audio = NoopAudio{}
	}
	s := &Session{
		config:   config,
		profiles: profiles,
		ctx:      &SessionContext{},
		audio:    audio,
		rng:      rng,
	}
	applyMute(s.audio, false, config.MusicVolume)
	s.enterMenu()
	return s
}

// State returns the current screen
func (s *Session) State() SessionState { return s.state }

// Context returns the cross-round state
func (s *Session) Context() *SessionContext { return s.ctx }

// Round returns the active round, or nil outside of play
func (s *Session) Round() *Round { return s.round }

// Difficulty returns the preset of the current or last round
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// FinalScore returns the score of the last finished round
func (s *Session) FinalScore() int { return s.finalScore }

// Update processes one tick of input. It returns ErrQuit when the game should exit.
func (s *Session) Update(events []Event) error {
	for _, ev := range events {
		if ev.Kind == EventQuit {
			return ErrQuit
		}
	}

	switch s.state {
	case StateMenu:
		return s.updateMenu(events)
	case StateInstructions:
		s.updateInstructions(events)
	case StatePlaying:
		return s.updatePlaying(events)
	case StateDefeat:
		return s.updateDefeat(events)
	}
	return nil
}

func (s *Session) updateMenu(events []Event) error {
	mute := MuteButton(s.config, false)
	for _, ev := range events {
		switch ev.Kind {
		case EventMuteToggle:
			s.toggleMute()
		case EventSelect:
			return s.startRound(ev.Difficulty)
		case EventClick:
			if mute.Contains(ev.X, ev.Y) {
				s.toggleMute()
				continue
			}
			for _, b := range MenuButtons() {
				if !b.Rect.Contains(ev.X, ev.Y) {
					continue
				}
				if b.Instructions {
					s.state = StateInstructions
					return nil
				}
				return s.startRound(b.Difficulty)
			}
		}
	}
	return nil
}

// updateInstructions returns to the menu on any key except M, which toggles mute
func (s *Session) updateInstructions(events []Event) {
	mute := MuteButton(s.config, false)
	for _, ev := range events {
		switch {
		case ev.Kind == EventMuteToggle:
			s.toggleMute()
		case ev.Kind == EventClick && mute.Contains(ev.X, ev.Y):
			s.toggleMute()
		case ev.IsKey():
			s.state = StateMenu
			return
		}
	}
}

// updatePlaying steps the round; mute is handled here so it works in every round phase
func (s *Session) updatePlaying(events []Event) error {
	if s.round == nil {
		return fmt.Errorf("session: playing without a round")
	}
	mute := MuteButton(s.config, true)
	for _, ev := range events {
		switch {
		case ev.Kind == EventMuteToggle:
			s.toggleMute()
		case ev.Kind == EventClick && mute.Contains(ev.X, ev.Y):
			s.toggleMute()
		}
	}

	s.round.Step(events)
	if s.round.State() == RoundDefeat {
		s.endRound()
	}
	return nil
}

func (s *Session) updateDefeat(events []Event) error {
	mute := MuteButton(s.config, false)
	for _, ev := range events {
		switch ev.Kind {
		case EventRetry:
			return s.startRound(s.difficulty)
		case EventExit:
			return ErrQuit
		case EventMenu:
			s.enterMenu()
			return nil
		case EventMuteToggle:
			s.toggleMute()
		case EventClick:
			if mute.Contains(ev.X, ev.Y) {
				s.toggleMute()
			}
		}
	}
	return nil
}

// startRound begins a fresh round with the preset's exact parameters
func (s *Session) startRound(d Difficulty) error {
	round, err := NewRound(s.config, s.profiles.Lookup(d), s.ctx, s.audio, s.rng)
	if err != nil {
		return fmt.Errorf("session: start %s: %w", d, err)
	}
	s.audio.Stop(TrackIntro)
	s.audio.Play(TrackMusic)
	s.difficulty = d
	s.round = round
	s.state = StatePlaying
	log.Printf("[Session] Starting %s round (top score %d)", d, s.ctx.TopScore)
	return nil
}

func (s *Session) endRound() {
	s.audio.Stop(TrackMusic)
	s.finalScore = s.round.Score()
	s.state = StateDefeat
	log.Printf("[Session] Round over: score %d, top score %d", s.finalScore, s.ctx.TopScore)
}

func (s *Session) enterMenu() {
	s.audio.Stop(TrackMusic)
	s.audio.Play(TrackIntro)
	s.round = nil
	s.state = StateMenu
}

func (s *Session) toggleMute() {
	s.ctx.Muted = !s.ctx.Muted
	applyMute(s.audio, s.ctx.Muted, s.config.MusicVolume)
	log.Printf("[Session] Muted: %t", s.ctx.Muted)
}

// Render draws the current screen
func (s *Session) Render(surface Surface) {
	switch s.state {
	case StateMenu:
		s.renderMenu(surface)
	case StateInstructions:
		s.renderInstructions(surface)
	case StatePlaying:
		if s.round != nil {
			s.round.Render(surface)
		}
	case StateDefeat:
		s.renderDefeat(surface)
	}
}

func (s *Session) renderMenu(surface Surface) {
	surface.DrawBackground()
	w := float64(s.config.ScreenWidth)
	surface.DrawText(titleText, w/2, 100, titleStyle)
	for _, b := range MenuButtons() {
		surface.DrawButton(b)
	}
	s.renderMuteLabel(surface)
}

func (s *Session) renderInstructions(surface Surface) {
	surface.DrawBackground()
	for i, line := range InstructionLines {
		surface.DrawText(line, 50, float64(100+i*40), helpStyle)
	}
	s.renderMuteLabel(surface)
}

func (s *Session) renderDefeat(surface Surface) {
	surface.DrawBackground()
	w := float64(s.config.ScreenWidth)
	h := float64(s.config.ScreenHeight)
	surface.DrawText(gameOverText, w/2, h/3, titleStyle)
	surface.DrawText(fmt.Sprintf("Your Score: %d", s.finalScore), w/2, h/2, bodyStyle)
	surface.DrawText(retryText, w/2, h/2+50, bodyStyle)
	surface.DrawText(menuHintText, w/2, h/2+90, bodyStyle)
	s.renderMuteLabel(surface)
}

func (s *Session) renderMuteLabel(surface Surface) {
	mute := MuteButton(s.config, false)
	surface.DrawText(MuteLabel(s.ctx.Muted), mute.CenterX(), mute.CenterY(), muteStyle)
}
