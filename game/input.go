package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventKind identifies a discrete input event
type EventKind int

const (
	EventQuit       EventKind = iota // window closed
	EventJump                        // Space
	EventShoot                       // S
	EventMuteToggle                  // M
	EventClick                       // left mouse button, carries X/Y
	EventRetry                       // R
	EventExit                        // Q
	EventMenu                        // Escape
	EventSelect                      // 1-3, carries Difficulty
	EventKey                         // any other key
)

// Event is one discrete input occurrence
type Event struct {
	Kind EventKind

	// Pointer position for EventClick
	X, Y float64

	// Chosen preset for EventSelect
	Difficulty Difficulty
}

// IsKey reports whether the event came from the keyboard
func (e Event) IsKey() bool {
	return e.Kind != EventQuit && e.Kind != EventClick
}

// InputSource yields the events that arrived since the previous poll, in arrival order
type InputSource interface {
	Poll() []Event
}

// KeyboardInput provides events from the ebiten keyboard, mouse and window
type KeyboardInput struct {
	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
	events   []Event
}

// NewKeyboardInput creates a new keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		keys:     make([]ebiten.Key, 0, 10),
		touchIDs: make([]ebiten.TouchID, 0, 4),
		events:   make([]Event, 0, 10),
	}
}

// Poll returns the events of the current tick. The slice is reused between polls.
func (k *KeyboardInput) Poll() []Event {
	k.events = k.events[:0]

	if ebiten.IsWindowBeingClosed() {
		k.events = append(k.events, Event{Kind: EventQuit})
	}

	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		// F1/F2 are debug toggles handled by Game
		if key == ebiten.KeyF1 || key == ebiten.KeyF2 {
			continue
		}
		k.events = append(k.events, keyEvent(key))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		k.events = append(k.events, Event{Kind: EventClick, X: float64(x), Y: float64(y)})
	}
	k.touchIDs = inpututil.AppendJustPressedTouchIDs(k.touchIDs[:0])
	for _, id := range k.touchIDs {
		x, y := ebiten.TouchPosition(id)
		k.events = append(k.events, Event{Kind: EventClick, X: float64(x), Y: float64(y)})
	}

	return k.events
}

// keyEvent maps a key to its event
func keyEvent(key ebiten.Key) Event {
	switch key {
	case ebiten.KeySpace:
		return Event{Kind: EventJump}
	case ebiten.KeyS:
		return Event{Kind: EventShoot}
	case ebiten.KeyM:
		return Event{Kind: EventMuteToggle}
	case ebiten.KeyR:
		return Event{Kind: EventRetry}
	case ebiten.KeyQ:
		return Event{Kind: EventExit}
	case ebiten.KeyEscape:
		return Event{Kind: EventMenu}
	case ebiten.Key1, ebiten.KeyNumpad1:
		return Event{Kind: EventSelect, Difficulty: DifficultyEasy}
	case ebiten.Key2, ebiten.KeyNumpad2:
		return Event{Kind: EventSelect, Difficulty: DifficultyMedium}
	case ebiten.Key3, ebiten.KeyNumpad3:
		return Event{Kind: EventSelect, Difficulty: DifficultyHard}
	default:
		return Event{Kind: EventKey}
	}
}

// ScriptedInput replays a fixed queue of per-tick batches; used by tests and the simulator
type ScriptedInput struct {
	batches [][]Event
}

// NewScriptedInput creates a source that returns one batch per Poll
func NewScriptedInput(batches ...[]Event) *ScriptedInput {
	return &ScriptedInput{batches: batches}
}

// Push appends a batch to the queue
func (s *ScriptedInput) Push(events ...Event) {
	s.batches = append(s.batches, events)
}

// Poll returns the next batch, or nil when the queue is empty
func (s *ScriptedInput) Poll() []Event {
	if len(s.batches) == 0 {
		return nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch
}
