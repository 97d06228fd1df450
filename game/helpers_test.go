package game

import (
	"fmt"
	"math/rand"
	"testing"
)

// fakeAudio records every call as "play:music", "stop:intro" or "volume:music=0.50"
type fakeAudio struct {
	calls   []string
	volumes map[Track]float64
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{volumes: make(map[Track]float64)}
}

func (a *fakeAudio) Play(t Track) { a.calls = append(a.calls, "play:"+t.String()) }
func (a *fakeAudio) Stop(t Track) { a.calls = append(a.calls, "stop:"+t.String()) }
func (a *fakeAudio) SetVolume(t Track, v float64) {
	a.volumes[t] = v
	a.calls = append(a.calls, fmt.Sprintf("volume:%s=%.2f", t, v))
}

func (a *fakeAudio) count(call string) int {
	n := 0
	for _, c := range a.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (a *fakeAudio) reset() { a.calls = a.calls[:0] }

// recordingSurface records the kind of every draw call in order
type recordingSurface struct {
	calls []string
	texts []string
}

func (s *recordingSurface) DrawBackground() { s.calls = append(s.calls, "background") }
func (s *recordingSurface) DrawPlane(Rect) { s.calls = append(s.calls, "plane") }
func (s *recordingSurface) DrawBuilding(Rect) { s.calls = append(s.calls, "building") }
func (s *recordingSurface) DrawEnemy(Rect) { s.calls = append(s.calls, "enemy") }
func (s *recordingSurface) DrawBullet(Rect) { s.calls = append(s.calls, "bullet") }
func (s *recordingSurface) DrawExplosion(*Explosion) { s.calls = append(s.calls, "explosion") }
func (s *recordingSurface) DrawGroundTile(float64, float64) { s.calls = append(s.calls, "ground") }
func (s *recordingSurface) DrawButton(b Button) { s.calls = append(s.calls, "button") }
func (s *recordingSurface) GroundTileWidth() float64 { return 0 }
func (s *recordingSurface) DrawText(str string, x, y float64, style TextStyle) {
	s.calls = append(s.calls, "text")
	s.texts = append(s.texts, str)
}

func (s *recordingSurface) hasText(str string) bool {
	for _, t := range s.texts {
		if t == str {
			return true
		}
	}
	return false
}

func newTestRound(t *testing.T, config Config, d Difficulty, ctx *SessionContext) *Round {
	t.Helper()
	if ctx == nil {
		ctx = &SessionContext{}
	}
	r, err := NewRound(config, DefaultProfiles(config).Lookup(d), ctx, nil, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewRound failed: %v", err)
	}
	return r
}

// stepUntil steps and renders the round until done returns true or limit ticks pass
func stepUntil(r *Round, limit int, done func() bool) int {
	for i := 0; i < limit; i++ {
		if done() {
			return i
		}
		r.Step(nil)
		r.Render(NopSurface{})
	}
	return limit
}
