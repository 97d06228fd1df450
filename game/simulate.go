package game

import (
	"fmt"
	"math/rand"
)

// Policy chooses the events for the next tick of a headless round
type Policy func(r *Round) []Event

// SimResult summarizes a headless round
type SimResult struct {
	Score   int
	Ticks   int
	Kills   int
	Bullets int
	Defeat  bool
}

// Simulate runs one round without a window until defeat or maxTicks.
// The same seed and policy always produce the same result.
func Simulate(config Config, profile Profile, seed int64, maxTicks int, policy Policy) (SimResult, error) {
	round, err := NewRound(config, profile, &SessionContext{}, NoopAudio{}, rand.New(rand.NewSource(seed)))
	if err != nil {
		return SimResult{}, fmt.Errorf("simulate: %w", err)
	}
	if policy == nil {
		policy = Idle
	}

	var res SimResult
	for res.Ticks < maxTicks && round.State() != RoundDefeat {
		round.Step(policy(round))
		round.Render(NopSurface{})
		res.Ticks++
	}
	res.Score = round.Score()
	res.Kills = round.Kills()
	res.Bullets = round.Shots()
	res.Defeat = round.State() == RoundDefeat
	return res, nil
}

// Idle never acts; the plane falls into the ground
func Idle(*Round) []Event { return nil }

// Autopilot keeps the plane in the gap above the nearest building and shoots
// enemies that share its altitude
func Autopilot(r *Round) []Event {
	if r.State() != RoundRunning {
		return nil
	}
	p := r.Plane()
	var events []Event

	// Aim for a cruise line, raised above the next building in the way
	target := r.config.GroundLine() * 0.45
	for _, b := range r.World().Buildings {
		if b.Right() < p.Left() || b.Left() > p.Right()+150 {
			continue
		}
		if limit := b.Top() - p.H - 20; limit < target {
			target = limit
		}
	}
	// Jumping sets the velocity, so only jump when falling below the target
	if p.Bottom() > target+p.H && p.VY >= 0 && p.Top()+r.config.JumpImpulse*3 > 0 {
		events = append(events, Event{Kind: EventJump})
	}

	for _, e := range r.World().Enemies {
		if e.Left() > p.Right() && e.Bottom() > p.CenterY() && e.Top() < p.CenterY() {
			events = append(events, Event{Kind: EventShoot})
			break
		}
	}
	return events
}
