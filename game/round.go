package game

import (
	"fmt"
	"math/rand"
	"time"
)

// RoundState is the phase of a round
type RoundState int

const (
	RoundRunning     RoundState = iota // gameplay
	RoundTerminating                   // fatal collision, explosions playing out
	RoundDefeat                        // finished
)

func (s RoundState) String() string {
	switch s {
	case RoundRunning:
		return "running"
	case RoundTerminating:
		return "terminating"
	case RoundDefeat:
		return "defeat"
	default:
		return fmt.Sprintf("RoundState(%d)", int(s))
	}
}

// Round is one life of the plane, from spawn to defeat
type Round struct {
	config  Config
	profile Profile

	world           *World
	collisionSystem *CollisionSystem
	spawner         *Spawner
	plane           *Plane

	session *SessionContext
	audio   AudioPlayer

	state RoundState
	score int
	kills int
	shots int

	// Simulated time, advanced by one tick duration per step
	clock time.Duration

	// Set once the frame showing the end of the round has been rendered
	finalFrameRendered bool
}

// NewRound creates a round with a fresh entity set. The profile is copied.
func NewRound(config Config, profile Profile, session *SessionContext, audio AudioPlayer, rng *rand.Rand) (*Round, error) {
	if session == nil {
		return nil, fmt.Errorf("round: nil session context")
	}
	if audio == nil {
		audio = NoopAudio{}
	}
	spawner, err := NewSpawner(config, profile, rng)
	if err != nil {
		return nil, fmt.Errorf("round: %w", err)
	}

	world := NewWorld(config)
	return &Round{
		config:          config,
		profile:         profile,
		world:           world,
		collisionSystem: NewCollisionSystem(world, config),
		spawner:         spawner,
		plane:           NewPlane(config.PlaneStartX, config.PlaneStartY, config.PlaneWidth, config.PlaneHeight),
		session:         session,
		audio:           audio,
		state:           RoundRunning,
	}, nil
}

// State returns the current phase
func (r *Round) State() RoundState { return r.state }

// Score returns the points earned in this round
func (r *Round) Score() int { return r.score }

// Profile returns the physics the round was created with
func (r *Round) Profile() Profile { return r.profile }

// Kills returns the number of enemies shot down
func (r *Round) Kills() int { return r.kills }

// Shots returns the number of bullets fired
func (r *Round) Shots() int { return r.shots }

// Plane returns the player entity
func (r *Round) Plane() *Plane { return r.plane }

// World returns the entity collections
func (r *Round) World() *World { return r.world }

// Clock returns the simulated time elapsed in the round
func (r *Round) Clock() time.Duration { return r.clock }

// Tick returns the spawn counter
func (r *Round) Tick() int { return r.spawner.Counter() }

// Step advances the round by one tick. Gameplay events are applied in arrival
// order before physics; they are ignored once the round is no longer running.
func (r *Round) Step(events []Event) {
	if r.plane == nil {
		panic("round: step without a plane")
	}

	switch r.state {
	case RoundRunning:
		r.handleEvents(events)
		r.stepRunning()
	case RoundTerminating:
		r.stepTerminating()
	case RoundDefeat:
		return
	}
	r.clock += r.config.TickDuration()
}

func (r *Round) handleEvents(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventJump:
			r.plane.Jump(r.config.JumpImpulse)
		case EventShoot:
			r.shoot()
		}
	}
}

func (r *Round) shoot() {
	r.shots++
	r.world.AddBullet(&Bullet{
		Rect: Rect{
			X: r.plane.Right(),
			Y: r.plane.CenterY(),
			W: r.config.BulletWidth,
			H: r.config.BulletHeight,
		},
		Speed: r.config.BulletSpeed,
	})
}

func (r *Round) stepRunning() {
	r.plane.ApplyGravity(r.profile.Gravity)
	r.plane.Update()

	r.world.AddSpawned(r.spawner.Spawn())
	r.world.UpdateEntities()

	res := r.collisionSystem.Resolve(r.plane, r.clock)
	r.addPoints(res.Points)
	r.kills += res.Kills
	for i := 0; i < res.Kills; i++ {
		r.audio.Play(TrackExplosion)
	}
	if res.Fatal {
		r.audio.Play(TrackExplosion)
		r.state = RoundTerminating
	}

	r.world.UpdateExplosions(r.clock)
	r.spawner.Advance()
}

// stepTerminating waits for the fatal frame to be shown, then lets explosions
// run out before the round ends
func (r *Round) stepTerminating() {
	if !r.finalFrameRendered {
		return
	}
	if r.config.DrainExplosions && len(r.world.Explosions) > 0 {
		r.finalFrameRendered = false
		r.world.UpdateExplosions(r.clock)
		return
	}
	r.state = RoundDefeat
}

func (r *Round) addPoints(points int) {
	r.score += points
	if r.score > r.session.TopScore {
		r.session.TopScore = r.score
	}
}
