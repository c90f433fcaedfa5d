package space

import (
	"math/rand"
	"time"
)

// Report summarises what happened during one World.Step.
type Report struct {
	Shots            int // player projectiles fired
	EnemyShots       int
	TargetsDestroyed int
	ShipsDestroyed   int
	PlayerHits       int // enemy projectiles that reached the player
	Faults           []Fault
}

// World is the skirmish simulation: one player, enemy ships, static targets
// and both sides' projectiles.
type World struct {
	Params Params

	Player     *Player
	Enemies    []*Enemy
	Targets    []Target
	Shots      []Projectile // player projectiles
	EnemyShots []Projectile

	Camera *Camera
	Stars  *Starfield

	// FireScale multiplies every enemy's shot chance. ShipCap is the enemy
	// population the respawn pass refills to. Both are driven by difficulty.
	FireScale float64
	ShipCap   int

	Elapsed time.Duration

	rng      *rand.Rand
	spawner  *Spawner
	collider Throttle
}

// NewWorld builds a world from params, seeded for deterministic play.
// The player starts at the world centre with targets and enemy ships around it.
func NewWorld(params Params, seed int64, stars StarsSpec) *World {
	w := &World{
		Params:    params,
		FireScale: 1,
		ShipCap:   params.Spawning.MaxShips,
		rng:       rand.New(rand.NewSource(seed)),
		collider:  Throttle{Interval: params.CollisionInterval},
	}
	w.spawner = NewSpawner(w.rng, &w.Params)
	w.Stars = NewStarfield(w.rng, params.World, stars.Count, stars.BrightRatio)
	w.Camera = NewCamera(params.View, params.World, params.CameraSmoothing)
	w.Player = NewPlayer(params.World.Center(), params.ShipSize)

	w.refillTargets()
	w.refillShips()
	return w
}

// StarsSpec sizes a starfield.
type StarsSpec struct {
	Count       int
	BrightRatio float64
}

func (w *World) refillTargets() {
	for len(w.Targets) < w.Params.Spawning.MaxTargets {
		t, ok := w.spawner.Target(w.Player.Pos)
		if !ok {
			return
		}
		w.Targets = append(w.Targets, t)
	}
}

func (w *World) refillShips() {
	for len(w.Enemies) < w.ShipCap {
		w.Enemies = append(w.Enemies, w.spawner.Ship(w.Player.Pos))
	}
}

// Step advances the world by dt. The order is fixed: player fire, player
// update, player projectiles, throttled target collisions, enemy updates and
// fire, enemy projectiles, player projectiles against ships, ship respawn,
// enemy projectiles against the player, camera.
//
// Step never panics on bad numbers. A player whose update fails is replaced
// at the world centre; an enemy whose update fails is dropped and refilled by
// the respawn pass. Both are reported as faults.
func (w *World) Step(ctrl Controls, dt time.Duration) Report {
	var r Report
	p := &w.Params
	sec := dt.Seconds()
	if sec < 0 {
		sec = 0
	}
	w.Elapsed += dt

	if ctrl.Fire && len(w.Shots) < p.MaxBullets {
		if shot, ok := w.Player.Shoot(p.BulletSpeed, p.PlayerCooldown); ok {
			w.Shots = append(w.Shots, shot)
			r.Shots++
		}
	}

	if err := w.Player.Update(ctrl, dt, p); err != nil {
		r.Faults = append(r.Faults, Fault{Entity: EntityPlayer, Err: err})
		w.Player = NewPlayer(p.World.Center(), p.ShipSize)
	}

	r.TargetsDestroyed = w.stepShots(sec, dt)

	r.EnemyShots, r.Faults = w.stepEnemies(dt, r.Faults)

	w.EnemyShots = moveProjectiles(w.EnemyShots, sec, p)

	r.ShipsDestroyed = w.shootShips()
	w.refillShips()

	r.PlayerHits = w.hitPlayer()

	w.Camera.Follow(w.Player.Pos)
	w.Camera.Update()
	return r
}

// stepShots moves player projectiles, runs the throttled target check and
// removes spent projectiles and destroyed targets in one pass.
func (w *World) stepShots(sec float64, dt time.Duration) int {
	p := &w.Params
	gone := make([]bool, len(w.Shots))
	for i := range w.Shots {
		w.Shots[i].Update(sec)
		gone[i] = w.Shots[i].OutOfBounds(p.World)
	}

	var shotHit, targetHit []bool
	if w.collider.Tick(dt) {
		shotHit, targetHit = hits(w.Shots, gone, p.MaxBullets, w.Targets, p.Spawning.MaxTargets, true, hitTarget)
	}

	w.Shots, _ = removeMarked(w.Shots, gone, shotHit)
	var destroyed int
	w.Targets, destroyed = removeMarked(w.Targets, targetHit)

	for range min(destroyed, p.Spawning.MaxTargets-len(w.Targets)) {
		if t, ok := w.spawner.Target(w.Player.Pos); ok {
			w.Targets = append(w.Targets, t)
		}
	}
	return destroyed
}

// stepEnemies updates every enemy against the same peer list and lets each
// one fire. Failed enemies are removed after the loop.
func (w *World) stepEnemies(dt time.Duration, faults []Fault) (int, []Fault) {
	p := &w.Params
	fired := 0
	failed := make([]bool, len(w.Enemies))

	for i, e := range w.Enemies {
		if err := e.Update(dt, &w.Player.Body, w.Enemies, p); err != nil {
			faults = append(faults, Fault{Entity: EntityEnemy, Index: i, Err: err})
			failed[i] = true
			continue
		}
		if e.WantsToFire(w.rng, &w.Player.Body, p.AI, w.FireScale) {
			w.EnemyShots = append(w.EnemyShots, e.Fire(w.rng, &w.Player.Body, p.AI, p.BulletSpeed))
			fired++
		}
	}

	w.Enemies, _ = removeMarked(w.Enemies, failed)
	return fired, faults
}

func moveProjectiles(shots []Projectile, sec float64, p *Params) []Projectile {
	gone := make([]bool, len(shots))
	for i := range shots {
		shots[i].Update(sec)
		gone[i] = shots[i].OutOfBounds(p.World)
	}
	shots, _ = removeMarked(shots, gone)
	return shots
}

// shootShips checks every player projectile against every enemy ship.
// A projectile stops at the first ship it hits.
func (w *World) shootShips() int {
	shotHit, shipHit := hits(w.Shots, nil, -1, w.Enemies, -1, false, hitShip)
	w.Shots, _ = removeMarked(w.Shots, shotHit)
	var destroyed int
	w.Enemies, destroyed = removeMarked(w.Enemies, shipHit)
	return destroyed
}

// hitPlayer removes enemy projectiles that reached the player.
func (w *World) hitPlayer() int {
	gone := make([]bool, len(w.EnemyShots))
	for i, s := range w.EnemyShots {
		gone[i] = w.Player.Pos.Dist(s.Pos) <= w.Player.Size
	}
	var n int
	w.EnemyShots, n = removeMarked(w.EnemyShots, gone)
	return n
}

// SetShipCap changes the enemy population target. Extra ships are not
// removed; the population shrinks as they are destroyed.
func (w *World) SetShipCap(n int) {
	w.ShipCap = max(n, 0)
}
