package space

import (
	"math/rand"
	"time"

	"github.com/StevenRydell/littlespace/internal/core"
)

// SceneSpec says how many of each decoration to scatter.
type SceneSpec struct {
	Stars        StarsSpec
	Planets      int
	FogBanks     int
	Anomalies    int
	Asteroids    int
	Stations     int
	Pulsars      int
	Beacons      int
	DebrisFields int
	SolarFlares  int
	Debris       DebrisSpec
}

// Environment is the decorated backdrop of the flight demo.
type Environment struct {
	World core.Bounds
	Stars *Starfield

	Planets   []*Planet
	Fog       []*FogBank
	Anomalies []*Anomaly
	Asteroids []*AsteroidCluster
	Stations  []*Station
	Pulsars   []*Pulsar
	Beacons   []*Beacon
	Debris    []*DebrisField
	Flares    []*SolarFlare
}

var (
	fogColors    = []core.Color{core.ColorPurple, core.ColorBlue, core.ColorMagenta, core.ColorCyan}
	energyColors = []core.Color{core.ColorBrightCyan, core.ColorBrightMagenta, core.ColorBrightGreen}
	pulsarColors = []core.Color{core.ColorBrightWhite, core.ColorBrightMagenta, core.ColorBrightCyan}
)

// GenerateEnvironment scatters a scene across world from rng. Objects keep a
// 100 unit margin from the edges. Solar flares stream from planets when
// there are any.
func GenerateEnvironment(rng *rand.Rand, world core.Bounds, spec SceneSpec) *Environment {
	e := &Environment{
		World: world,
		Stars: NewStarfield(rng, world, spec.Stars.Count, spec.Stars.BrightRatio),
	}

	const margin = 100
	spot := func() core.Vec2 {
		return core.V(uniform(rng, margin, world.W-margin), uniform(rng, margin, world.H-margin))
	}

	for range spec.Planets {
		e.Planets = append(e.Planets, &Planet{
			Pos:    spot(),
			Size:   uniform(rng, 15, 35),
			Scheme: PlanetSchemes[rng.Intn(len(PlanetSchemes))],
		})
	}
	for range spec.FogBanks {
		color := fogColors[rng.Intn(len(fogColors))]
		e.Fog = append(e.Fog, NewFogBank(rng, spot(), uniform(rng, 80, 160), uniform(rng, 60, 120), color, uniform(rng, 0.5, 1.5)))
	}
	for range spec.Anomalies {
		e.Anomalies = append(e.Anomalies, &Anomaly{
			Pos:   spot(),
			Size:  25,
			Color: energyColors[rng.Intn(len(energyColors))],
		})
	}
	for range spec.Asteroids {
		e.Asteroids = append(e.Asteroids, NewAsteroidCluster(rng, spot(), 10, 40))
	}
	for i := range spec.Stations {
		// Cycle through kinds so small scenes still show variety
		e.Stations = append(e.Stations, NewStation(spot(), StationKind(i%int(stationKinds))))
	}
	for range spec.Pulsars {
		e.Pulsars = append(e.Pulsars, &Pulsar{
			Pos:   spot(),
			Size:  15,
			Color: pulsarColors[rng.Intn(len(pulsarColors))],
		})
	}
	for range spec.Beacons {
		e.Beacons = append(e.Beacons, NewBeacon(spot()))
	}
	for range spec.DebrisFields {
		e.Debris = append(e.Debris, NewDebrisField(rng, spot(), spec.Debris))
	}
	for i := range spec.SolarFlares {
		origin := spot()
		if len(e.Planets) > 0 {
			origin = e.Planets[i%len(e.Planets)].Pos
		}
		e.Flares = append(e.Flares, &SolarFlare{
			Pos:       origin,
			Direction: uniform(rng, 0, 360),
			Length:    uniform(rng, 40, 80),
		})
	}
	return e
}

// Decorations returns every decoration in draw order, back to front.
func (e *Environment) Decorations() []Decoration {
	var out []Decoration
	for _, d := range e.Fog {
		out = append(out, d)
	}
	for _, d := range e.Flares {
		out = append(out, d)
	}
	for _, d := range e.Planets {
		out = append(out, d)
	}
	for _, d := range e.Debris {
		out = append(out, d)
	}
	for _, d := range e.Asteroids {
		out = append(out, d)
	}
	for _, d := range e.Stations {
		out = append(out, d)
	}
	for _, d := range e.Beacons {
		out = append(out, d)
	}
	for _, d := range e.Pulsars {
		out = append(out, d)
	}
	for _, d := range e.Anomalies {
		out = append(out, d)
	}
	return out
}

// Update animates the decorations near the camera. Off-screen objects are
// frozen until they come back into view.
func (e *Environment) Update(dt float64, cam *Camera) {
	for _, d := range e.Decorations() {
		if cam.Visible(d.Position(), d.CullRadius()) {
			d.Update(dt)
		}
	}
}

// PushBack runs every debris field's pushback check against b and keeps b
// inside the world. It reports whether any field pushed.
func (e *Environment) PushBack(b *Body, dt time.Duration) bool {
	pushed := false
	for _, f := range e.Debris {
		if f.Push(b, dt) {
			pushed = true
		}
	}
	if pushed {
		b.Pos = e.World.Clamp(b.Pos)
	}
	return pushed
}
