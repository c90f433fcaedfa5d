package space

import (
	"math"
	"math/rand"

	"github.com/StevenRydell/littlespace/internal/core"
)

// Decoration is a scenery object in the flight demo. Update animates it;
// CullRadius is how far outside the viewport it can still be seen.
type Decoration interface {
	Position() core.Vec2
	CullRadius() float64
	Update(dt float64)
}

// PlanetScheme names a planet palette.
type PlanetScheme struct {
	Name    string
	Body    core.Color
	Outline core.Color
	Detail  core.Color
}

// PlanetSchemes lists the available planet palettes.
var PlanetSchemes = []PlanetScheme{
	{"Mars", core.ColorRed, core.ColorBrightRed, core.ColorOrange},
	{"Earth", core.ColorBlue, core.ColorBrightBlue, core.ColorGreen},
	{"Venus", core.ColorYellow, core.ColorOrange, core.ColorBrightYellow},
	{"Neptune", core.ColorCyan, core.ColorBrightCyan, core.ColorBlue},
	{"Jupiter", core.ColorOrange, core.ColorYellow, core.ColorRed},
	{"Purple", core.ColorPurple, core.ColorMagenta, core.ColorBrightMagenta},
}

// Planet is a static body with a shaded crescent. Planets larger than 20
// units carry a surface feature.
type Planet struct {
	Pos    core.Vec2
	Size   float64
	Scheme PlanetScheme
}

func (p *Planet) Position() core.Vec2 { return p.Pos }
func (p *Planet) CullRadius() float64 { return p.Size }
func (p *Planet) Update(float64)      {}

// HasFeature reports whether the planet is large enough for surface detail.
func (p *Planet) HasFeature() bool {
	return p.Size > 20
}

// FogParticle is one translucent puff of a fog bank.
type FogParticle struct {
	Pos     core.Vec2
	Size    float64
	Opacity float64
}

// FogBank is a cloud of static particles.
type FogBank struct {
	Pos       core.Vec2
	W, H      float64
	Color     core.Color
	Particles []FogParticle
}

// NewFogBank scatters density×50 particles over a w×h box centred on pos.
func NewFogBank(rng *rand.Rand, pos core.Vec2, w, h float64, color core.Color, density float64) *FogBank {
	f := &FogBank{Pos: pos, W: w, H: h, Color: color}
	for range int(density * 50) {
		f.Particles = append(f.Particles, FogParticle{
			Pos:     pos.Add(core.V(uniform(rng, -w/2, w/2), uniform(rng, -h/2, h/2))),
			Size:    uniform(rng, 3, 8),
			Opacity: uniform(rng, 0.1, 0.3),
		})
	}
	return f
}

func (f *FogBank) Position() core.Vec2 { return f.Pos }
func (f *FogBank) CullRadius() float64 { return 100 }
func (f *FogBank) Update(float64)      {}

// Anomaly is a spinning set of pulsing energy rings.
type Anomaly struct {
	Pos      core.Vec2
	Size     float64
	Color    core.Color
	Rotation float64
	Pulse    float64
}

func (a *Anomaly) Position() core.Vec2 { return a.Pos }
func (a *Anomaly) CullRadius() float64 { return a.Size }

func (a *Anomaly) Update(dt float64) {
	a.Rotation += 45 * dt
	a.Pulse += 3 * dt
}

// Scale is the current pulse size multiplier.
func (a *Anomaly) Scale() float64 {
	return 1 + 0.3*math.Sin(a.Pulse)
}

// Rock is one asteroid in a cluster.
type Rock struct {
	Pos  core.Vec2
	Size float64
	Gray uint8
}

// AsteroidCluster is a static group of rocks.
type AsteroidCluster struct {
	Pos   core.Vec2
	Rocks []Rock
}

// NewAsteroidCluster scatters count rocks within ±spread of pos.
func NewAsteroidCluster(rng *rand.Rand, pos core.Vec2, count int, spread float64) *AsteroidCluster {
	c := &AsteroidCluster{Pos: pos}
	for range count {
		c.Rocks = append(c.Rocks, Rock{
			Pos:  pos.Add(core.V(uniform(rng, -spread, spread), uniform(rng, -spread, spread))),
			Size: uniform(rng, 2, 6),
			Gray: uint8(100 + rng.Intn(81)),
		})
	}
	return c
}

func (c *AsteroidCluster) Position() core.Vec2 { return c.Pos }
func (c *AsteroidCluster) CullRadius() float64 { return 60 }
func (c *AsteroidCluster) Update(float64)      {}

// StationKind selects a base station's layout.
type StationKind int

const (
	StationCommand StationKind = iota
	StationFuel
	StationBar
	StationMining
	StationResearch
	StationTrade
	StationMilitary
	StationShipyard
	StationMedical
	StationCasino
	stationKinds
)

var stationNames = [...]string{
	"command", "fuel", "bar", "mining", "research",
	"trade", "military", "shipyard", "medical", "casino",
}

func (k StationKind) String() string {
	if k < 0 || k >= stationKinds {
		return "unknown"
	}
	return stationNames[k]
}

// DefaultSize is the station's radius for its kind.
func (k StationKind) DefaultSize() float64 {
	switch k {
	case StationCommand, StationMilitary, StationShipyard:
		return 25
	case StationFuel, StationTrade, StationCasino:
		return 22
	default:
		return 20
	}
}

// Station is a base station with blinking lights. The main light toggles
// every two seconds; the secondary light is on during the first half of
// each second of the blink cycle.
type Station struct {
	Pos       core.Vec2
	Size      float64
	Kind      StationKind
	Rotation  float64
	Pulse     float64
	MainLight bool
	Secondary bool

	blink float64
}

// NewStation creates a station sized for its kind with the main light on.
func NewStation(pos core.Vec2, kind StationKind) *Station {
	return &Station{Pos: pos, Size: kind.DefaultSize(), Kind: kind, MainLight: true}
}

func (s *Station) Position() core.Vec2 { return s.Pos }
func (s *Station) CullRadius() float64 { return s.Size }

func (s *Station) Update(dt float64) {
	s.blink += dt
	s.Rotation += 30 * dt
	s.Pulse += 2 * dt

	if s.blink >= 2.0 {
		s.MainLight = !s.MainLight
		s.blink = 0
	}
	s.Secondary = math.Mod(s.blink, 1.0) < 0.5
}

// Pulsar is a fast-spinning star with four beams.
type Pulsar struct {
	Pos      core.Vec2
	Size     float64
	Color    core.Color
	Rotation float64
	Pulse    float64
}

func (p *Pulsar) Position() core.Vec2 { return p.Pos }
func (p *Pulsar) CullRadius() float64 { return p.Size * 2 }

func (p *Pulsar) Update(dt float64) {
	p.Rotation += 90 * dt
	p.Pulse += 4 * dt
}

// Scale is the current core size multiplier.
func (p *Pulsar) Scale() float64 {
	return 1 + 0.5*math.Sin(p.Pulse)
}

// BeamAngles returns the directions of the four beams in degrees.
func (p *Pulsar) BeamAngles() [4]float64 {
	var a [4]float64
	for i := range a {
		a[i] = core.WrapDegrees(p.Rotation + float64(i)*90)
	}
	return a
}

// Beacon is a warning light that toggles every half second.
type Beacon struct {
	Pos core.Vec2
	On  bool

	blink float64
}

// NewBeacon creates a beacon with its light on.
func NewBeacon(pos core.Vec2) *Beacon {
	return &Beacon{Pos: pos, On: true}
}

func (b *Beacon) Position() core.Vec2 { return b.Pos }
func (b *Beacon) CullRadius() float64 { return 20 }

func (b *Beacon) Update(dt float64) {
	b.blink += dt
	if b.blink >= 0.5 {
		b.On = !b.On
		b.blink = 0
	}
}

// SolarFlare is a pulsing jet streaming from a point.
type SolarFlare struct {
	Pos       core.Vec2
	Direction float64 // degrees, measured like headings
	Length    float64
	Intensity float64

	timer float64
}

func (f *SolarFlare) Position() core.Vec2 { return f.Pos }
func (f *SolarFlare) CullRadius() float64 { return f.Length }

func (f *SolarFlare) Update(dt float64) {
	f.timer += dt * 2
	f.Intensity = 0.5 + 0.5*math.Sin(f.timer)
}

// Tip returns the far end of the flare.
func (f *SolarFlare) Tip() core.Vec2 {
	return f.Pos.Add(core.HeadingVector(f.Direction).Scale(f.Length))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
