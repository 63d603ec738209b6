package render

import (
	"math/rand"
)

// CellZone classifies a cell within a drop's trail.
type CellZone int

const (
	ZoneEmpty CellZone = iota
	ZoneHead
	ZoneBrightTrail
	ZoneTrail
	ZoneDim
)

// Cell is one rendered glyph position.
type Cell struct {
	Glyph rune
	Zone  CellZone
}

type column struct {
	active bool
	head   float64 // fractional row of the drop head
	speed  float64 // rows per second
	delay  float64 // seconds until the drop starts falling
	glyphs []rune  // per-row glyph, mutated in place
}

// Field is the rain simulation: a grid of columns with falling drops. It is
// driven by a Params snapshot and steps in wall-clock time. Not safe for
// concurrent use; the owning event loop serializes access.
type Field struct {
	params Params
	width  int
	height int
	cols   []column
	rng    *rand.Rand
}

// NewField creates a field for the given dimensions.
func NewField(p Params, width, height int) *Field {
	f := &Field{
		params: p,
		rng:    rand.New(rand.NewSource(rand.Int63())),
	}
	f.Resize(width, height)
	return f
}

// SetParams swaps in a new parameter snapshot. Columns keep their positions;
// speed and glyph behavior pick up the new values on the next step.
func (f *Field) SetParams(p Params) {
	f.params = p
	if len(p.Glyphs) == 0 {
		return
	}
	// Re-seed glyphs so a symbol set change is visible immediately.
	for i := range f.cols {
		for j := range f.cols[i].glyphs {
			f.cols[i].glyphs[j] = f.randomGlyph()
		}
	}
}

// Params returns the current parameter snapshot.
func (f *Field) Params() Params { return f.params }

// Resize rebuilds the column grid for new terminal dimensions.
func (f *Field) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f.width = width
	f.height = height

	f.cols = make([]column, width)
	for i := range f.cols {
		f.cols[i] = f.newColumn(true)
	}
}

// newColumn spawns a column. Initial spawns scatter heads across the screen
// so the rain does not start as a single synchronized sheet.
func (f *Field) newColumn(initial bool) column {
	c := column{
		active: f.rng.Float64() < f.params.ActivePercentage,
		speed:  f.dropSpeed(),
		glyphs: make([]rune, f.height),
	}
	for i := range c.glyphs {
		c.glyphs[i] = f.randomGlyph()
	}
	if initial {
		c.head = f.rng.Float64() * float64(f.height)
		c.delay = f.rng.Float64() * f.params.ColumnStartDelay
	} else {
		c.head = 0
		c.delay = f.params.ColumnRestartDelay * f.rng.Float64()
	}
	return c
}

// dropSpeed derives a per-column speed in rows per second, spreading columns
// around the base fall speed by the configured variance.
func (f *Field) dropSpeed() float64 {
	spacing := f.params.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	base := f.params.FallSpeed * 4 / spacing
	variance := 1 + (f.rng.Float64()*2-1)*f.params.SpeedVariance
	return base * variance
}

// Step advances the simulation by dt seconds.
func (f *Field) Step(dt float64) {
	for i := range f.cols {
		c := &f.cols[i]
		if !c.active {
			// Dormant columns occasionally wake to track the active
			// percentage as it changes.
			if f.rng.Float64() < 0.002 && f.rng.Float64() < f.params.ActivePercentage {
				*c = f.newColumn(false)
				c.active = true
			}
			continue
		}
		if c.delay > 0 {
			c.delay -= dt
			continue
		}
		c.head += c.speed * dt
		f.mutate(c, dt)
		if int(c.head)-f.params.MaxTrailLength > f.height {
			*c = f.newColumn(false)
		}
	}
}

// mutate randomly swaps trail glyphs at the configured rate.
func (f *Field) mutate(c *column, dt float64) {
	if f.params.MutationRate <= 0 {
		return
	}
	expected := f.params.MutationRate * float64(f.height) * dt
	for expected > 0 {
		if expected >= 1 || f.rng.Float64() < expected {
			c.glyphs[f.rng.Intn(f.height)] = f.randomGlyph()
		}
		expected--
	}
}

func (f *Field) randomGlyph() rune {
	glyphs := []rune(f.params.Glyphs)
	if len(glyphs) == 0 {
		return ' '
	}
	return glyphs[f.rng.Intn(len(glyphs))]
}

// Cell returns the rendered cell at (x, y).
func (f *Field) Cell(x, y int) Cell {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Cell{Zone: ZoneEmpty}
	}
	c := &f.cols[x]
	if !c.active || c.delay > 0 {
		return Cell{Zone: ZoneEmpty}
	}

	head := int(c.head)
	dist := head - y
	if dist < 0 || dist >= f.params.MaxTrailLength || y >= len(c.glyphs) {
		return Cell{Zone: ZoneEmpty}
	}

	zone := ZoneTrail
	switch {
	case dist == 0:
		zone = ZoneHead
	case dist <= f.params.MaxBrightTrailLength:
		zone = ZoneBrightTrail
	case dist > f.params.MaxTrailLength*3/4:
		zone = ZoneDim
	}
	return Cell{Glyph: c.glyphs[y], Zone: zone}
}

// Size returns the current field dimensions.
func (f *Field) Size() (width, height int) {
	return f.width, f.height
}
