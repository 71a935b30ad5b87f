package dashboard

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/rileyhilliard/vigil/internal/config"
	"github.com/rileyhilliard/vigil/internal/status"
)

// glyphSet is the pool of characters the rain draws from. Half-width
// katakana render one cell wide in every terminal that has them.
var glyphSet = []rune("ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ0123456789=*+-<>:.")

// Animation tuning. Brightness is a 0..1 scale applied to the palette.
const (
	nearHeadBand  = 2    // cells behind the head at full severity brightness
	flickerNear   = 4    // 1-in-4 glyph replacement near the head
	flickerTrail  = 8    // 1-in-8 glyph replacement along the trail
	minBrightness = 0.15 // trail floor so long trails stay visible
	decayStep     = 16   // per-channel fade applied to orphaned cells
)

// headColor is reserved for the leading cell and deliberately not the
// severity color, so the head reads as a bright spark on any palette.
var headColor = cellColor{r: 235, g: 255, b: 235}

// cellColor is one cell's packed color. The zero value means unlit.
type cellColor struct {
	r, g, b uint8
}

func (c cellColor) lit() bool {
	return c.r != 0 || c.g != 0 || c.b != 0
}

// decay steps every channel toward zero independently, clamped at zero.
func (c cellColor) decay() cellColor {
	return cellColor{
		r: decayChannel(c.r),
		g: decayChannel(c.g),
		b: decayChannel(c.b),
	}
}

func decayChannel(v uint8) uint8 {
	if v <= decayStep {
		return 0
	}
	return v - decayStep
}

// scale applies a 0..1 brightness factor to a palette color.
func (c cellColor) scale(brightness float64) cellColor {
	return cellColor{
		r: uint8(float64(c.r) * brightness),
		g: uint8(float64(c.g) * brightness),
		b: uint8(float64(c.b) * brightness),
	}
}

// paletteFor maps overall severity to the trail base color. The whole
// animation shifts together; columns never mix palettes.
func paletteFor(sev status.Severity) cellColor {
	switch sev {
	case status.SeverityCritical:
		return cellColor{r: 255, g: 0, b: 85} // ColorCritical
	case status.SeverityWarning:
		return cellColor{r: 255, g: 170, b: 0} // ColorWarning
	default:
		return cellColor{r: 57, g: 255, b: 20} // ColorHealthy
	}
}

// Column is one falling stream's simulation state.
type Column struct {
	// Head is the row of the leading cell. Negative means the column
	// has not yet entered the visible area.
	Head float64

	// Speed is the fall rate in rows per tick.
	Speed float64

	// Trail is how many cells behind the head stay lit.
	Trail int

	// Active is false while the column waits out its respawn delay.
	Active bool

	// RespawnDelay is the tick countdown before an inactive column
	// re-enters from above the screen.
	RespawnDelay int
}

// RainEngine animates the screensaver: one Column per screen column over
// persistent glyph and color grids. The grids survive across ticks within
// a session, which is what makes the decaying trail work without per-cell
// timers; Activate clears everything for a fresh session.
type RainEngine struct {
	cfg     config.RainConfig
	profile termenv.Profile
	rng     *rand.Rand

	cols, rows int
	columns    []Column
	glyphs     [][]int // index+1 into glyphSet; 0 = no glyph assigned
	colors     [][]cellColor
	active     bool
}

// NewRainEngine creates an inactive engine. The profile controls how cell
// colors degrade on terminals without truecolor support.
func NewRainEngine(cfg config.RainConfig, profile termenv.Profile) *RainEngine {
	return &RainEngine{
		cfg:     cfg,
		profile: profile,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Activate resets all column state and clears the glyph/color grids for a
// new screensaver session at the given dimensions.
func (e *RainEngine) Activate(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	e.cols, e.rows = cols, rows

	e.columns = make([]Column, cols)
	for i := range e.columns {
		// stagger initial entry so the screen fills in organically
		e.columns[i] = Column{RespawnDelay: 1 + e.rng.Intn(e.cfg.MaxRespawnDelay)}
	}

	e.glyphs = make([][]int, cols)
	e.colors = make([][]cellColor, cols)
	for x := 0; x < cols; x++ {
		e.glyphs[x] = make([]int, rows)
		e.colors[x] = make([]cellColor, rows)
	}
	e.active = true
}

// Deactivate releases the animation buffers.
func (e *RainEngine) Deactivate() {
	e.columns = nil
	e.glyphs = nil
	e.colors = nil
	e.active = false
}

// IsActive reports whether a screensaver session is in progress.
func (e *RainEngine) IsActive() bool {
	return e.active
}

// Tick advances the simulation one frame. The palette is chosen once per
// tick from the overall severity and applied to every column.
func (e *RainEngine) Tick(sev status.Severity) {
	if !e.active {
		return
	}
	base := paletteFor(sev)

	for x := range e.columns {
		col := &e.columns[x]

		if !col.Active {
			col.RespawnDelay--
			if col.RespawnDelay <= 0 {
				e.spawn(col)
			}
		} else {
			col.Head += col.Speed
			if int(col.Head)-col.Trail > e.rows {
				// trailing edge left the screen
				col.Active = false
				col.RespawnDelay = 1 + e.rng.Intn(e.cfg.MaxRespawnDelay)
			}
		}

		e.tickColumn(x, col, base)
	}
}

// spawn reactivates a column with fresh randomized parameters. The head
// starts at or above the top edge so the stream falls into view.
func (e *RainEngine) spawn(col *Column) {
	col.Head = -float64(e.rng.Intn(e.rows))
	col.Speed = e.cfg.MinSpeed + e.rng.Float64()*(e.cfg.MaxSpeed-e.cfg.MinSpeed)
	col.Trail = e.cfg.MinTrail + e.rng.Intn(e.cfg.MaxTrail-e.cfg.MinTrail+1)
	col.Active = true
	col.RespawnDelay = 0
}

// tickColumn updates every cell in one column for this frame.
func (e *RainEngine) tickColumn(x int, col *Column, base cellColor) {
	head := int(col.Head)

	for y := 0; y < e.rows; y++ {
		if !col.Active {
			e.colors[x][y] = e.colors[x][y].decay()
			continue
		}

		dist := head - y
		switch {
		case dist == 0:
			// the head always gets a fresh glyph and the reserved color
			e.glyphs[x][y] = 1 + e.rng.Intn(len(glyphSet))
			e.colors[x][y] = headColor

		case dist >= 1 && dist <= nearHeadBand:
			if e.glyphs[x][y] == 0 || e.rng.Intn(flickerNear) == 0 {
				e.glyphs[x][y] = 1 + e.rng.Intn(len(glyphSet))
			}
			e.colors[x][y] = base

		case dist > nearHeadBand && dist < col.Trail:
			if e.glyphs[x][y] == 0 || e.rng.Intn(flickerTrail) == 0 {
				e.glyphs[x][y] = 1 + e.rng.Intn(len(glyphSet))
			}
			brightness := float64(col.Trail-dist) / float64(col.Trail)
			if brightness < minBrightness {
				brightness = minBrightness
			}
			e.colors[x][y] = base.scale(brightness)

		default:
			// outside the live trail: fade whatever was left behind
			e.colors[x][y] = e.colors[x][y].decay()
		}
	}
}

// FrameLines renders the current grid, one string per screen row. Only
// lit cells with an assigned glyph are painted; everything else is
// background. Rendering goes row by row so no full-frame buffer beyond
// the returned strings is needed.
func (e *RainEngine) FrameLines() []string {
	if !e.active {
		return nil
	}

	lines := make([]string, e.rows)
	var b strings.Builder
	for y := 0; y < e.rows; y++ {
		b.Reset()
		current := cellColor{}
		for x := 0; x < e.cols; x++ {
			c := e.colors[x][y]
			g := e.glyphs[x][y]
			if !c.lit() || g == 0 {
				b.WriteByte(' ')
				continue
			}
			if c != current {
				b.WriteString(termenv.CSI)
				b.WriteString(e.profile.Color(hexColor(c)).Sequence(false))
				b.WriteByte('m')
				current = c
			}
			b.WriteRune(glyphSet[g-1])
		}
		if current.lit() {
			b.WriteString(termenv.CSI + termenv.ResetSeq + "m")
		}
		lines[y] = b.String()
	}
	return lines
}

func hexColor(c cellColor) string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}
