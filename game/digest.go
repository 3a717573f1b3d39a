package game

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/invaders/engine"
)

// Digest hashes the simulation state in entity-id order
// Equal seeds and input traces produce equal digests; the session id is excluded
func (g *Game) Digest() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return WorldDigest(g.world)
}

// WorldDigest hashes entities, components and resources of w
func WorldDigest(w *engine.World) uint64 {
	c := &w.Components
	var d digester

	for _, e := range w.Entities() {
		d.uint(uint64(e))
		if t, ok := c.Transform.Get(e); ok {
			d.tag('T')
			d.float(t.X)
			d.float(t.Y)
		}
		if s, ok := c.Size.Get(e); ok {
			d.tag('S')
			d.float(s.W)
			d.float(s.H)
		}
		if en, ok := c.Enemy.Get(e); ok {
			d.tag('E')
			d.uint(uint64(en.Kind))
			d.int(en.Points)
		}
		if p, ok := c.EnemyPosition.Get(e); ok {
			d.tag('P')
			d.int(p.Col)
			d.int(p.Row)
		}
		if u, ok := c.Ufo.Get(e); ok {
			d.tag('U')
			d.float(u.Direction)
		}
		if hp, ok := c.Hitpoints.Get(e); ok {
			d.tag('H')
			d.int(hp.Value)
		}
		if tm, ok := c.UfoTimer.Get(e); ok {
			d.tag('R')
			d.int(int(tm.Elapsed))
		}
		if c.Cannon.Has(e) {
			d.tag('C')
		}
		if c.Laser.Has(e) {
			d.tag('L')
		}
		if c.Bomb.Has(e) {
			d.tag('B')
		}
		if txt, ok := c.Text.Get(e); ok {
			d.tag('X')
			d.buf = append(d.buf, txt.Value...)
		}
	}

	r := w.Resources
	d.tag('#')
	d.int(r.Player.Lives)
	d.int(r.Player.Score)
	d.int(r.Level.Value)
	d.int(r.Difficulty.Value)
	d.int(r.Difficulty.Kills)
	d.float(r.Movement.Direction)
	d.float(r.Movement.Speed)
	if r.Movement.Advance {
		d.tag('A')
	}
	d.int(r.Notes.Value)
	d.int(int(r.State.State))
	d.int(int(r.Time.FrameNumber))
	d.int(int(r.Time.FixedTicks))

	return xxhash.Sum64(d.buf)
}

type digester struct {
	buf []byte
}

func (d *digester) tag(b byte) { d.buf = append(d.buf, b) }
func (d *digester) uint(v uint64) { d.buf = binary.LittleEndian.AppendUint64(d.buf, v) }
func (d *digester) int(v int) { d.uint(uint64(int64(v))) }
func (d *digester) float(v float64) { d.uint(math.Float64bits(v)) }
