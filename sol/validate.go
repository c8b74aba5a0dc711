// SPDX-License-Identifier: GPL-2.0-or-later

package sol

import (
	"gosol/math/vec"
)

type checker struct {
	err error
}

func (c *checker) index(kind string, rec int, field string, idx int32, n int) {
	if c.err == nil && (idx < 0 || int(idx) >= n) {
		c.err = &IndexError{Kind: kind, Record: rec, Field: field, Index: idx, Len: n}
	}
}

// optional accepts -1 as "no reference".
func (c *checker) optional(kind string, rec int, field string, idx int32, n int) {
	if idx != -1 {
		c.index(kind, rec, field, idx, n)
	}
}

// span checks the range [first, first+count).
func (c *checker) span(kind string, rec int, field string, first, count int32, n int) {
	if c.err != nil || count == 0 {
		return
	}
	if count < 0 {
		c.err = &IndexError{Kind: kind, Record: rec, Field: field + " count", Index: count, Len: n}
		return
	}
	c.index(kind, rec, field, first, n)
	c.index(kind, rec, field+" end", first+count-1, n)
}

func (c *checker) pair(kind string, rec int, p PathPair, n int) {
	if p.Present() {
		c.optional(kind, rec, "p0", p.P0, n)
		c.optional(kind, rec, "p1", p.P1, n)
	}
}

func (c *checker) finite(kind string, rec int, field string, vs ...float32) {
	if c.err == nil && !vec.Finite(vs...) {
		c.err = &ValueError{Kind: kind, Record: rec, Field: field}
	}
}

// Validate checks that all cross references resolve and that geometry is
// made of finite numbers. Decode does not call it unless WithStrict is
// given.
func (d *Document) Validate() error {
	c := &checker{}
	nv, ne, ns := len(d.Vertices), len(d.Edges), len(d.Sides)
	nm, no, ng := len(d.Materials), len(d.Offsets), len(d.Geoms)
	nl, nn, np := len(d.Lumps), len(d.Nodes), len(d.Paths)

	for i, v := range d.Vertices {
		c.finite("vertex", i, "p", v.Position[:]...)
	}
	for i, e := range d.Edges {
		c.index("edge", i, "vi", e.VI, nv)
		c.index("edge", i, "vj", e.VJ, nv)
	}
	for i, s := range d.Sides {
		c.finite("side", i, "n", s.Normal[:]...)
		c.finite("side", i, "d", s.Distance)
		if c.err == nil && vec.Length(s.Normal) == 0 {
			c.err = &ValueError{Kind: "side", Record: i, Field: "n"}
		}
	}
	for i, o := range d.Offsets {
		c.index("offset", i, "ti", o.TI, len(d.TexCoords))
		c.index("offset", i, "si", o.SI, ns)
		c.index("offset", i, "vi", o.VI, nv)
	}
	for i, g := range d.Geoms {
		c.index("geom", i, "mi", g.MI, nm)
		c.index("geom", i, "oi", g.OI, no)
		c.index("geom", i, "oj", g.OJ, no)
		c.index("geom", i, "ok", g.OK, no)
	}
	for i, l := range d.Lumps {
		c.span("lump", i, "v0", l.V0, l.VC, len(d.Indices))
		c.span("lump", i, "e0", l.E0, l.EC, len(d.Indices))
		c.span("lump", i, "g0", l.G0, l.GC, len(d.Indices))
		c.span("lump", i, "s0", l.S0, l.SC, len(d.Indices))
	}
	for i, n := range d.Nodes {
		c.optional("node", i, "si", n.SI, ns)
		c.optional("node", i, "ni", n.NI, nn)
		c.optional("node", i, "nj", n.NJ, nn)
		c.span("node", i, "l0", n.L0, n.LC, nl)
	}
	for i, p := range d.Paths {
		c.finite("path", i, "p", p.Position[:]...)
		c.finite("path", i, "e", p.Orientation[:]...)
		c.index("path", i, "pi", p.PI, np)
		c.pair("path", i, p.Parent, np)
	}
	for i, b := range d.Bodies {
		c.optional("body", i, "pi", b.PI, np)
		c.optional("body", i, "pj", b.PJ, np)
		c.optional("body", i, "ni", b.NI, nn)
		c.span("body", i, "l0", b.L0, b.LC, nl)
		c.span("body", i, "g0", b.G0, b.GC, len(d.Indices))
	}
	for i, h := range d.Items {
		c.pair("item", i, h.Mover, np)
	}
	for i, z := range d.Goals {
		c.pair("goal", i, z.Mover, np)
	}
	for i, j := range d.Jumps {
		c.pair("jump", i, j.Mover, np)
	}
	for i, x := range d.Switches {
		c.optional("switch", i, "pi", x.PI, np)
		c.pair("switch", i, x.Mover, np)
	}
	for i, r := range d.Billboards {
		c.index("billboard", i, "mi", r.MI, nm)
		c.pair("billboard", i, r.Mover, np)
	}
	for i := range d.Indices {
		c.index("index", i, "value", d.Indices[i], max(ng, nv, ne, ns))
	}
	return c.err
}
