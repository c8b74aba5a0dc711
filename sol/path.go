// SPDX-License-Identifier: GPL-2.0-or-later

package sol

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"

	"gosol/math/vec"
)

func (d *decoder) loadPaths(n int32) ([]Path, error) {
	if err := d.reserve(n, binary.Size(pathRecord{})); err != nil {
		return nil, err
	}
	ps := make([]Path, n)
	for i := range ps {
		var r pathRecord
		if err := d.c.Read(&r); err != nil {
			return nil, d.truncated(err)
		}
		p := Path{
			Position:    mgl32.Vec3(r.Position),
			Time:        r.Time,
			PI:          r.PI,
			Enabled:     r.Enabled,
			Smooth:      r.Smooth,
			Flags:       PathFlags(r.Flags),
			Orientation: vec.Identity(),
			Parent:      noPathPair(),
		}
		if p.Flags.Has(PathOriented) {
			var e [4]float32 // W X Y Z
			if err := d.c.Read(&e); err != nil {
				return nil, d.truncated(err)
			}
			p.Orientation = vec.FromWXYZ(e)
		}
		if p.Flags.Has(PathParented) {
			var pp pathPairRecord
			if err := d.c.Read(&pp); err != nil {
				return nil, d.truncated(err)
			}
			if pp.P1 < 0 {
				pp.P1 = pp.P0
			}
			p.Parent = newPathPair(pp)
		}
		ps[i] = p
	}
	linkPaths(ps)
	return ps, nil
}

// linkPaths sets Next from PI. A path may link to itself; an index outside
// the slice leaves it without a successor.
func linkPaths(ps []Path) {
	for i := range ps {
		if pi := ps[i].PI; pi >= 0 && int(pi) < len(ps) {
			ps[i].Next = pi
		} else {
			ps[i].Next = -1
		}
	}
}
