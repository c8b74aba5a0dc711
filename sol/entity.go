// SPDX-License-Identifier: GPL-2.0-or-later

package sol

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
)

// readMovers reads n records of type T, each followed by a path pair on
// files of version 9 and later. Older files get -1/-1 pairs.
func readMovers[T any](d *decoder, n int32) ([]T, []PathPair, error) {
	withPaths := d.version >= pathPairVersion
	var zero T
	size := binary.Size(zero)
	if withPaths {
		size += binary.Size(pathPairRecord{})
	}
	if err := d.reserve(n, size); err != nil {
		return nil, nil, err
	}
	rs := make([]T, n)
	ps := make([]PathPair, n)
	for i := range rs {
		if err := d.c.Read(&rs[i]); err != nil {
			return nil, nil, d.truncated(err)
		}
		if !withPaths {
			ps[i] = noPathPair()
			continue
		}
		var pp pathPairRecord
		if err := d.c.Read(&pp); err != nil {
			return nil, nil, d.truncated(err)
		}
		ps[i] = newPathPair(pp)
	}
	return rs, ps, nil
}

func (d *decoder) loadItems(n int32) ([]Item, error) {
	raw, ps, err := readMovers[itemRecord](d, n)
	if err != nil {
		return nil, err
	}
	hs := make([]Item, len(raw))
	for i, r := range raw {
		hs[i] = Item{
			Position: mgl32.Vec3(r.Position),
			Type:     ItemType(r.Type),
			Value:    r.Value,
			Mover:    ps[i],
		}
	}
	return hs, nil
}

func (d *decoder) loadGoals(n int32) ([]Goal, error) {
	raw, ps, err := readMovers[goalRecord](d, n)
	if err != nil {
		return nil, err
	}
	zs := make([]Goal, len(raw))
	for i, r := range raw {
		zs[i] = Goal{
			Position: mgl32.Vec3(r.Position),
			Radius:   r.Radius,
			Mover:    ps[i],
		}
	}
	return zs, nil
}

func (d *decoder) loadJumps(n int32) ([]Jump, error) {
	raw, ps, err := readMovers[jumpRecord](d, n)
	if err != nil {
		return nil, err
	}
	js := make([]Jump, len(raw))
	for i, r := range raw {
		js[i] = Jump{
			Position: mgl32.Vec3(r.Position),
			Target:   mgl32.Vec3(r.Target),
			Radius:   r.Radius,
			Mover:    ps[i],
		}
	}
	return js, nil
}

func (d *decoder) loadSwitches(n int32) ([]Switch, error) {
	raw, ps, err := readMovers[switchRecord](d, n)
	if err != nil {
		return nil, err
	}
	xs := make([]Switch, len(raw))
	for i, r := range raw {
		xs[i] = Switch{
			Position: mgl32.Vec3(r.Position),
			Radius:   r.Radius,
			PI:       r.PI,
			Timer:    r.Timer[0],
			State:    r.State[0],
			Hidden:   r.Hidden,
			Mover:    ps[i],
		}
	}
	return xs, nil
}

func (d *decoder) loadBillboards(n int32) ([]Billboard, error) {
	raw, ps, err := readMovers[billboardRecord](d, n)
	if err != nil {
		return nil, err
	}
	rs := make([]Billboard, len(raw))
	for i, r := range raw {
		rs[i] = Billboard{
			Flags:    BillboardFlags(r.Flags),
			MI:       r.MI,
			Time:     r.Time,
			Dist:     r.Dist,
			Width:    mgl32.Vec3(r.Width),
			Height:   mgl32.Vec3(r.Height),
			RotX:     mgl32.Vec3(r.RotX),
			RotY:     mgl32.Vec3(r.RotY),
			RotZ:     mgl32.Vec3(r.RotZ),
			Position: mgl32.Vec3(r.Position),
			Mover:    ps[i],
		}
	}
	return rs, nil
}
