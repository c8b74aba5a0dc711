// SPDX-License-Identifier: GPL-2.0-or-later

package sol

import (
	"bytes"
	"encoding/binary"
)

// solWriter assembles little-endian test input.
type solWriter struct {
	bytes.Buffer
}

func (w *solWriter) i32(vs ...int32) *solWriter {
	for _, v := range vs {
		binary.Write(&w.Buffer, binary.LittleEndian, v)
	}
	return w
}

func (w *solWriter) f32(vs ...float32) *solWriter {
	for _, v := range vs {
		binary.Write(&w.Buffer, binary.LittleEndian, v)
	}
	return w
}

func (w *solWriter) raw(b []byte) *solWriter {
	w.Write(b)
	return w
}

// name64 returns s in a NUL padded 64 byte field.
func name64(s string) []byte {
	b := make([]byte, 64)
	copy(b, s)
	return b
}

func solFile(version int32, c Counts, body []byte) []byte {
	w := &solWriter{}
	w.i32(Magic, version)
	binary.Write(&w.Buffer, binary.LittleEndian, c)
	w.raw(body)
	return w.Bytes()
}

const sampleBlob = "title\x00Sample\x00message\x00a\\b\x00"

// sampleFile holds one or more records of every kind and passes Validate.
func sampleFile(version int32) []byte {
	withPaths := version >= pathPairVersion
	pair := func(w *solWriter, p0, p1 int32) {
		if withPaths {
			w.i32(p0, p1)
		}
	}
	c := Counts{
		Bytes: int32(len(sampleBlob)), Dicts: 2, Materials: 1, Vertices: 3,
		Edges: 1, Sides: 1, TexCoords: 1, Offsets: 3, Geoms: 1, Lumps: 1,
		Nodes: 1, Paths: 2, Bodies: 1, Items: 1, Goals: 1, Jumps: 1,
		Switches: 1, Billboards: 1, Balls: 1, Views: 1, Indices: 3,
	}
	w := &solWriter{}
	w.raw([]byte(sampleBlob))
	w.i32(0, 6, 13, 21)
	// material
	w.f32(1, 1, 1, 1, 0.2, 0.2, 0.2, 1, 0, 0, 0, 1, 0, 0, 0, 1, 10)
	w.i32(int32(MaterialAlphaTest | MaterialLit))
	w.raw(name64("mtrl/metal"))
	w.i32(3).f32(0.5)
	// vertices
	w.f32(0, 0, 0, 1, 0, 0, 0, 1, 0)
	// edge
	w.i32(0, 1)
	// side
	w.f32(0, 0, 1, 0)
	// texcoord
	w.f32(0.5, 0.5)
	// offsets
	w.i32(0, 0, 0, 0, 0, 1, 0, 0, 2)
	// geom
	w.i32(0, 0, 1, 2)
	// lump
	w.i32(int32(LumpDetail), 0, 3, 0, 1, 0, 1, 0, 1)
	// node
	w.i32(-1, -1, -1, 0, 1)
	// oriented path
	w.f32(1, 2, 3, 1).i32(1, 1, 1, int32(PathOriented))
	w.f32(0.5, 0.1, 0.2, 0.3)
	// parented path
	w.f32(4, 5, 6, 2).i32(0, 1, 0, int32(PathParented))
	w.i32(0, -1)
	// body
	w.i32(0, -1, 0, 0, 1, 0, 1)
	// item
	w.f32(1, 1, 1).i32(int32(ItemCoin), 5)
	pair(w, 0, 1)
	// goal
	w.f32(2, 2, 2, 0.75)
	pair(w, 1, 0)
	// jump
	w.f32(3, 3, 3, 9, 9, 9, 0.5)
	pair(w, 0, 0)
	// switch, second timer and state floats are padding
	w.f32(4, 4, 4, 1.5).i32(0).f32(2, 99, 1, 99).i32(1)
	pair(w, -1, -1)
	// billboard
	w.i32(int32(BillboardFlat), 0).f32(7, 8)
	w.f32(1, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 5, 5)
	pair(w, 1, 1)
	// ball
	w.f32(0, 0, 0.25, 0.25)
	// view
	w.f32(0, -5, 5, 0, 0, 0)
	// indices
	w.i32(0, 1, 2)
	return solFile(version, c, w.Bytes())
}
