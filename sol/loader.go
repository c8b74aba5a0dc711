// SPDX-License-Identifier: GPL-2.0-or-later

// Package sol decodes Neverball SOL level files.
package sol

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"gosol/reader"
)

// Cursor is the sequential little-endian input the decoder consumes.
type Cursor interface {
	ReadInt32() (int32, error)
	ReadFloat32() (float32, error)
	ReadBytes(n int) ([]byte, error)
	// Read decodes fixed-size data as encoding/binary.Read does.
	Read(data interface{}) error
	Offset() int64
	Len() int
}

type decoder struct {
	c       Cursor
	version int32
	log     *slog.Logger
	text    *encoding.Decoder
}

// Decode decodes a complete SOL file. On error no Document is returned.
func Decode(buf []byte, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	d := &decoder{
		c:    reader.New(buf),
		log:  o.log,
		text: unicode.UTF8.NewDecoder(),
	}
	doc, err := d.decode()
	if err != nil {
		return nil, err
	}
	if o.strict {
		if err := doc.Validate(); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (d *decoder) decode() (*Document, error) {
	c, err := d.readHeader()
	if err != nil {
		return nil, err
	}
	d.log.Debug("sol header", "version", d.version, "counts", c)

	doc := &Document{Version: d.version}

	if doc.Bytes, err = d.c.ReadBytes(int(c.Bytes)); err != nil {
		return nil, errors.Wrap(d.truncated(err), "read byte blob")
	}
	if doc.Dict, err = d.loadDict(c.Dicts, doc.Bytes); err != nil {
		return nil, errors.Wrap(err, "read dictionary")
	}
	if doc.Materials, err = d.loadMaterials(c.Materials); err != nil {
		return nil, errors.Wrap(err, "read materials")
	}
	if doc.Vertices, err = d.loadVertices(c.Vertices); err != nil {
		return nil, errors.Wrap(err, "read vertices")
	}
	if doc.Edges, err = d.loadEdges(c.Edges); err != nil {
		return nil, errors.Wrap(err, "read edges")
	}
	if doc.Sides, err = d.loadSides(c.Sides); err != nil {
		return nil, errors.Wrap(err, "read sides")
	}
	if doc.TexCoords, err = d.loadTexCoords(c.TexCoords); err != nil {
		return nil, errors.Wrap(err, "read texcoords")
	}
	if doc.Offsets, err = d.loadOffsets(c.Offsets); err != nil {
		return nil, errors.Wrap(err, "read offsets")
	}
	if doc.Geoms, err = d.loadGeoms(c.Geoms); err != nil {
		return nil, errors.Wrap(err, "read geoms")
	}
	if doc.Lumps, err = d.loadLumps(c.Lumps); err != nil {
		return nil, errors.Wrap(err, "read lumps")
	}
	if doc.Nodes, err = d.loadNodes(c.Nodes); err != nil {
		return nil, errors.Wrap(err, "read nodes")
	}
	if doc.Paths, err = d.loadPaths(c.Paths); err != nil {
		return nil, errors.Wrap(err, "read paths")
	}
	if doc.Bodies, err = d.loadBodies(c.Bodies); err != nil {
		return nil, errors.Wrap(err, "read bodies")
	}
	if doc.Items, err = d.loadItems(c.Items); err != nil {
		return nil, errors.Wrap(err, "read items")
	}
	if doc.Goals, err = d.loadGoals(c.Goals); err != nil {
		return nil, errors.Wrap(err, "read goals")
	}
	if doc.Jumps, err = d.loadJumps(c.Jumps); err != nil {
		return nil, errors.Wrap(err, "read jumps")
	}
	if doc.Switches, err = d.loadSwitches(c.Switches); err != nil {
		return nil, errors.Wrap(err, "read switches")
	}
	if doc.Billboards, err = d.loadBillboards(c.Billboards); err != nil {
		return nil, errors.Wrap(err, "read billboards")
	}
	if doc.Balls, err = d.loadBalls(c.Balls); err != nil {
		return nil, errors.Wrap(err, "read balls")
	}
	if doc.Views, err = d.loadViews(c.Views); err != nil {
		return nil, errors.Wrap(err, "read views")
	}
	if doc.Indices, err = readRecords[int32](d, c.Indices); err != nil {
		return nil, errors.Wrap(err, "read indices")
	}

	if doc.Version <= unlitVersion {
		doc.Materials = relight(doc.Materials, doc.Billboards)
	}

	if n := d.c.Len(); n != 0 {
		d.log.Debug("sol trailing bytes ignored", "count", n)
	}
	return doc, nil
}

func (d *decoder) formatError(reason string, err error) *FormatError {
	return &FormatError{Offset: d.c.Offset(), Reason: reason, Err: err}
}

func (d *decoder) truncated(err error) *FormatError {
	return d.formatError("truncated input", err)
}

func (d *decoder) readHeader() (Counts, error) {
	var c Counts
	magic, err := d.c.ReadInt32()
	if err != nil {
		return c, d.formatError("missing magic", err)
	}
	if magic != Magic {
		return c, &FormatError{Offset: 0, Reason: fmt.Sprintf("bad magic %#08x", uint32(magic))}
	}
	d.version, err = d.c.ReadInt32()
	if err != nil {
		return c, d.formatError("missing version", err)
	}
	if !Supported(d.version) {
		return c, &UnsupportedVersionError{Version: d.version}
	}
	if err := d.c.Read(&c); err != nil {
		return c, d.formatError("truncated header", err)
	}
	if err := c.check(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Counts) check() error {
	for _, f := range []struct {
		name string
		n    int32
	}{
		{"byte", c.Bytes}, {"dict", c.Dicts}, {"material", c.Materials},
		{"vertex", c.Vertices}, {"edge", c.Edges}, {"side", c.Sides},
		{"texcoord", c.TexCoords}, {"offset", c.Offsets}, {"geom", c.Geoms},
		{"lump", c.Lumps}, {"node", c.Nodes}, {"path", c.Paths},
		{"body", c.Bodies}, {"item", c.Items}, {"goal", c.Goals},
		{"jump", c.Jumps}, {"switch", c.Switches}, {"billboard", c.Billboards},
		{"ball", c.Balls}, {"view", c.Views}, {"index", c.Indices},
	} {
		if f.n < 0 {
			return &FormatError{Offset: 8, Reason: fmt.Sprintf("negative %s count %d", f.name, f.n)}
		}
	}
	return nil
}

// reserve fails unless n records of at least size bytes each fit into the
// remaining input. This keeps bogus counts from allocating.
func (d *decoder) reserve(n int32, size int) error {
	need := int64(n) * int64(size)
	if have := int64(d.c.Len()); need > have {
		return d.formatError(fmt.Sprintf("need %d bytes for %d records, have %d", need, n, have), nil)
	}
	return nil
}

func readRecords[T any](d *decoder, n int32) ([]T, error) {
	var zero T
	if err := d.reserve(n, binary.Size(zero)); err != nil {
		return nil, err
	}
	v := make([]T, n)
	if err := d.c.Read(v); err != nil {
		return nil, d.truncated(err)
	}
	return v, nil
}

// cString cuts b at its first NUL byte.
func (d *decoder) cString(b []byte) (string, error) {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	s, err := d.text.Bytes(b)
	if err != nil {
		return "", d.formatError("bad string", err)
	}
	return string(s), nil
}

func (d *decoder) loadMaterials(n int32) ([]Material, error) {
	if err := d.reserve(n, binary.Size(materialRecord{})); err != nil {
		return nil, err
	}
	ms := make([]Material, n)
	for i := range ms {
		var r materialRecord
		if err := d.c.Read(&r); err != nil {
			return nil, d.truncated(err)
		}
		tex, err := d.cString(r.Texture[:])
		if err != nil {
			return nil, err
		}
		m := Material{
			Diffuse:   mgl32.Vec4(r.Diffuse),
			Ambient:   mgl32.Vec4(r.Ambient),
			Specular:  mgl32.Vec4(r.Specular),
			Emission:  mgl32.Vec4(r.Emission),
			Shininess: r.Shininess,
			Flags:     MaterialFlags(r.Flags),
			Texture:   tex,
		}
		if m.Flags.Has(MaterialAlphaTest) {
			var a alphaRecord
			if err := d.c.Read(&a); err != nil {
				return nil, d.truncated(err)
			}
			m.Alpha = &AlphaTest{Func: a.Func, Ref: a.Ref}
		}
		ms[i] = m
	}
	return ms, nil
}

func (d *decoder) loadVertices(n int32) ([]Vertex, error) {
	raw, err := readRecords[vertexRecord](d, n)
	if err != nil {
		return nil, err
	}
	vs := make([]Vertex, len(raw))
	for i, r := range raw {
		vs[i] = Vertex{Position: mgl32.Vec3(r.Position)}
	}
	return vs, nil
}

func (d *decoder) loadEdges(n int32) ([]Edge, error) {
	raw, err := readRecords[edgeRecord](d, n)
	if err != nil {
		return nil, err
	}
	es := make([]Edge, len(raw))
	for i, r := range raw {
		es[i] = Edge(r)
	}
	return es, nil
}

func (d *decoder) loadSides(n int32) ([]Side, error) {
	raw, err := readRecords[sideRecord](d, n)
	if err != nil {
		return nil, err
	}
	ss := make([]Side, len(raw))
	for i, r := range raw {
		ss[i] = Side{Normal: mgl32.Vec3(r.Normal), Distance: r.Distance}
	}
	return ss, nil
}

func (d *decoder) loadTexCoords(n int32) ([]TexCoord, error) {
	raw, err := readRecords[texCoordRecord](d, n)
	if err != nil {
		return nil, err
	}
	ts := make([]TexCoord, len(raw))
	for i, r := range raw {
		ts[i] = TexCoord{UV: mgl32.Vec2(r.UV)}
	}
	return ts, nil
}

func (d *decoder) loadOffsets(n int32) ([]Offset, error) {
	raw, err := readRecords[offsetRecord](d, n)
	if err != nil {
		return nil, err
	}
	offs := make([]Offset, len(raw))
	for i, r := range raw {
		offs[i] = Offset(r)
	}
	return offs, nil
}

func (d *decoder) loadGeoms(n int32) ([]Geom, error) {
	raw, err := readRecords[geomRecord](d, n)
	if err != nil {
		return nil, err
	}
	gs := make([]Geom, len(raw))
	for i, r := range raw {
		gs[i] = Geom(r)
	}
	return gs, nil
}

func (d *decoder) loadLumps(n int32) ([]Lump, error) {
	raw, err := readRecords[lumpRecord](d, n)
	if err != nil {
		return nil, err
	}
	ls := make([]Lump, len(raw))
	for i, r := range raw {
		ls[i] = Lump{
			Flags: LumpFlags(r.Flags),
			V0:    r.V0,
			VC:    r.VC,
			E0:    r.E0,
			EC:    r.EC,
			G0:    r.G0,
			GC:    r.GC,
			S0:    r.S0,
			SC:    r.SC,
		}
	}
	return ls, nil
}

func (d *decoder) loadNodes(n int32) ([]Node, error) {
	raw, err := readRecords[nodeRecord](d, n)
	if err != nil {
		return nil, err
	}
	ns := make([]Node, len(raw))
	for i, r := range raw {
		ns[i] = Node(r)
	}
	return ns, nil
}

func (d *decoder) loadBodies(n int32) ([]Body, error) {
	raw, err := readRecords[bodyRecord](d, n)
	if err != nil {
		return nil, err
	}
	bs := make([]Body, len(raw))
	for i, r := range raw {
		b := Body(r)
		if b.PJ < 0 {
			b.PJ = b.PI
		}
		bs[i] = b
	}
	return bs, nil
}

func (d *decoder) loadBalls(n int32) ([]Ball, error) {
	raw, err := readRecords[ballRecord](d, n)
	if err != nil {
		return nil, err
	}
	bs := make([]Ball, len(raw))
	for i, r := range raw {
		bs[i] = Ball{Position: mgl32.Vec3(r.Position), Radius: r.Radius}
	}
	return bs, nil
}

func (d *decoder) loadViews(n int32) ([]View, error) {
	raw, err := readRecords[viewRecord](d, n)
	if err != nil {
		return nil, err
	}
	vs := make([]View, len(raw))
	for i, r := range raw {
		vs[i] = View{Position: mgl32.Vec3(r.Position), Target: mgl32.Vec3(r.Target)}
	}
	return vs, nil
}
