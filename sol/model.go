// SPDX-License-Identifier: GPL-2.0-or-later

package sol

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"gosol/math/vec"
)

const (
	Magic int32 = 0x4c4f53af

	minVersion = 7
	maxVersion = 10

	// entities carry a path pair from this version on
	pathPairVersion = 9
	// files up to this version have no lit flag on materials
	unlitVersion = 7
)

// Supported reports whether version can be decoded.
func Supported(version int32) bool {
	return version >= minVersion && version <= maxVersion
}

type MaterialFlags uint32

const (
	MaterialClampT      MaterialFlags = 1 << iota
	MaterialClampS                    // 0x0002
	MaterialAdditive                  // 0x0004
	MaterialTwoSided                  // 0x0008
	MaterialEnvironment               // 0x0010
	MaterialDecal                     // 0x0020
	MaterialShadowed                  // 0x0040
	MaterialTransparent               // 0x0080
	MaterialReflective                // 0x0100
	MaterialAlphaTest                 // 0x0200
	MaterialParticle                  // 0x0400
	MaterialLit                       // 0x0800
)

func (f MaterialFlags) Has(o MaterialFlags) bool {
	return f&o == o
}

type BillboardFlags uint32

const (
	BillboardEdge BillboardFlags = 1 << iota
	BillboardFlat
	BillboardNoFace
)

func (f BillboardFlags) Has(o BillboardFlags) bool {
	return f&o == o
}

type LumpFlags uint32

const (
	LumpDetail LumpFlags = 1 << iota
)

func (f LumpFlags) Has(o LumpFlags) bool {
	return f&o == o
}

type PathFlags uint32

const (
	PathOriented PathFlags = 1 << iota
	PathParented
)

func (f PathFlags) Has(o PathFlags) bool {
	return f&o == o
}

type ItemType int32

const (
	ItemNone ItemType = iota
	ItemCoin
	ItemGrow
	ItemShrink
)

func (t ItemType) String() string {
	switch t {
	case ItemNone:
		return "none"
	case ItemCoin:
		return "coin"
	case ItemGrow:
		return "grow"
	case ItemShrink:
		return "shrink"
	default:
		return fmt.Sprintf("ItemType(%d)", int32(t))
	}
}

// PathPair references up to two paths by index. Absent pairs hold -1/-1.
type PathPair struct {
	P0      int32
	P1      int32
	present bool
}

func noPathPair() PathPair {
	return PathPair{P0: -1, P1: -1}
}

func newPathPair(r pathPairRecord) PathPair {
	return PathPair{P0: r.P0, P1: r.P1, present: true}
}

// Present reports whether the pair was stored in the file.
func (p PathPair) Present() bool {
	return p.present
}

type AlphaTest struct {
	Func int32
	Ref  float32
}

type Material struct {
	Diffuse   mgl32.Vec4
	Ambient   mgl32.Vec4
	Specular  mgl32.Vec4
	Emission  mgl32.Vec4
	Shininess float32
	Flags     MaterialFlags
	Texture   string
	Alpha     *AlphaTest // nil unless Flags has MaterialAlphaTest
}

func (m *Material) AlphaFunc() int32 {
	if m.Alpha == nil {
		return 0
	}
	return m.Alpha.Func
}

func (m *Material) AlphaRef() float32 {
	if m.Alpha == nil {
		return 0
	}
	return m.Alpha.Ref
}

type Vertex struct {
	Position mgl32.Vec3
}

type Edge struct {
	VI int32
	VJ int32
}

// Side is a plane.
type Side struct {
	Normal   mgl32.Vec3
	Distance float32
}

type TexCoord struct {
	UV mgl32.Vec2
}

// Offset binds texcoord, side and vertex of one triangle corner.
type Offset struct {
	TI int32
	SI int32
	VI int32
}

// Geom is a triangle.
type Geom struct {
	MI int32
	OI int32
	OJ int32
	OK int32
}

// Lump is a leaf of the BSP. Each X0/XC pair is a (start, count) range.
type Lump struct {
	Flags LumpFlags
	V0    int32
	VC    int32
	E0    int32
	EC    int32
	G0    int32
	GC    int32
	S0    int32
	SC    int32
}

type Node struct {
	SI int32 // splitting side
	NI int32 // front child
	NJ int32 // back child
	L0 int32
	LC int32
}

type Path struct {
	Position    mgl32.Vec3
	Time        float32
	PI          int32
	Enabled     int32
	Smooth      int32
	Flags       PathFlags
	Orientation vec.Quat // identity unless PathOriented
	Parent      PathPair // present only with PathParented
	Next        int32    // index into Document.Paths or -1
}

// HasNext reports whether the path links to another (or itself).
func (p *Path) HasNext() bool {
	return p.Next >= 0
}

type Body struct {
	PI int32
	PJ int32
	NI int32
	L0 int32
	LC int32
	G0 int32
	GC int32
}

type Item struct {
	Position mgl32.Vec3
	Type     ItemType
	Value    int32
	Mover    PathPair
}

type Goal struct {
	Position mgl32.Vec3
	Radius   float32
	Mover    PathPair
}

type Jump struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Radius   float32
	Mover    PathPair
}

type Switch struct {
	Position mgl32.Vec3
	Radius   float32
	PI       int32
	Timer    float32
	State    float32
	Hidden   int32
	Mover    PathPair
}

type Billboard struct {
	Flags    BillboardFlags
	MI       int32
	Time     float32
	Dist     float32
	Width    mgl32.Vec3
	Height   mgl32.Vec3
	RotX     mgl32.Vec3
	RotY     mgl32.Vec3
	RotZ     mgl32.Vec3
	Position mgl32.Vec3
	Mover    PathPair
}

type Ball struct {
	Position mgl32.Vec3
	Radius   float32
}

type View struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// Counts holds the record counts in the order they appear in the header.
type Counts struct {
	Bytes      int32
	Dicts      int32
	Materials  int32
	Vertices   int32
	Edges      int32
	Sides      int32
	TexCoords  int32
	Offsets    int32
	Geoms      int32
	Lumps      int32
	Nodes      int32
	Paths      int32
	Bodies     int32
	Items      int32
	Goals      int32
	Jumps      int32
	Switches   int32
	Billboards int32
	Balls      int32
	Views      int32
	Indices    int32
}

type Document struct {
	Version int32

	Bytes []byte
	Dict  map[string]string

	Materials  []Material
	Vertices   []Vertex
	Edges      []Edge
	Sides      []Side
	TexCoords  []TexCoord
	Offsets    []Offset
	Geoms      []Geom
	Lumps      []Lump
	Nodes      []Node
	Paths      []Path
	Bodies     []Body
	Items      []Item
	Goals      []Goal
	Jumps      []Jump
	Switches   []Switch
	Billboards []Billboard
	Balls      []Ball
	Views      []View
	Indices    []int32
}

// Message returns the level message with newlines restored.
func (d *Document) Message() string {
	return d.Dict["message"]
}

// NextPath returns the index of the path following path i.
func (d *Document) NextPath(i int) (int, bool) {
	if i < 0 || i >= len(d.Paths) || !d.Paths[i].HasNext() {
		return -1, false
	}
	return int(d.Paths[i].Next), true
}

// Counts returns the number of decoded records per kind. Dicts counts
// distinct keys.
func (d *Document) Counts() Counts {
	return Counts{
		Bytes:      int32(len(d.Bytes)),
		Dicts:      int32(len(d.Dict)),
		Materials:  int32(len(d.Materials)),
		Vertices:   int32(len(d.Vertices)),
		Edges:      int32(len(d.Edges)),
		Sides:      int32(len(d.Sides)),
		TexCoords:  int32(len(d.TexCoords)),
		Offsets:    int32(len(d.Offsets)),
		Geoms:      int32(len(d.Geoms)),
		Lumps:      int32(len(d.Lumps)),
		Nodes:      int32(len(d.Nodes)),
		Paths:      int32(len(d.Paths)),
		Bodies:     int32(len(d.Bodies)),
		Items:      int32(len(d.Items)),
		Goals:      int32(len(d.Goals)),
		Jumps:      int32(len(d.Jumps)),
		Switches:   int32(len(d.Switches)),
		Billboards: int32(len(d.Billboards)),
		Balls:      int32(len(d.Balls)),
		Views:      int32(len(d.Views)),
		Indices:    int32(len(d.Indices)),
	}
}
