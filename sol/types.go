// SPDX-License-Identifier: GPL-2.0-or-later

package sol

// On-disk layouts. All fields are little-endian int32 or float32.

type dictRecord struct {
	Key   int32 // offset into the byte blob
	Value int32 // offset into the byte blob
}

type materialRecord struct {
	Diffuse   [4]float32
	Ambient   [4]float32
	Specular  [4]float32
	Emission  [4]float32
	Shininess float32
	Flags     int32
	Texture   [64]byte // NUL terminated
}

// follows a materialRecord only if MaterialAlphaTest is set
type alphaRecord struct {
	Func int32
	Ref  float32
}

type vertexRecord struct {
	Position [3]float32
}

type edgeRecord struct {
	VI int32
	VJ int32
}

type sideRecord struct {
	Normal   [3]float32
	Distance float32
}

type texCoordRecord struct {
	UV [2]float32
}

type offsetRecord struct {
	TI int32
	SI int32
	VI int32
}

type geomRecord struct {
	MI int32
	OI int32
	OJ int32
	OK int32
}

type lumpRecord struct {
	Flags int32
	V0    int32
	VC    int32
	E0    int32
	EC    int32
	G0    int32
	GC    int32
	S0    int32
	SC    int32
}

type nodeRecord struct {
	SI int32
	NI int32
	NJ int32
	L0 int32
	LC int32
}

// orientation (W,X,Y,Z) and parents follow depending on Flags
type pathRecord struct {
	Position [3]float32
	Time     float32
	PI       int32
	Enabled  int32
	Smooth   int32
	Flags    int32
}

type bodyRecord struct {
	PI int32
	PJ int32
	NI int32
	L0 int32
	LC int32
	G0 int32
	GC int32
}

type itemRecord struct {
	Position [3]float32
	Type     int32
	Value    int32
}

type goalRecord struct {
	Position [3]float32
	Radius   float32
}

type jumpRecord struct {
	Position [3]float32
	Target   [3]float32
	Radius   float32
}

type switchRecord struct {
	Position [3]float32
	Radius   float32
	PI       int32
	Timer    [2]float32 // [1] is unused
	State    [2]float32 // [1] is unused
	Hidden   int32
}

type billboardRecord struct {
	Flags    int32
	MI       int32
	Time     float32
	Dist     float32
	Width    [3]float32
	Height   [3]float32
	RotX     [3]float32
	RotY     [3]float32
	RotZ     [3]float32
	Position [3]float32
}

type ballRecord struct {
	Position [3]float32
	Radius   float32
}

type viewRecord struct {
	Position [3]float32
	Target   [3]float32
}

// trails parented paths and, from version 9 on, the moving entities
type pathPairRecord struct {
	P0 int32
	P1 int32
}
