// SPDX-License-Identifier: GPL-2.0-or-later

package sol

// relight returns a copy of ms with the lit flag derived the way files
// without an explicit lit flag expect it: every material is lit except the
// ones used by billboards.
func relight(ms []Material, bs []Billboard) []Material {
	out := make([]Material, len(ms))
	copy(out, ms)
	for i := range out {
		out[i].Flags |= MaterialLit
	}
	for _, b := range bs {
		if b.MI >= 0 && int(b.MI) < len(out) {
			out[b.MI].Flags &^= MaterialLit
		}
	}
	return out
}
