// SPDX-License-Identifier: GPL-2.0-or-later

package sol

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// loadDict resolves the key/value offset pairs against the byte blob.
func (d *decoder) loadDict(n int32, blob []byte) (map[string]string, error) {
	raw, err := readRecords[dictRecord](d, n)
	if err != nil {
		return nil, err
	}
	dict := make(map[string]string, len(raw))
	for i, r := range raw {
		key, err := d.blobString(blob, r.Key)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d key", i)
		}
		val, err := d.blobString(blob, r.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d value", i)
		}
		if val == "\n" {
			val = ""
		}
		if key == "message" {
			// the map compiler stores newlines as backslashes
			val = strings.ReplaceAll(val, "\\", "\n")
		}
		dict[key] = val
	}
	return dict, nil
}

func (d *decoder) blobString(blob []byte, off int32) (string, error) {
	if off < 0 || int(off) >= len(blob) {
		return "", d.formatError(fmt.Sprintf("string offset %d outside of %d byte blob", off, len(blob)), nil)
	}
	if bytes.IndexByte(blob[off:], 0) < 0 {
		return "", d.formatError(fmt.Sprintf("unterminated string at blob offset %d", off), nil)
	}
	return d.cString(blob[off:])
}
