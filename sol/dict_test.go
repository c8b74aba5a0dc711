// SPDX-License-Identifier: GPL-2.0-or-later

package sol

import (
	"errors"
	"testing"
)

func dictFile(blob string, offsets ...int32) []byte {
	w := &solWriter{}
	w.raw([]byte(blob))
	w.i32(offsets...)
	c := Counts{Bytes: int32(len(blob)), Dicts: int32(len(offsets) / 2)}
	return solFile(9, c, w.Bytes())
}

func TestDict(t *testing.T) {
	// 0 song, 5 bgm/a.ogg, 15 empty line, 17 message, 25 one\two\three
	blob := "song\x00bgm/a.ogg\x00\n\x00message\x00one\\two\\three\x00"
	tests := []struct {
		offsets []int32
		key     string
		want    string
	}{
		{[]int32{0, 5}, "song", "bgm/a.ogg"},
		{[]int32{0, 15}, "song", ""},
		{[]int32{17, 25}, "message", "one\ntwo\nthree"},
		{[]int32{0, 5, 0, 15}, "song", ""},
		{[]int32{5, 25}, "bgm/a.ogg", "one\\two\\three"},
		// a key may point into the middle of another string
		{[]int32{6, 0}, "gm/a.ogg", "song"},
	}
	for i, tc := range tests {
		doc, err := Decode(dictFile(blob, tc.offsets...))
		if err != nil {
			t.Errorf("Testcase %d: Decode failed: %v", i, err)
			continue
		}
		got, ok := doc.Dict[tc.key]
		if !ok || got != tc.want {
			t.Errorf("Testcase %d: Dict[%q] = %q, %v, want %q", i, tc.key, got, ok, tc.want)
		}
	}
}

func TestDictInvalidUTF8(t *testing.T) {
	doc, err := Decode(dictFile("k\x00a\xffb\x00", 0, 2))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := doc.Dict["k"]; got != "a\uFFFDb" {
		t.Errorf("Dict[k] = %q, want %q", got, "a\uFFFDb")
	}
}

func TestDictBadOffsets(t *testing.T) {
	tests := []struct {
		blob    string
		offsets []int32
	}{
		{"key\x00val\x00", []int32{0, 8}},
		{"key\x00val\x00", []int32{-1, 4}},
		{"key\x00val", []int32{0, 4}},
		{"", []int32{0, 0}},
	}
	for i, tc := range tests {
		_, err := Decode(dictFile(tc.blob, tc.offsets...))
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("Testcase %d: Decode error = %v, want FormatError", i, err)
		}
	}
}
