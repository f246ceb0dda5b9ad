// seehuhn.de/go/glyphdump - dump and compare the glyphs of OpenType fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package source

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrCollection indicates a malformed font collection file.
var ErrCollection = errors.New("malformed font collection")

const collectionTag = "ttcf"

func isCollectionData(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == collectionTag
}

// collectionOffsets returns the offsets of the table directories of the
// member fonts of a font collection.
func collectionOffsets(data []byte) ([]uint32, error) {
	if len(data) < 12 || !isCollectionData(data) {
		return nil, ErrCollection
	}
	major := binary.BigEndian.Uint16(data[4:])
	if major != 1 && major != 2 {
		return nil, fmt.Errorf("%w: unknown version %d", ErrCollection, major)
	}
	n := binary.BigEndian.Uint32(data[8:])
	if n == 0 || uint64(len(data)) < 12+4*uint64(n) {
		return nil, fmt.Errorf("%w: bad number of fonts %d", ErrCollection, n)
	}
	offsets := make([]uint32, n)
	for i := range offsets {
		offsets[i] = binary.BigEndian.Uint32(data[12+4*i:])
	}
	return offsets, nil
}

// member returns a stand-alone font file for member idx of a font
// collection.  Table offsets in a collection are relative to the start of
// the collection file, so the tables are copied after a new table
// directory.
func member(data []byte, idx int) ([]byte, error) {
	offsets, err := collectionOffsets(data)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(offsets) {
		return nil, fmt.Errorf("%w: no font %d", ErrCollection, idx)
	}

	start := uint64(offsets[idx])
	if start+12 > uint64(len(data)) {
		return nil, fmt.Errorf("%w: font %d out of range", ErrCollection, idx)
	}
	numTables := uint64(binary.BigEndian.Uint16(data[start+4:]))
	dirLen := 12 + 16*numTables
	if start+dirLen > uint64(len(data)) {
		return nil, fmt.Errorf("%w: font %d: truncated table directory", ErrCollection, idx)
	}

	res := make([]byte, dirLen)
	copy(res, data[start:start+dirLen])
	for i := uint64(0); i < numTables; i++ {
		rec := 12 + 16*i
		tag := string(res[rec : rec+4])
		offset := uint64(binary.BigEndian.Uint32(res[rec+8:]))
		length := uint64(binary.BigEndian.Uint32(res[rec+12:]))
		if offset+length > uint64(len(data)) {
			return nil, fmt.Errorf("%w: font %d: table %q out of range", ErrCollection, idx, tag)
		}

		binary.BigEndian.PutUint32(res[rec+8:], uint32(len(res)))
		res = append(res, data[offset:offset+length]...)
		for len(res)%4 != 0 {
			res = append(res, 0)
		}
	}
	return res, nil
}
