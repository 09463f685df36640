package mfcutil_test

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/metricforest/mfcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMinimalHDF5 hand-assembles the smallest possible file matching the
// one shape mfcutil.ReadVectorDataset supports: version-0 superblock with
// 64-bit offsets/lengths, a root group with one symbol-table entry
// (resolved through a one-leaf B-tree and a local heap), and a contiguous
// 2-D float32 dataset named "points".
func buildMinimalHDF5(t *testing.T, rows, cols int, values []float32) []byte {
	t.Helper()
	require.Len(t, values, rows*cols)

	const (
		sbAddr      = 0
		sbLen       = 96
		rootOHAddr  = sbAddr + sbLen
		rootOHLen   = 40
		btreeAddr   = rootOHAddr + rootOHLen
		btreeLen    = 48
		heapAddr    = btreeAddr + btreeLen
		heapHdrLen  = 32
		heapDataLen = 8
		heapLen     = heapHdrLen + heapDataLen
		snodAddr    = heapAddr + heapLen
		snodLen     = 48
		datasetAddr = snodAddr + snodLen
	)

	dataspaceBody := 24
	datatypeBody := 16
	layoutBody := 18
	headerSize := (8 + dataspaceBody) + (8 + datatypeBody) + (8 + layoutBody)
	datasetOHLen := 16 + headerSize
	dataAddr := datasetAddr + datasetOHLen
	dataLen := rows * cols * 4

	buf := make([]byte, dataAddr+dataLen)
	put64 := func(pos int, v uint64) { binary.LittleEndian.PutUint64(buf[pos:pos+8], v) }
	put32 := func(pos int, v uint32) { binary.LittleEndian.PutUint32(buf[pos:pos+4], v) }
	put16 := func(pos int, v uint16) { binary.LittleEndian.PutUint16(buf[pos:pos+2], v) }

	// --- Superblock ---
	copy(buf[0:8], []byte{0x89, 'H', 'D', 'F', '\r', '\n', 0x1a, '\n'})
	buf[8] = 0 // version
	buf[13] = 8 // size_of_offsets
	buf[14] = 8 // size_of_lengths
	// root symbol table entry at off=56: link_name_offset(8), object_header_address(8)
	put64(56, 0)
	put64(64, uint64(rootOHAddr))

	// --- Root group object header: one symbol-table message ---
	put16(rootOHAddr+2, 1)                  // number_of_header_messages
	put32(rootOHAddr+8, 24)                 // headerSize (one message: 8+16)
	msgPos := rootOHAddr + 16
	put16(msgPos, 0x0011) // symbol table message type
	put16(msgPos+2, 16)   // body size
	put64(msgPos+8, uint64(btreeAddr))
	put64(msgPos+16, uint64(heapAddr))

	// --- B-tree: one leaf-level node, one child (the SNOD) ---
	copy(buf[btreeAddr:btreeAddr+4], []byte{'T', 'R', 'E', 'E'})
	buf[btreeAddr+4] = 0 // node type: group
	buf[btreeAddr+5] = 0 // level: 0 (points directly at leaves)
	put16(btreeAddr+6, 1)
	childPos := btreeAddr + 24 + 8 // header(24) + key0(8)
	put64(childPos, uint64(snodAddr))

	// --- Local heap: header + one string "points\0" ---
	copy(buf[heapAddr:heapAddr+4], []byte{'H', 'E', 'A', 'P'})
	put64(heapAddr+8, uint64(heapDataLen))
	put64(heapAddr+24, uint64(heapAddr+heapHdrLen))
	heapDataAddr := heapAddr + heapHdrLen
	copy(buf[heapDataAddr:], []byte("points\x00"))

	// --- SNOD leaf: one entry naming the dataset ---
	copy(buf[snodAddr:snodAddr+4], []byte{'S', 'N', 'O', 'D'})
	put16(snodAddr+6, 1)
	entryPos := snodAddr + 8
	put64(entryPos, 0) // link_name_offset: "points" sits at heap data offset 0
	put64(entryPos+8, uint64(datasetAddr))

	// --- Dataset object header: dataspace, datatype, data layout ---
	put16(datasetAddr+2, 3)
	put32(datasetAddr+8, uint32(headerSize))
	pos := datasetAddr + 16

	// Each message is: type(2) size(2) flags+reserved(4) body(size).
	// Message type constants mirror the HDF5 spec table (dataspace=0x0001,
	// datatype=0x0003, data layout=0x0008).
	put16(pos, 0x0001)
	put16(pos+2, uint16(dataspaceBody))
	body := pos + 8
	buf[body] = 1   // dataspace version
	buf[body+1] = 2 // dimensionality
	buf[body+2] = 1 // flags
	put64(body+8, uint64(rows))
	put64(body+16, uint64(cols))
	pos += 8 + dataspaceBody

	put16(pos, 0x0003)
	put16(pos+2, uint16(datatypeBody))
	body = pos + 8
	buf[body] = 0x11 // version<<4 | class(1=float)
	put32(body+4, 4) // element size in bytes
	buf[body+1] = 0  // class bit field, bit 0 clear: little-endian
	pos += 8 + datatypeBody

	put16(pos, 0x0008)
	put16(pos+2, uint16(layoutBody))
	body = pos + 8
	buf[body] = 1   // layout version
	buf[body+1] = 1 // layout class: contiguous
	put64(body+2, uint64(dataAddr))
	put64(body+10, uint64(dataLen))
	pos += 8 + layoutBody

	require.Equal(t, datasetAddr+datasetOHLen, pos)
	require.Equal(t, dataAddr, pos)

	// --- Row-major float32 payload ---
	for i, v := range values {
		put32(dataAddr+i*4, math.Float32bits(v))
	}

	return buf
}

func TestReadVectorDataset_MinimalFile(t *testing.T) {
	values := []float32{1, 2, 3, 4, 5, 6}
	buf := buildMinimalHDF5(t, 2, 3, values)

	path := filepath.Join(t.TempDir(), "points.h5")
	require.NoError(t, os.WriteFile(path, buf, 0o600))

	rows, err := mfcutil.ReadVectorDataset(path, "points")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []float32{1, 2, 3}, rows[0])
	assert.Equal(t, []float32{4, 5, 6}, rows[1])
}

func TestReadVectorDataset_BadSignature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.h5")
	require.NoError(t, os.WriteFile(path, []byte("not-hdf5-data-at-all"), 0o600))

	_, err := mfcutil.ReadVectorDataset(path, "points")
	assert.ErrorIs(t, err, mfcutil.ErrBadSignature)
}

func TestReadVectorDataset_UnknownDataset(t *testing.T) {
	buf := buildMinimalHDF5(t, 1, 2, []float32{1, 2})
	path := filepath.Join(t.TempDir(), "points.h5")
	require.NoError(t, os.WriteFile(path, buf, 0o600))

	_, err := mfcutil.ReadVectorDataset(path, "missing")
	assert.ErrorIs(t, err, mfcutil.ErrDatasetNotFound)
}
