package mfcutil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// hdf5Signature is the 8-byte magic every HDF5 file begins with.
var hdf5Signature = [8]byte{0x89, 'H', 'D', 'F', '\r', '\n', 0x1a, '\n'}

var (
	btreeNodeSignature = [4]byte{'T', 'R', 'E', 'E'}
	btreeLeafSignature = [4]byte{'S', 'N', 'O', 'D'}
	localHeapSignature = [4]byte{'H', 'E', 'A', 'P'}
)

// ReadVectorDataset reads one named 2-D contiguous dataset of IEEE
// floating point values from an HDF5 file, returning one []float32 row
// per record.
//
// This is a minimal, read-only walker for exactly the shape produced by
// common ANN-benchmark HDF5 exports: superblock version 0, 64-bit
// offsets and lengths, a root group containing the named dataset, whose
// dataspace message reports dimensionality 2 with a fixed extent and
// flags == 1, and whose datatype message reports class 1 (floating
// point), version 1. Anything else — chunked or compressed layouts,
// other superblock versions, other datatype classes — returns
// ErrUnsupportedLayout rather than attempting a best-effort read.
func ReadVectorDataset(path, datasetName string) ([][]float32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mfcutil: open %s: %w", path, err)
	}

	r := &hdf5Reader{data: data}
	if err := r.readSuperblock(); err != nil {
		return nil, err
	}

	entry, err := r.findSymbolTableEntry(r.rootObjectHeaderAddr, datasetName)
	if err != nil {
		return nil, err
	}

	return r.readDataset(entry)
}

// hdf5Reader walks one open HDF5 byte buffer. It holds no state beyond the
// buffer and the superblock's offset sizes, so it is safe to discard after
// a single ReadVectorDataset call (never shared, never reused concurrently).
type hdf5Reader struct {
	data []byte

	sizeOfOffsets int
	sizeOfLengths int

	rootObjectHeaderAddr uint64
}

func (r *hdf5Reader) readSuperblock() error {
	if len(r.data) < 8 || !bytes.Equal(r.data[:8], hdf5Signature[:]) {
		return ErrBadSignature
	}

	off := 8
	version := r.data[off]
	if version != 0 {
		return fmt.Errorf("%w: superblock version %d", ErrUnsupportedLayout, version)
	}
	// Skip free-space version, root-group version, reserved byte,
	// shared-header version (4 bytes) to reach size_of_offsets/lengths.
	off += 5
	r.sizeOfOffsets = int(r.data[off])
	r.sizeOfLengths = int(r.data[off+1])
	if r.sizeOfOffsets != 8 || r.sizeOfLengths != 8 {
		return fmt.Errorf("%w: only 64-bit offsets/lengths are supported", ErrUnsupportedLayout)
	}
	off += 2
	// reserved byte, group leaf node K (2), group internal node K (2),
	// file consistency flags (4).
	off += 1 + 2 + 2 + 4

	// Base address, free-space address, end-of-file address, driver info
	// block address: four 8-byte offsets.
	off += r.sizeOfOffsets * 4

	// Root group symbol table entry: link name offset (8), object header
	// address (8), cache type (4), reserved (4), scratch pad (16).
	r.rootObjectHeaderAddr = r.readOffset(off + r.sizeOfOffsets)

	return nil
}

func (r *hdf5Reader) readOffset(pos int) uint64 {
	return binary.LittleEndian.Uint64(r.data[pos : pos+8])
}

func (r *hdf5Reader) readLength(pos int) uint64 {
	return binary.LittleEndian.Uint64(r.data[pos : pos+8])
}

// objectHeaderMessage is one (type, body) pair from an object header's
// message list, trimmed to what dataset/group resolution needs.
type objectHeaderMessage struct {
	msgType uint16
	body    []byte
}

// Object header message type constants (HDF5 spec table).
const (
	msgTypeDataspace    = 0x0001
	msgTypeDatatype     = 0x0003
	msgTypeDataLayout   = 0x0008
	msgTypeSymbolTable  = 0x0011
	msgTypeContinuation = 0x0010
)

func (r *hdf5Reader) readObjectHeaderMessages(addr uint64) ([]objectHeaderMessage, error) {
	pos := int(addr)
	// version(1) reserved(1) numMessages(2) refCount(4) headerSize(4) reserved(4)
	if pos+16 > len(r.data) {
		return nil, fmt.Errorf("%w: truncated object header", ErrUnsupportedLayout)
	}
	numMessages := int(binary.LittleEndian.Uint16(r.data[pos+2 : pos+4]))
	headerSize := int(binary.LittleEndian.Uint32(r.data[pos+8 : pos+12]))
	pos += 16

	var messages []objectHeaderMessage
	remaining := headerSize
	read := 0
	for read < remaining && len(messages) < numMessages {
		if pos+8 > len(r.data) {
			break
		}
		msgType := binary.LittleEndian.Uint16(r.data[pos : pos+2])
		msgSize := int(binary.LittleEndian.Uint16(r.data[pos+2 : pos+4]))
		// flags(1) reserved(3) precede the body.
		body := r.data[pos+8 : pos+8+msgSize]
		pos += 8 + msgSize
		read += 8 + msgSize

		if msgType == msgTypeContinuation {
			// A continuation block relocates the remaining messages
			// elsewhere in the file. The dataset shapes this reader
			// targets keep their handful of messages inline; a header
			// that spills into a continuation block is outside the
			// minimal shape this reader supports.
			return nil, fmt.Errorf("%w: object header continuation blocks are not supported", ErrUnsupportedLayout)
		}
		messages = append(messages, objectHeaderMessage{msgType: msgType, body: body})
	}

	return messages, nil
}

// findSymbolTableEntry walks the root group's B-tree and local heap to
// find the symbol table entry whose name matches datasetName.
func (r *hdf5Reader) findSymbolTableEntry(groupObjectHeaderAddr uint64, datasetName string) (uint64, error) {
	messages, err := r.readObjectHeaderMessages(groupObjectHeaderAddr)
	if err != nil {
		return 0, err
	}

	var btreeAddr, heapAddr uint64
	found := false
	for _, m := range messages {
		if m.msgType == msgTypeSymbolTable && len(m.body) >= 16 {
			btreeAddr = binary.LittleEndian.Uint64(m.body[0:8])
			heapAddr = binary.LittleEndian.Uint64(m.body[8:16])
			found = true
			break
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: root group has no symbol table message", ErrUnsupportedLayout)
	}

	heapDataAddr, err := r.readLocalHeapDataAddr(heapAddr)
	if err != nil {
		return 0, err
	}

	return r.searchBTreeLeaves(btreeAddr, heapDataAddr, datasetName)
}

func (r *hdf5Reader) readLocalHeapDataAddr(addr uint64) (uint64, error) {
	pos := int(addr)
	if pos+4 > len(r.data) || !bytes.Equal(r.data[pos:pos+4], localHeapSignature[:]) {
		return 0, fmt.Errorf("%w: bad local heap signature", ErrUnsupportedLayout)
	}
	// signature(4) version(1) reserved(3) dataSegmentSize(8) freeListOffset(8) dataSegmentAddr(8)
	dataAddrPos := pos + 4 + 4 + 8 + 8
	return r.readOffset(dataAddrPos), nil
}

// searchBTreeLeaves walks a version-0 group B-tree (type 0), descending
// to leaf (SNOD) nodes and comparing each entry's name (resolved through
// the local heap) against target.
func (r *hdf5Reader) searchBTreeLeaves(nodeAddr, heapDataAddr uint64, target string) (uint64, error) {
	pos := int(nodeAddr)
	if pos+4 > len(r.data) || !bytes.Equal(r.data[pos:pos+4], btreeNodeSignature[:]) {
		return 0, fmt.Errorf("%w: bad B-tree node signature", ErrUnsupportedLayout)
	}

	nodeType := r.data[pos+4]
	nodeLevel := r.data[pos+5]
	entries := int(binary.LittleEndian.Uint16(r.data[pos+6 : pos+8]))
	if nodeType != 0 {
		return 0, fmt.Errorf("%w: only group (type 0) B-trees are supported", ErrUnsupportedLayout)
	}

	// Header: signature(4) type(1) level(1) entries(2) leftSibling(8) rightSibling(8)
	off := pos + 4 + 1 + 1 + 2 + 8 + 8
	// Key0 (length), then `entries` pairs of (child pointer, key).
	off += r.sizeOfLengths

	for i := 0; i < entries; i++ {
		childAddr := r.readOffset(off)
		off += r.sizeOfOffsets
		off += r.sizeOfLengths // next key, unused by this lookup

		if nodeLevel == 0 {
			if addr, err := r.searchSNOD(childAddr, heapDataAddr, target); err == nil {
				return addr, nil
			}
		} else {
			if addr, err := r.searchBTreeLeaves(childAddr, heapDataAddr, target); err == nil {
				return addr, nil
			}
		}
	}

	return 0, ErrDatasetNotFound
}

func (r *hdf5Reader) searchSNOD(addr, heapDataAddr uint64, target string) (uint64, error) {
	pos := int(addr)
	if pos+4 > len(r.data) || !bytes.Equal(r.data[pos:pos+4], btreeLeafSignature[:]) {
		return 0, fmt.Errorf("%w: bad SNOD signature", ErrUnsupportedLayout)
	}
	entries := int(binary.LittleEndian.Uint16(r.data[pos+6 : pos+8]))
	off := pos + 8

	entrySize := 2*r.sizeOfOffsets + 4 + 4 + 16
	for i := 0; i < entries; i++ {
		entryOff := off + i*entrySize
		linkNameOffset := r.readOffset(entryOff)
		objectHeaderAddr := r.readOffset(entryOff + r.sizeOfOffsets)

		name := readHeapString(r.data, int(heapDataAddr)+int(linkNameOffset))
		if name == target {
			return objectHeaderAddr, nil
		}
	}

	return 0, ErrDatasetNotFound
}

func readHeapString(data []byte, start int) string {
	end := start
	for end < len(data) && data[end] != 0 {
		end++
	}
	return string(data[start:end])
}

// readDataset resolves a dataset's dataspace, datatype, and data layout
// messages, then reads its contiguous row-major float payload.
func (r *hdf5Reader) readDataset(objectHeaderAddr uint64) ([][]float32, error) {
	messages, err := r.readObjectHeaderMessages(objectHeaderAddr)
	if err != nil {
		return nil, err
	}

	var (
		dims       []uint64
		byteOrder  binary.ByteOrder = binary.LittleEndian
		bitsPerVal int
		dataAddr   uint64
		dataLen    uint64
		haveSpace  bool
		haveType   bool
		haveLayout bool
	)

	for _, m := range messages {
		switch m.msgType {
		case msgTypeDataspace:
			version := m.body[0]
			dimensionality := int(m.body[1])
			flags := m.body[2]
			if dimensionality != 2 {
				return nil, fmt.Errorf("%w: dataspace dimensionality %d (want 2)", ErrUnsupportedLayout, dimensionality)
			}
			if flags != 1 {
				return nil, fmt.Errorf("%w: dataspace flags %d (want fixed-size, flags==1)", ErrUnsupportedLayout, flags)
			}
			_ = version
			off := 8
			dims = make([]uint64, dimensionality)
			for d := 0; d < dimensionality; d++ {
				dims[d] = binary.LittleEndian.Uint64(m.body[off : off+8])
				off += 8
			}
			haveSpace = true

		case msgTypeDatatype:
			classAndVersion := m.body[0]
			class := classAndVersion & 0x0f
			version := (classAndVersion >> 4) & 0x0f
			if class != 1 {
				return nil, fmt.Errorf("%w: datatype class %d (want 1, floating point)", ErrUnsupportedLayout, class)
			}
			if version != 1 {
				return nil, fmt.Errorf("%w: datatype version %d (want 1)", ErrUnsupportedLayout, version)
			}
			size := binary.LittleEndian.Uint32(m.body[4:8])
			bitsPerVal = int(size) * 8
			// Bit-field byte order flag: bit 0 of the class bit-field byte.
			if m.body[1]&0x1 != 0 {
				byteOrder = binary.BigEndian
			}
			haveType = true

		case msgTypeDataLayout:
			version := m.body[0]
			layoutClass := m.body[1]
			if version != 1 && version != 2 {
				return nil, fmt.Errorf("%w: data layout version %d", ErrUnsupportedLayout, version)
			}
			if layoutClass != 1 {
				return nil, fmt.Errorf("%w: data layout class %d (only contiguous supported)", ErrUnsupportedLayout, layoutClass)
			}
			dataAddr = binary.LittleEndian.Uint64(m.body[2:10])
			dataLen = binary.LittleEndian.Uint64(m.body[10:18])
			haveLayout = true
		}
	}

	if !haveSpace || !haveType || !haveLayout {
		return nil, fmt.Errorf("%w: missing dataspace/datatype/layout message", ErrUnsupportedLayout)
	}
	if bitsPerVal != 32 && bitsPerVal != 64 {
		return nil, fmt.Errorf("%w: unsupported float width %d bits", ErrUnsupportedLayout, bitsPerVal)
	}

	rows, cols := int(dims[0]), int(dims[1])
	elemSize := bitsPerVal / 8
	expectedLen := uint64(rows*cols) * uint64(elemSize)
	if dataLen < expectedLen {
		return nil, fmt.Errorf("%w: contiguous storage shorter than declared shape", ErrUnsupportedLayout)
	}

	out := make([][]float32, rows)
	pos := int(dataAddr)
	for i := 0; i < rows; i++ {
		row := make([]float32, cols)
		for j := 0; j < cols; j++ {
			switch bitsPerVal {
			case 32:
				bits := byteOrder.Uint32(r.data[pos : pos+4])
				row[j] = math.Float32frombits(bits)
				pos += 4
			case 64:
				bits := byteOrder.Uint64(r.data[pos : pos+8])
				row[j] = float32(math.Float64frombits(bits))
				pos += 8
			}
		}
		out[i] = row
	}

	return out, nil
}
