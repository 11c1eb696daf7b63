// Package buffer provides the growable byte store backing attribute values.
//
// A DataBuffer is logically partitioned by its owner into fixed-size records;
// the buffer itself only knows about byte offsets. Each DataBuffer is owned
// by exactly one attribute and must not be shared between attributes.
package buffer

import (
	"github.com/meshforge/pcattr/errs"
)

const (
	// DefaultGrowSize is the minimum chunk by which a small buffer grows.
	DefaultGrowSize = 1024 * 4
	// growRatioLimit is the capacity above which growth switches from fixed
	// chunks to a 25% proportional strategy.
	growRatioLimit = 4 * DefaultGrowSize
)

// DataBuffer is a contiguous, growable byte store with positioned reads and
// writes. Writes past the current size extend the buffer; reads past the end
// fail with errs.ErrBufferTooSmall.
type DataBuffer struct {
	data []byte
}

// NewDataBuffer creates an empty DataBuffer with the given initial capacity.
func NewDataBuffer(capacity int64) *DataBuffer {
	if capacity < 0 {
		capacity = 0
	}

	return &DataBuffer{data: make([]byte, 0, capacity)}
}

// Size returns the current byte size of the buffer.
func (db *DataBuffer) Size() int64 {
	return int64(len(db.data))
}

// Data returns the underlying byte slice. The slice is valid until the next
// mutating call; callers must not retain it across writes.
func (db *DataBuffer) Data() []byte {
	return db.data
}

// Reset truncates the buffer to zero size, retaining allocated capacity.
func (db *DataBuffer) Reset() {
	db.data = db.data[:0]
}

// Resize sets the buffer size to n bytes. Growth zero-fills the new region.
// Panics if n is negative.
func (db *DataBuffer) Resize(n int64) {
	if n < 0 {
		panic("Resize: negative size")
	}

	if n <= int64(len(db.data)) {
		db.data = db.data[:n]
		return
	}

	db.grow(n - int64(len(db.data)))
	// grow guarantees capacity; extend and zero the fresh region.
	old := len(db.data)
	db.data = db.data[:n]
	clear(db.data[old:])
}

// Write copies data into the buffer starting at offset, extending the buffer
// if the write reaches past its current size. Panics if offset is negative.
func (db *DataBuffer) Write(offset int64, data []byte) {
	if offset < 0 {
		panic("Write: negative offset")
	}

	end := offset + int64(len(data))
	if end > int64(len(db.data)) {
		db.Resize(end)
	}
	copy(db.data[offset:end], data)
}

// Read copies len(out) bytes starting at offset into out.
func (db *DataBuffer) Read(offset int64, out []byte) error {
	if offset < 0 || offset+int64(len(out)) > int64(len(db.data)) {
		return errs.ErrBufferTooSmall
	}

	copy(out, db.data[offset:offset+int64(len(out))])

	return nil
}

// grow ensures capacity for requiredBytes more bytes without changing size.
//
// Small buffers grow by DefaultGrowSize to minimize reallocations; larger
// buffers grow by 25% of current capacity to balance memory usage and
// reallocation cost.
func (db *DataBuffer) grow(requiredBytes int64) {
	available := int64(cap(db.data) - len(db.data))
	if available >= requiredBytes {
		return
	}

	growBy := int64(DefaultGrowSize)
	if cap(db.data) > growRatioLimit {
		growBy = int64(cap(db.data) / 4)
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newData := make([]byte, len(db.data), int64(len(db.data))+growBy)
	copy(newData, db.data)
	db.data = newData
}
