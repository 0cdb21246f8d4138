package gxt

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/roach88/gxt2/internal/table"
)

const (
	// Magic is "GXT2" read as a little-endian integer. A big-endian file
	// stores the same value, so its bytes appear reversed ("2TXG").
	Magic uint32 = 0x32545847

	fieldSize  = 4
	recordSize = 2 * fieldSize
)

var (
	magicLE = [4]byte{'G', 'X', 'T', '2'}
	magicBE = [4]byte{'2', 'T', 'X', 'G'}
)

// HeaderSize returns the size of the header and offset table for count
// entries, which is also the file offset of the first text.
func HeaderSize(count int) int {
	return (count*2 + 4) * fieldSize
}

// BinaryCodec is the compiled .gxt2 representation.
type BinaryCodec struct {
	settings
	detected Endian
}

// NewBinary returns a binary codec.
func NewBinary(opts ...Option) *BinaryCodec {
	s := newSettings(opts)
	return &BinaryCodec{settings: s, detected: s.endian}
}

// Format implements Codec.
func (c *BinaryCodec) Format() Format { return Binary }

// Endian returns the byte order used for writing.
func (c *BinaryCodec) Endian() Endian { return c.endian }

// DetectedEndian returns the byte order of the last file read, or the
// write order if nothing has been read yet.
func (c *BinaryCodec) DetectedEndian() Endian { return c.detected }

type offsetRecord struct {
	hash   uint32
	offset uint32
}

// ReadEntries implements Codec.
func (c *BinaryCodec) ReadEntries(r io.Reader, dst *table.Map) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read gxt2: %w", err)
	}
	if len(data) < 2*fieldSize {
		return binaryError(0, "file too short for header (%d bytes)", len(data))
	}

	var first [4]byte
	copy(first[:], data[:4])
	switch first {
	case magicLE:
		c.detected = LittleEndian
	case magicBE:
		c.detected = BigEndian
	default:
		return binaryError(0, "bad magic %q", first[:])
	}
	order := c.detected.ByteOrder()

	count := uint64(order.Uint32(data[4:8]))
	tableEnd := uint64(2*fieldSize) + count*recordSize
	heapStart := tableEnd + 2*fieldSize
	if heapStart > uint64(len(data)) {
		return binaryError(4, "offset table for %d entries exceeds file size %d", count, len(data))
	}

	records := make([]offsetRecord, count)
	pos := uint64(2 * fieldSize)
	for i := range records {
		records[i].hash = order.Uint32(data[pos:])
		records[i].offset = order.Uint32(data[pos+fieldSize:])
		pos += recordSize
	}

	var second [4]byte
	copy(second[:], data[tableEnd:tableEnd+4])
	if second != first {
		if c.strictMagic {
			return binaryError(int64(tableEnd), "second magic %q does not match %q", second[:], first[:])
		}
		c.logger.Warn("gxt2 second magic mismatch, continuing",
			"offset", tableEnd,
			"want", string(first[:]),
			"got", string(second[:]),
		)
	}

	dataLength := uint64(order.Uint32(data[tableEnd+4:]))
	if dataLength < heapStart {
		return binaryError(int64(tableEnd+4), "data length %d ends before heap start %d", dataLength, heapStart)
	}
	if dataLength > uint64(len(data)) {
		return binaryError(int64(tableEnd+4), "data length %d exceeds file size %d", dataLength, len(data))
	}
	heap := data[heapStart:dataLength]

	for i, rec := range records {
		off := uint64(rec.offset)
		if off < heapStart || off >= dataLength {
			return binaryError(int64(2*fieldSize+uint64(i)*recordSize+fieldSize),
				"entry %s offset %d outside heap [%d,%d)", table.FormatKey(rec.hash), off, heapStart, dataLength)
		}
		rel := off - heapStart
		end := bytes.IndexByte(heap[rel:], 0)
		if end < 0 {
			return binaryError(int64(off), "entry %s text is not NUL-terminated", table.FormatKey(rec.hash))
		}
		text := string(heap[rel : rel+uint64(end)])

		switch c.duplicates {
		case DuplicateKeepFirst:
			if !dst.PutIfAbsent(rec.hash, text) {
				c.logger.Warn("duplicate hash in gxt2, keeping first", "hash", table.FormatKey(rec.hash))
			}
		default:
			if dst.Has(rec.hash) {
				c.logger.Debug("duplicate hash in gxt2, overwriting", "hash", table.FormatKey(rec.hash))
			}
			dst.Put(rec.hash, text)
		}
	}

	c.logger.Debug("read gxt2", "entries", count, "endian", c.detected, "heap_bytes", len(heap))
	return nil
}

// WriteEntries implements Codec.
func (c *BinaryCodec) WriteEntries(w io.Writer, src *table.Map) error {
	data, err := c.Encode(src)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write gxt2: %w", err)
	}
	return nil
}

// Encode returns the complete binary image of src.
func (c *BinaryCodec) Encode(src *table.Map) ([]byte, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	entries := src.Entries()

	headerSize := uint64(HeaderSize(len(entries)))
	total := headerSize
	for _, e := range entries {
		total += uint64(len(e.Text)) + 1
	}
	if total > math.MaxUint32 {
		return nil, fmt.Errorf("gxt2 image of %d bytes exceeds 4 GiB", total)
	}

	order := c.endian.ByteOrder()
	buf := make([]byte, 0, total)
	put := func(v uint32) {
		var b [fieldSize]byte
		order.PutUint32(b[:], v)
		buf = append(buf, b[:]...)
	}

	put(Magic)
	put(uint32(len(entries)))
	offset := uint32(headerSize)
	for _, e := range entries {
		put(e.Hash)
		put(offset)
		offset += uint32(len(e.Text)) + 1
	}
	put(Magic)
	put(offset)

	for _, e := range entries {
		buf = append(buf, e.Text...)
		buf = append(buf, 0)
	}
	return buf, nil
}
