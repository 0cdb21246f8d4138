// Package gxt reads and writes GXT text tables in their five on-disk
// representations.
//
// Every representation implements Codec. A codec never owns a table: the
// caller passes a *table.Map to ReadEntries, which fills it, and to
// WriteEntries, which serializes it in ascending hash order.
//
//	Format     Extension  Layout
//	Binary     .gxt2      header, offset table, NUL-terminated string heap
//	LineText   .txt       0xHHHHHHHH = text
//	JSON       .json      { "0xHHHHHHHH": "text", ... }
//	CSV        .csv       0xHHHHHHHH,text
//	LegacyTab  .oxt       Version 2 30 / { / \t0xHHHHHHHH = text / }
//
// # Binary layout
//
// All integers are 4 bytes in the byte order of the file:
//
//	[magic]       "GXT2" (little endian) or "2TXG" (big endian)
//	[count]
//	count x [hash][offset]
//	[magic]       repeated
//	[dataLength]  total file length
//	[heap]        NUL-terminated texts
//
// Offsets are measured from the start of the file, not the heap. The
// magic alone tells a reader the byte order.
//
// # Errors
//
// A file that is not what its codec expects yields a *FormatError, so
// callers can tell "wrong kind of file" apart from I/O failures with
// IsFormatError. OpenFile reports *OpenError with the offending path.
// FormatForExtension reports *UnknownExtensionError before any I/O.
package gxt
