// Package convert drives whole-file operations over the gxt codecs.
//
// A Converter reads one file with the codec its extension selects and
// writes the table with a second codec: the one named explicitly, or by
// default JSON for a .gxt2 source and .gxt2 for anything else. A Merger
// reads several files and writes their union, later inputs winning on a
// shared hash. Batch converts every matching file below a directory.
//
// Every operation owns its tables for its whole duration and hands them
// to no one. Reads complete before the output is opened. Output is
// written to a temporary file next to the destination and renamed into
// place.
package convert
