// Package strhash computes the 32-bit label hashes used as GXT2 keys.
//
// The game engine keys every text table entry by the Jenkins
// one-at-a-time digest of its label. Tables produced here must carry the
// same hash the engine computes for the same label, so the algorithm is
// reproduced bit for bit:
//   - input is the raw UTF-8 byte sequence, no case folding
//   - each byte is added, then mixed with +=<<10 and ^=>>6
//   - the result is finalized with +=<<3, ^=>>11, +=<<15
//
// strhash imports nothing internal.
package strhash
