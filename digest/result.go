// This file is part of cfubench.
//
// cfubench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cfubench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cfubench.  If not, see <https://www.gnu.org/licenses/>.

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Result accumulates the result words of a workload and generates a SHA-1
// value over them.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Result struct {
	digest [sha1.Size]byte
	words  []byte
}

// NewResult is the preferred method of initialisation for the Result type.
func NewResult() *Result {
	dig := &Result{}

	// the head of the accumulation buffer carries the previous fingerprint
	dig.words = make([]byte, sha1.Size, 1024)

	return dig
}

// Hash implements the Digest interface.
func (dig Result) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Result) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.words = dig.words[:sha1.Size]
	copy(dig.words, dig.digest[:])
}

// Write32 adds a result word to the pending accumulation.
func (dig *Result) Write32(v uint32) {
	dig.words = append(dig.words, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// Fingerprint folds the accumulated words into the digest, clearing the
// accumulation. Fingerprints chain: the value of the previous fold
// contributes to the next, so the same words folded in a different order
// produce a different final hash.
func (dig *Result) Fingerprint() string {
	copy(dig.words, dig.digest[:])
	dig.digest = sha1.Sum(dig.words)
	dig.words = dig.words[:sha1.Size]
	return dig.Hash()
}

// Words is a convenience that fingerprints a slice of result words in one
// movement.
func Words(words []uint32) string {
	dig := NewResult()
	for _, w := range words {
		dig.Write32(w)
	}
	return dig.Fingerprint()
}
