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

package random

import (
	"math/rand"
	"time"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Ticker implementations provide the current reading of the substrate cycle
// counter. Any clock.Counter satisfies the interface.
type Ticker interface {
	Now() clock.Snapshot
}

// Random is a random number generator that is sensitive to time within the
// simulated substrate. Required for deterministic benchmark runs.
type Random struct {
	ticker Ticker

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(ticker Ticker) *Random {
	return &Random{
		ticker: ticker,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(int64(rnd.ticker.Now())))
	}
	return rand.New(rand.NewSource(baseSeed + int64(rnd.ticker.Now())))
}

// Repeatable returns a random number between 0 and n. The same number is
// returned for the same reading of the cycle counter.
func (rnd *Random) Repeatable(n int) int {
	if n <= 0 {
		return 0
	}
	return rnd.rand().Intn(n)
}
