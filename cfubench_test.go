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

package main_test

import (
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/environment"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu/sim"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/preferences"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/workload"
)

// measures the host cost of walking an invocation through the full dispatch
// protocol on the simulated substrate
func BenchmarkDispatch(b *testing.B) {
	b.Chdir(b.TempDir())

	prf, err := preferences.NewPreferences()
	if err != nil {
		b.Fatal(err)
	}

	ctr, err := clock.NewCycles(uint(prf.CounterWidth.Get().(int)))
	if err != nil {
		b.Fatal(err)
	}

	env, err := environment.NewEnvironment(ctr, prf)
	if err != nil {
		b.Fatal(err)
	}
	env.Normalise()

	rt, err := cfu.NewRouter(workload.Functions())
	if err != nil {
		b.Fatal(err)
	}

	bk, err := sim.NewBackend(env, ctr, rt)
	if err != nil {
		b.Fatal(err)
	}

	sys, err := hardware.NewSystem(env, bk)
	if err != nil {
		b.Fatal(err)
	}

	desc := cfu.Descriptor{Function: 0, OperandA: 0xdeadbeef}

	b.ResetTimer()
	for range b.N {
		_, err := sys.Dispatcher.Call(desc)
		if err != nil {
			b.Fatal(err)
		}
	}
}
