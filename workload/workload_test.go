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

package workload_test

import (
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/benchmark"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/environment"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu/mmio"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu/sim"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/preferences"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/test"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/workload"
)

func newSimSystem(t *testing.T) *hardware.System {
	t.Helper()
	t.Chdir(t.TempDir())

	prf, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	ctr, err := clock.NewCycles(32)
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(ctr, prf)
	test.DemandSuccess(t, err)
	env.Normalise()

	rt, err := cfu.NewRouter(workload.Functions())
	test.DemandSuccess(t, err)

	bk, err := sim.NewBackend(env, ctr, rt)
	test.DemandSuccess(t, err)

	sys, err := hardware.NewSystem(env, bk)
	test.DemandSuccess(t, err)

	return sys
}

func TestStockFunctions(t *testing.T) {
	fns := workload.Functions()
	test.DemandEquality(t, len(fns), 3)

	// bit reversal
	test.ExpectEquality(t, fns[workload.FuncBitrev].Execute(0x00000001, 0), 0x80000000)
	test.ExpectEquality(t, fns[workload.FuncBitrev].Execute(0x0f0f0f0f, 0), 0xf0f0f0f0)

	// population count
	test.ExpectEquality(t, fns[workload.FuncPopcount].Execute(0xffffffff, 0), 32)
	test.ExpectEquality(t, fns[workload.FuncPopcount].Execute(0x00000000, 0), 0)
	test.ExpectEquality(t, fns[workload.FuncPopcount].Execute(0x80000001, 0), 2)

	// the multiply wraps at 32 bits
	test.ExpectEquality(t, fns[workload.FuncMAC].Execute(7, 6), 42)
	test.ExpectEquality(t, fns[workload.FuncMAC].Execute(0xffffffff, 2), 0xfffffffe)
}

func TestWorkloadRun(t *testing.T) {
	sys := newSimSystem(t)

	cases := workload.Cases(sys)
	test.DemandEquality(t, len(cases), 3)

	results, err := benchmark.NewRunner(sys).Run(cases)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(results), 3)

	// a successful Run() means the digest verification passed for every
	// case. the fixed cost cases have exactly predictable cycle counts
	test.ExpectEquality(t, results[0].CaseName, "bitrev")
	test.ExpectEquality(t, results[0].BaselineCycles, 1536)
	test.ExpectEquality(t, results[0].AcceleratedCycles, 128)

	s, ok := results[0].Speedup()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, 12.0)

	// the popcount baseline depends on the drawn data
	test.ExpectEquality(t, results[1].CaseName, "popcount")
	test.ExpectEquality(t, results[1].AcceleratedCycles, 128)
	test.ExpectSuccess(t, results[1].BaselineCycles > results[1].AcceleratedCycles)

	test.ExpectEquality(t, results[2].CaseName, "mac")
	test.ExpectEquality(t, results[2].BaselineCycles, 512)
	test.ExpectEquality(t, results[2].AcceleratedCycles, 192)
}

func TestWorkloadDeterminism(t *testing.T) {
	runOnce := func() []benchmark.Result {
		sys := newSimSystem(t)
		results, err := benchmark.NewRunner(sys).Run(workload.Cases(sys))
		test.DemandSuccess(t, err)
		return results
	}

	a := runOnce()
	b := runOnce()

	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		test.ExpectEquality(t, a[i], b[i])
	}
}

func TestWorkloadOnLoopback(t *testing.T) {
	t.Chdir(t.TempDir())

	prf, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	rt, err := cfu.NewRouter(workload.Functions())
	test.DemandSuccess(t, err)

	bk, err := mmio.NewBackend(mmio.NewLoopback(rt, 4))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(bk.Counter(), prf)
	test.DemandSuccess(t, err)
	env.Normalise()

	sys, err := hardware.NewSystem(env, bk)
	test.DemandSuccess(t, err)

	// cycle modelling is not meaningful against the loopback device (Elapse
	// is a no-op for the memory mapped backend) but the renditions must
	// still agree on their results
	results, err := benchmark.NewRunner(sys).Run(workload.Cases(sys))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(results), 3)
}
