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

package benchmark

import (
	"fmt"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Sentinal errors.
const (
	// ScriptError is returned when a starlark script cannot be loaded or when
	// a scripted rendition fails during a benchmark run.
	ScriptError = "benchmark: script: %v"
)

// scriptHost binds the predeclared script functions to a live system. the
// same thread runs the script's top level and, later, the registered
// renditions.
type scriptHost struct {
	sys    *hardware.System
	thread *starlark.Thread
	cases  []Case
}

// LoadScript reads benchmark cases from a starlark program. The program
// registers its cases at the top level and the returned cases are run with a
// Runner in the usual way.
//
// Three functions are predeclared for the script's use:
//
//	cfu(fn, a, b=0)     issue an invocation of function fn and return the result
//	elapse(cycles)      model CPU work taking the given number of cycles
//	bench(name, baseline, accelerated, compare=None)
//
// For example:
//
//	def base():
//	    elapse(100)
//
//	def accel():
//	    cfu(0, 1, 2)
//
//	bench("example", base, accel)
//
// A program that registers no cases is an error.
func LoadScript(filename string, sys *hardware.System) ([]Case, error) {
	host := &scriptHost{
		sys:    sys,
		thread: &starlark.Thread{Name: "benchmark"},
	}

	pred := starlark.StringDict{
		"cfu":    starlark.NewBuiltin("cfu", host.cfu),
		"elapse": starlark.NewBuiltin("elapse", host.elapse),
		"bench":  starlark.NewBuiltin("bench", host.bench),
	}

	opts := syntax.FileOptions{}
	if _, err := starlark.ExecFileOptions(&opts, host.thread, filename, nil, pred); err != nil {
		return nil, curated.Errorf(ScriptError, err)
	}

	if len(host.cases) == 0 {
		return nil, curated.Errorf(ScriptError, fmt.Sprintf("%s registers no cases", filename))
	}

	return host.cases, nil
}

// call wraps a starlark function so that it can serve as a Case rendition.
func (host *scriptHost) call(fn starlark.Callable) func() error {
	return func() error {
		if _, err := starlark.Call(host.thread, fn, nil, nil); err != nil {
			return curated.Errorf(ScriptError, err)
		}
		return nil
	}
}

func (host *scriptHost) cfu(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var fn, opa, opb int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "fn", &fn, "a", &opa, "b?", &opb); err != nil {
		return nil, err
	}

	r, err := host.sys.Dispatcher.Call(cfu.Descriptor{
		Function: cfu.FunctionID(fn),
		OperandA: uint32(opa),
		OperandB: uint32(opb),
	})
	if err != nil {
		return nil, err
	}

	return starlark.MakeUint64(uint64(r)), nil
}

func (host *scriptHost) elapse(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var cycles int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "cycles", &cycles); err != nil {
		return nil, err
	}

	host.sys.Backend.Elapse(cycles)

	return starlark.None, nil
}

func (host *scriptHost) bench(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var baseline, accelerated starlark.Callable
	var compare starlark.Value
	err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &name, "baseline", &baseline, "accelerated", &accelerated, "compare?", &compare)
	if err != nil {
		return nil, err
	}

	c := Case{
		Name:        name,
		Baseline:    host.call(baseline),
		Accelerated: host.call(accelerated),
	}

	if compare != nil && compare != starlark.None {
		fn, ok := compare.(starlark.Callable)
		if !ok {
			return nil, fmt.Errorf("%s: compare argument is not callable", b.Name())
		}
		c.Compare = host.call(fn)
	}

	host.cases = append(host.cases, c)

	return starlark.None, nil
}
