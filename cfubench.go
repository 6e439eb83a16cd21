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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/benchmark"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal/colorterm"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal/plainterm"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/environment"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu/mmio"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu/sim"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/preferences"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/logger"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/modalflag"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/profiling"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/statsview"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/version"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/workload"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("BENCH", "DEBUG", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "BENCH":
		err = bench(md)

	case "DEBUG":
		err = debug(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// newSystem creates the system under measurement. the backend argument
// selects between the cycle-level simulation, the memory-mapped register
// interface driven by the loopback bus, and the same interface over a real
// device node.
//
// note the difference in construction order: the simulation shares the
// environment's cycle counter, whereas the memory-mapped backends own their
// counter and the environment borrows it.
//
// the returned function releases whatever the system holds open and should
// be deferred by the caller.
func newSystem(backend string, latency int, device string) (*hardware.System, func(), error) {
	prf, err := preferences.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	switch strings.ToUpper(backend) {
	case "SIM":
		rt, err := cfu.NewRouter(workload.Functions())
		if err != nil {
			return nil, nil, err
		}

		ctr, err := clock.NewCycles(uint(prf.CounterWidth.Get().(int)))
		if err != nil {
			return nil, nil, err
		}

		env, err := environment.NewEnvironment(ctr, prf)
		if err != nil {
			return nil, nil, err
		}

		bk, err := sim.NewBackend(env, ctr, rt)
		if err != nil {
			return nil, nil, err
		}

		sys, err := hardware.NewSystem(env, bk)
		if err != nil {
			return nil, nil, err
		}

		return sys, func() {}, nil

	case "MMIO":
		rt, err := cfu.NewRouter(workload.Functions())
		if err != nil {
			return nil, nil, err
		}

		bus := mmio.NewLoopback(rt, latency)

		sys, err := attachBus(bus, prf)
		if err != nil {
			return nil, nil, err
		}

		return sys, func() { _ = bus.Close() }, nil

	case "UIO":
		// the register window of a real unit. the stored preference names
		// the device node unless the -device flag has been given
		if device == "" {
			device = prf.MMIOPath.Get().(string)
		}

		bus, err := mmio.OpenUIO(device)
		if err != nil {
			return nil, nil, err
		}

		sys, err := attachBus(bus, prf)
		if err != nil {
			_ = bus.Close()
			return nil, nil, err
		}

		return sys, func() { _ = bus.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown backend (%s)", backend)
}

// attachBus builds the system around a memory mapped register window. the
// device is interrogated for its configuration so there is no router on this
// side of the bus.
func attachBus(bus mmio.BusDriver, prf *preferences.Preferences) (*hardware.System, error) {
	bk, err := mmio.NewBackend(bus)
	if err != nil {
		return nil, err
	}

	env, err := environment.NewEnvironment(bk.Counter(), prf)
	if err != nil {
		return nil, err
	}

	return hardware.NewSystem(env, bk)
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func bench(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		return benchRun(md)

	case "LIST":
		md.NewMode()

		// no additional arguments

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := benchmark.ListResults(md.Output)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			err := benchmark.DeleteResults(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}
	}

	return nil
}

func benchRun(md *modalflag.Modes) error {
	md.NewMode()

	backend := md.AddString("backend", "SIM", "backend to measure: SIM, MMIO, UIO")
	latency := md.AddInt("latency", 1, "cost of functions that declare none (MMIO backend only)")
	device := md.AddString("device", "", "device node of the register window (UIO backend only)")
	reps := md.AddInt("reps", 1, "repetitions of each rendition; the minimum is reported")
	script := md.AddString("script", "", "load benchmark cases from a Starlark program")
	record := md.AddBool("record", false, "add results to the benchmark database")
	chart := md.AddString("chart", "", "write an HTML chart of speedups to the named file")
	stats := md.AddBool("statsview", false, "run the statsview")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview not supported in this build")
		}
	}

	sys, cleanup, err := newSystem(*backend, *latency, *device)
	if err != nil {
		return err
	}
	defer cleanup()

	// the built-in workload unless a script has been specified
	var cases []benchmark.Case
	if *script != "" {
		cases, err = benchmark.LoadScript(*script, sys)
		if err != nil {
			return err
		}
	} else {
		cases = workload.Cases(sys)
	}

	run := benchmark.NewRunner(sys)
	run.Repetitions = *reps

	var results []benchmark.Result

	// set up a running function
	benchRun := func() error {
		var err error
		results, err = run.Run(cases)
		return err
	}

	// if profile generation has been requested then pass the benchRun()
	// function prepared above, through the ProfileCPU() command
	if *profile {
		err := profiling.ProfileCPU("bench.cpu.profile", benchRun)
		if err != nil {
			return err
		}
		err = profiling.ProfileMem("bench.mem.profile")
		if err != nil {
			return err
		}
	} else {
		// no profile required so run benchRun() function as normal
		err := benchRun()
		if err != nil {
			return err
		}
	}

	err = benchmark.WriteTable(md.Output, results)
	if err != nil {
		return err
	}

	// per-function cycle attribution accumulated over the run
	if prof := sys.Dispatcher.Profile(); prof.TotalCycles() > 0 {
		fmt.Fprintln(md.Output)
		prof.Write(md.Output)
	}

	if *record {
		err = benchmark.RecordResults(sys.Backend.BackendID(), results)
		if err != nil {
			return err
		}
	}

	if *chart != "" {
		err = benchmark.WriteChart(*chart, results)
		if err != nil {
			return err
		}
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	backend := md.AddString("backend", "SIM", "backend to debug: SIM, MMIO, UIO")
	latency := md.AddInt("latency", 1, "cost of functions that declare none (MMIO backend only)")
	device := md.AddString("device", "", "device node of the register window (UIO backend only)")
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	silent := md.AddBool("silent", false, "suppress everything except errors (scripted input)")
	profile := md.AddBool("profile", false, "run debugger through cpu profiler")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo. multi-line log entries are coloured when the
	// terminal can show it
	if *log {
		if strings.ToUpper(*termType) == "COLOR" {
			logger.SetEcho(logger.NewColorizer(os.Stdout), true)
		} else {
			logger.SetEcho(os.Stdout, true)
		}
	} else {
		logger.SetEcho(nil, false)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	sys, cleanup, err := newSystem(*backend, *latency, *device)
	if err != nil {
		return err
	}
	defer cleanup()

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	term.Silence(*silent)

	dbg, err := debugger.NewDebugger(sys, term)
	if err != nil {
		return err
	}

	// set up a running function
	dbgRun := func() error {
		return dbg.Start()
	}

	// if profile generation has been requested then pass the dbgRun()
	// function prepared above, through the ProfileCPU() command
	if *profile {
		err := profiling.ProfileCPU("debug.cpu.profile", dbgRun)
		if err != nil {
			return err
		}
		err = profiling.ProfileMem("debug.mem.profile")
		if err != nil {
			return err
		}
	} else {
		// no profile required so run dbgRun() function as normal
		err := dbgRun()
		if err != nil {
			return err
		}
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, release := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, ver)
	if !release {
		fmt.Fprintf(md.Output, "revision: %s\n", rev)
	}

	return nil
}
