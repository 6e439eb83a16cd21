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

package preferences

import (
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/prefs"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/resources"
)

// default preference values.
const (
	watchdogDefault     = 10000
	latencyDefault      = 4
	counterWidthDefault = 32
	mmioPathDefault     = "/dev/uio0"
	jitterDefault       = false
)

// Preferences defines and collates all the preference values used by the
// hardware layer.
type Preferences struct {
	dsk *prefs.Disk

	// the number of cycles the dispatcher will wait for the done flag after
	// an issue before declaring the invocation lost. a value of zero disables
	// the watchdog
	Watchdog prefs.Int

	// the cycle cost assumed for functions that do not declare a cost of
	// their own in the simulated backend
	Latency prefs.Int

	// the width in bits of the simulated substrate's cycle counter
	CounterWidth prefs.Int

	// the path to the memory-mapped register window used by the hardware
	// attached backend
	MMIOPath prefs.String

	// whether to add cycle jitter to function completion in the simulated
	// backend. jitter is seeded from the cycle counter and so is reproducible
	// from run to run
	Jitter prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// setup preferences and load from disk
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.watchdog", &p.Watchdog)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.latency", &p.Latency)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.counterwidth", &p.CounterWidth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.mmiopath", &p.MMIOPath)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.jitter", &p.Jitter)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	// ignoring errors
	_ = p.Watchdog.Set(watchdogDefault)
	_ = p.Latency.Set(latencyDefault)
	_ = p.CounterWidth.Set(counterWidthDefault)
	_ = p.MMIOPath.Set(mmioPathDefault)
	_ = p.Jitter.Set(jitterDefault)
}

// Load current hardware preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
