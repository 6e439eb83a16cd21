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

package environment

import (
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/preferences"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/random"
)

// Label is used to name the environment
type Label string

// Environment is used to provide context for a system. Particularly useful
// when running multiple systems side-by-side
type Environment struct {
	Label Label

	// any randomisation required by the system should be retreived through
	// this structure
	Random *random.Random

	// the hardware preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The two arguments must be supplied. In the case of the prefs field it can by
// nil and a new Preferences instance will be created. Providing a non-nil value
// allows the preferences of more than one system to be synchronised.
func NewEnvironment(ticker random.Ticker, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Random: random.NewRandom(ticker),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// benchmarking where the initial state must be the same for every run of the
// measurement.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsMainSystem returns true if the environment is intended for the main
// system in the process
func (env *Environment) IsMainSystem() bool {
	return env.Label == ""
}

// IsSystem checks the system label and returns true if it matches
func (env *Environment) IsSystem(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// system is allowed to make log entries. Systems created for comparison or
// verification would otherwise repeat every entry.
func (env *Environment) AllowLogging() bool {
	return env.IsMainSystem()
}
