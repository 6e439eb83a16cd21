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

package cfu

import (
	"fmt"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
)

// Sentinal errors for configuration problems. Configuration errors are
// detected when the unit is assembled, never at call time.
const (
	ConfigError = "cfu: configuration: %s"
)

// Router maps a function id to one of the functions sharing the unit's
// register interface. Routing is static and total. Every id in the range
// [0, NumFunctions) resolves to a function, a condition checked once at
// construction.
//
// The same Function value may be registered under more than one id.
type Router struct {
	functions []Function
}

// NewRouter is the preferred method of initialisation for the Router type.
//
// Every slot in the functions slice must be filled. A nil slot or an empty
// slice is a configuration error.
func NewRouter(functions []Function) (*Router, error) {
	if len(functions) == 0 {
		return nil, curated.Errorf(ConfigError, "router has no functions")
	}

	for id, f := range functions {
		if f == nil {
			return nil, curated.Errorf(ConfigError, fmt.Sprintf("no function registered for id %d", id))
		}
	}

	rt := &Router{
		functions: make([]Function, len(functions)),
	}
	copy(rt.functions, functions)

	return rt, nil
}

// NumFunctions returns the number of routable function ids.
func (rt *Router) NumFunctions() int {
	return len(rt.functions)
}

// Lookup the function registered for the id. Dispatch is by index. There is
// no computation and no name comparison on this path.
func (rt *Router) Lookup(id FunctionID) (Function, error) {
	if id >= FunctionID(len(rt.functions)) {
		return nil, curated.Errorf(ProtocolViolation, fmt.Sprintf("no function with id %d", id))
	}
	return rt.functions[id], nil
}
