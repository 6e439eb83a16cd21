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

package cfu_test

import (
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/test"
)

func TestRouterConstruction(t *testing.T) {
	// an empty router is a configuration error
	_, err := cfu.NewRouter(nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cfu.ConfigError))

	// every slot must be filled. detection happens at construction, not at
	// call time
	_, err = cfu.NewRouter([]cfu.Function{identity{cost: 1}, nil, exclusiveOr{}})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cfu.ConfigError))

	rt, err := cfu.NewRouter([]cfu.Function{identity{cost: 1}, exclusiveOr{}})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rt.NumFunctions(), 2)
}

func TestRouterLookup(t *testing.T) {
	// the same function value can serve more than one id
	rt, err := cfu.NewRouter([]cfu.Function{identity{cost: 1}, exclusiveOr{}, exclusiveOr{}})
	test.DemandSuccess(t, err)

	f, err := rt.Lookup(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f.Execute(3, 5), 6)

	f, err = rt.Lookup(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f.Execute(3, 5), 6)

	_, err = rt.Lookup(3)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cfu.ProtocolViolation))
}
