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

package resources

import (
	"os"
)

// the portable path is used as the base resource path if a directory of this
// name is present in the current working directory
const portablePath = ".cfubench"

func checkPortable() bool {
	s, err := os.Stat(portablePath)
	if err != nil {
		return false
	}
	return s.IsDir()
}
