// config.go --  This file is part of goCSF project.
// Mirzaeva Irina, 2023
//
//	goCSF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package vec

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Config is the spatial occupation pattern of a determinant: each occupied
// orbital maps to 1 or 2 electrons regardless of their spins.
type Config struct {
	occs    map[int]int
	orbs    []int
	numOpen int
	key     string
}

func NewConfig(d Det) Config {
	c := Config{occs: make(map[int]int)}
	for _, orb := range d.up {
		c.occs[orb] = 1
	}
	for _, orb := range d.dn {
		c.occs[orb]++
	}
	for orb, occ := range c.occs {
		c.orbs = append(c.orbs, orb)
		if occ == 1 {
			c.numOpen++
		}
	}
	slices.Sort(c.orbs)
	c.key = c.makeKey()
	return c
}

func ConfigFromOrbs(up, dn []int) Config {
	return NewConfig(NewDet(up, dn))
}

// makeKey gives e.g. "1S2_2S2_3S1" for a doubly occupied 1,2 and open 3.
func (c Config) makeKey() string {
	parts := make([]string, len(c.orbs))
	for i, orb := range c.orbs {
		parts[i] = strconv.Itoa(orb) + "S" + strconv.Itoa(c.occs[orb])
	}
	return strings.Join(parts, "_")
}

func (c Config) Key() string    { return c.key }
func (c Config) String() string { return c.key }
func (c Config) NumOpen() int   { return c.numOpen }

func (c Config) Occ(orb int) int { return c.occs[orb] }

func (c Config) Equal(other Config) bool { return c.key == other.key }

func (c Config) Less(other Config) bool { return c.key < other.key }

// Open returns the singly occupied orbitals in ascending order. This is
// the slot order used when instantiating spin-coupling templates.
func (c Config) Open() []int {
	res := make([]int, 0, c.numOpen)
	for _, orb := range c.orbs {
		if c.occs[orb] == 1 {
			res = append(res, orb)
		}
	}
	return res
}

// Closed returns the doubly occupied orbitals in ascending order.
func (c Config) Closed() []int {
	res := make([]int, 0, len(c.orbs)-c.numOpen)
	for _, orb := range c.orbs {
		if c.occs[orb] == 2 {
			res = append(res, orb)
		}
	}
	return res
}
