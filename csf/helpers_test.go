// helpers_test.go --  This file is part of goCSF project.
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
package csf

import (
	"math"

	"github.com/mirzaevaiv/gocsf/vec"
)

var sqrtHalf = 1 / math.Sqrt2

func det(up, dn []int) vec.Det { return vec.NewDet(up, dn) }

func combo(dets []vec.Det, coefs ...float64) vec.Vec { return vec.NewVec(dets, coefs) }

// closedShell is the only template with no open shells.
func closedShell() vec.Vec { return det(nil, nil).Mul(1) }

// twoOpenSinglet and twoOpenTriplet couple two open shells with Sz=0.
func twoOpenSinglet() vec.Vec {
	return combo([]vec.Det{det([]int{1}, []int{2}), det([]int{2}, []int{1})}, sqrtHalf, sqrtHalf)
}

func twoOpenTriplet() vec.Vec {
	return combo([]vec.Det{det([]int{1}, []int{2}), det([]int{2}, []int{1})}, sqrtHalf, -sqrtHalf)
}

func table(twiceS int, tmpls ...vec.Vec) *TemplateTable {
	t := NewTemplateTable()
	for _, tmpl := range tmpls {
		if err := t.Add(twiceS, tmpl); err != nil {
			panic(err)
		}
	}
	return t
}

// countingSource records whether templates were requested.
type countingSource struct {
	TemplateSource
	calls int
}

func (c *countingSource) Templates(maxOpen, twiceS int) ([]vec.Vec, error) {
	c.calls++
	return c.TemplateSource.Templates(maxOpen, twiceS)
}
