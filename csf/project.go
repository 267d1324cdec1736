// project.go --  This file is part of goCSF project.
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
	"fmt"

	"github.com/mirzaevaiv/gocsf/vec"
)

// ReindexCoefs lays the wavefunction coefficients out in the column order
// of dets. Indexed determinants absent from wf stay zero.
func ReindexCoefs(dets *vec.IndexList, wf []Term) ([]float64, error) {
	c := make([]float64, dets.Len())
	for _, t := range wf {
		i, ok := dets.Index(t.Det)
		if !ok {
			return nil, fmt.Errorf("determinant %s has no overlap column", t.Det)
		}
		c[i] = t.Coef
	}
	return c, nil
}

// Project returns one provisional coefficient per CSF row of p.
func Project(b Backend, p Overlap, c []float64) []float64 {
	return b.Apply(p, c)
}
