// errmetric.go --  This file is part of goCSF project.
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
	"github.com/mirzaevaiv/gocsf/vec"
	"gonum.org/v1/gonum/floats"
)

// ProjError is the fraction of |c|² outside the row space of p.
func ProjError(b Backend, p Overlap, c []float64) float64 {
	return b.ProjectionResidual(p, c) / floats.Dot(c, c)
}

// DirectError compares the determinant expansion with the CSF expansion
// directly: |wf - sum coef*csf|² / |wf|².
func DirectError(wf []Term, csfs []vec.Vec, coefs []float64) float64 {
	wfVec := WavefunctionVec(wf)
	negCoefs := make([]float64, len(coefs))
	for i, c := range coefs {
		negCoefs[i] = -c
	}
	diff := wfVec.Add(vec.Combine(csfs, negCoefs))
	dnorm, wnorm := diff.Norm(), wfVec.Norm()
	return dnorm * dnorm / (wnorm * wnorm)
}
