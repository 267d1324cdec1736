// rotate.go --  This file is part of goCSF project.
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
	"math"

	"github.com/mirzaevaiv/gocsf/vec"
	"gonum.org/v1/gonum/mat"
)

// Rotated is the outcome of RotateCSFs. CSFs, Coefs and Labels are parallel.
type Rotated struct {
	CSFs   []vec.Vec
	Coefs  []float64
	Labels []string
	// OrthoErr sums |G - I|_F of every configuration's basis.
	OrthoErr float64
}

type subspace struct {
	label string
	csfs  []vec.Vec
	coefs []float64
}

// RotateCSFs replaces the CSFs of each configuration by an orthonormal
// basis whose first vector points along the wavefunction's component in
// that configuration. Only the first vector carries a coefficient. With
// ReduceCSFs set the basis is that vector alone. Configurations whose
// component is not above CsfTol are dropped.
func RotateCSFs(csfs []vec.Vec, labels []string, coefs []float64, cfg Config) Rotated {
	if len(csfs) != len(labels) || len(csfs) != len(coefs) {
		panic(fmt.Sprintf("csf: rotate got %d csfs, %d labels, %d coefs", len(csfs), len(labels), len(coefs)))
	}

	var order []*subspace
	byLabel := make(map[string]*subspace)
	for i, label := range labels {
		s, ok := byLabel[label]
		if !ok {
			s = &subspace{label: label}
			byLabel[label] = s
			order = append(order, s)
		}
		s.csfs = append(s.csfs, csfs[i])
		s.coefs = append(s.coefs, coefs[i])
	}

	var res Rotated
	for _, s := range order {
		rotated := vec.Combine(s.csfs, s.coefs)
		rotatedCoef := rotated.Norm()

		candidates := append([]vec.Vec{rotated.Normalized()}, s.csfs...)
		dim := len(s.csfs)
		if cfg.ReduceCSFs {
			dim = 1
		}
		basis := GramSchmidt(candidates, dim, cfg.OrthoTol)
		res.OrthoErr += CheckOrthonormal(basis)
		if math.Abs(rotatedCoef) <= cfg.CsfTol {
			continue
		}
		for n, b := range basis {
			coef := 0.0
			if n == 0 {
				coef = rotatedCoef
			}
			res.CSFs = append(res.CSFs, b)
			res.Coefs = append(res.Coefs, coef)
			res.Labels = append(res.Labels, s.label)
		}
	}
	return res
}

// GramSchmidt orthonormalizes vecs in order, skipping any whose residual
// norm is at most tol, and stops after dim accepted vectors.
func GramSchmidt(vecs []vec.Vec, dim int, tol float64) []vec.Vec {
	var basis []vec.Vec
	for _, v := range vecs {
		if len(basis) >= dim {
			break
		}
		for _, b := range basis {
			v = v.Sub(b.Scale(b.Dot(v)))
		}
		norm := v.Norm()
		if norm <= tol {
			continue
		}
		basis = append(basis, v.Scale(1/norm))
	}
	return basis
}

// CheckOrthonormal returns the Frobenius norm of the Gram matrix of csfs
// minus the identity.
func CheckOrthonormal(csfs []vec.Vec) float64 {
	n := len(csfs)
	if n == 0 {
		return 0
	}
	g := mat.NewDense(n, n, nil)
	for i := range csfs {
		for j := range csfs {
			v := csfs[i].Dot(csfs[j])
			if i == j {
				v--
			}
			g.Set(i, j, v)
		}
	}
	return mat.Norm(g, 2)
}
