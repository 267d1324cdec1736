// vec.go --  This file is part of goCSF project.
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
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

// Tol is the magnitude at or below which a coefficient is never stored.
const Tol = 1e-15

// Vec is a sparse linear combination of determinants. Entries keep the
// order in which determinants were first added. A Vec is never modified
// after construction; all operations return new values.
type Vec struct {
	dets  []Det
	coefs []float64
	pos   map[string]int
}

// NewVec builds a vector from parallel determinant/coefficient slices.
// Repeated determinants are summed.
func NewVec(dets []Det, coefs []float64) Vec {
	if len(dets) != len(coefs) {
		panic(fmt.Sprintf("vec: %d determinants for %d coefficients", len(dets), len(coefs)))
	}
	var acc accumulator
	for i, d := range dets {
		acc.add(d, coefs[i])
	}
	return acc.vec()
}

// Zero is the additive identity.
func Zero() Vec { return Vec{} }

func (v Vec) Len() int { return len(v.dets) }

func (v Vec) IsZero() bool { return len(v.dets) == 0 }

func (v Vec) Dets() []Det { return slices.Clone(v.dets) }

func (v Vec) Coefs() []float64 { return slices.Clone(v.coefs) }

func (v Vec) Coef(d Det) float64 {
	if i, ok := v.pos[d.Key()]; ok {
		return v.coefs[i]
	}
	return 0
}

func (v Vec) Has(d Det) bool {
	_, ok := v.pos[d.Key()]
	return ok
}

// Each calls fn for every stored entry in insertion order.
func (v Vec) Each(fn func(d Det, coef float64)) {
	for i, d := range v.dets {
		fn(d, v.coefs[i])
	}
}

func (v Vec) Add(other Vec) Vec {
	var acc accumulator
	v.Each(acc.add)
	other.Each(acc.add)
	return acc.vec()
}

func (v Vec) Sub(other Vec) Vec {
	return v.Add(other.Scale(-1))
}

func (v Vec) Scale(s float64) Vec {
	var acc accumulator
	v.Each(func(d Det, coef float64) {
		acc.add(d, s*coef)
	})
	return acc.vec()
}

// Dot sums products over the common support. Products are accumulated in
// key order so that a.Dot(b) and b.Dot(a) agree to the last bit.
func (v Vec) Dot(other Vec) float64 {
	small, large := v, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	type term struct {
		key  string
		prod float64
	}
	var terms []term
	for i, d := range small.dets {
		if j, ok := large.pos[d.Key()]; ok {
			terms = append(terms, term{d.Key(), small.coefs[i] * large.coefs[j]})
		}
	}
	slices.SortFunc(terms, func(a, b term) int { return strings.Compare(a.key, b.key) })
	sum := 0.0
	for _, t := range terms {
		sum += t.prod
	}
	return sum
}

func (v Vec) Norm() float64 {
	if len(v.coefs) == 0 {
		return 0
	}
	return floats.Norm(v.coefs, 2)
}

// Normalized returns v/|v|; the zero vector stays zero.
func (v Vec) Normalized() Vec {
	n := v.Norm()
	if n == 0 {
		return Vec{}
	}
	return v.Scale(1 / n)
}

// Equal reports whether both vectors store the same coefficients.
func (v Vec) Equal(other Vec) bool {
	if v.Len() != other.Len() {
		return false
	}
	for i, d := range v.dets {
		j, ok := other.pos[d.Key()]
		if !ok || other.coefs[j] != v.coefs[i] {
			return false
		}
	}
	return true
}

func (v Vec) String() string {
	if v.Len() == 0 {
		return "0"
	}
	parts := make([]string, 0, v.Len())
	v.Each(func(d Det, coef float64) {
		if coef == 1 {
			parts = append(parts, d.String())
		} else {
			parts = append(parts, fmt.Sprintf("%14.4e", coef)+d.String())
		}
	})
	return strings.Join(parts, " + ")
}

// accumulator sums coefficients per determinant in first-seen order.
type accumulator struct {
	dets  []Det
	coefs []float64
	pos   map[string]int
}

func (a *accumulator) add(d Det, coef float64) {
	if a.pos == nil {
		a.pos = make(map[string]int)
	}
	if i, ok := a.pos[d.Key()]; ok {
		a.coefs[i] += coef
		return
	}
	a.pos[d.Key()] = len(a.dets)
	a.dets = append(a.dets, d)
	a.coefs = append(a.coefs, coef)
}

func (a *accumulator) vec() Vec {
	var res Vec
	for i, d := range a.dets {
		if math.Abs(a.coefs[i]) <= Tol {
			continue
		}
		if res.pos == nil {
			res.pos = make(map[string]int)
		}
		res.pos[d.Key()] = len(res.dets)
		res.dets = append(res.dets, d)
		res.coefs = append(res.coefs, a.coefs[i])
	}
	return res
}

// Combine returns the linear combination sum_i coefs[i]*vs[i] in one pass.
func Combine(vs []Vec, coefs []float64) Vec {
	if len(vs) != len(coefs) {
		panic(fmt.Sprintf("vec: %d vectors for %d coefficients", len(vs), len(coefs)))
	}
	var acc accumulator
	for i, v := range vs {
		s := coefs[i]
		v.Each(func(d Det, coef float64) {
			acc.add(d, s*coef)
		})
	}
	return acc.vec()
}
