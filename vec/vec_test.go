// vec_test.go --  This file is part of goCSF project.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	d1 = NewDet([]int{1, 2, 3}, []int{1, 2, 3})
	d2 = NewDet([]int{1, 2, 4}, []int{1, 2, 3})
	d3 = NewDet([]int{1, 2, 3}, []int{1, 2, 4})
)

func TestDetSortedAndEqual(t *testing.T) {
	a := NewDet([]int{3, 1, 2}, []int{2, 1})
	b := NewDet([]int{1, 2, 3}, []int{1, 2})
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, []int{1, 2, 3}, a.Up())
	assert.Equal(t, "|1 2 3; 1 2)", a.String())
	assert.Equal(t, 0.5, a.Sz())
	assert.False(t, d2.Equal(d3))
}

func TestDetUpIsCopy(t *testing.T) {
	up := d1.Up()
	up[0] = 42
	assert.Equal(t, []int{1, 2, 3}, d1.Up())
}

func TestDetQMCString(t *testing.T) {
	d := NewDet([]int{1, 2}, []int{1})
	assert.Equal(t, "   1   2        1", d.QMCString())
}

func TestDetLess(t *testing.T) {
	assert.True(t, d1.Less(d2))
	assert.False(t, d2.Less(d1))
	assert.True(t, d1.Less(d3))
}

func TestVecDropsTinyCoefficients(t *testing.T) {
	v := NewVec([]Det{d1, d2}, []float64{1, 1e-16})
	assert.Equal(t, 1, v.Len())
	assert.False(t, v.Has(d2))
	assert.Equal(t, 0.0, v.Coef(d2))
}

func TestVecAddCancels(t *testing.T) {
	a := d1.Mul(1).Add(d2.Mul(0.5))
	b := d2.Mul(-0.5).Add(d3.Mul(2))
	sum := a.Add(b)
	require.Equal(t, 2, sum.Len())
	assert.False(t, sum.Has(d2))
	assert.Equal(t, []Det{d1, d3}, sum.Dets())
	assert.Equal(t, 2.0, sum.Coef(d3))
}

func TestVecSubSelfIsZero(t *testing.T) {
	a := NewVec([]Det{d1, d2, d3}, []float64{0.3, -0.7, 1e-9})
	diff := a.Sub(a)
	assert.True(t, diff.IsZero())
	assert.Equal(t, 0.0, diff.Norm())
}

func TestVecDotSymmetric(t *testing.T) {
	a := NewVec([]Det{d1, d2, d3}, []float64{0.1, 0.2, 0.3})
	b := NewVec([]Det{d3, d1, d2}, []float64{1.7, -0.4, 2.5})
	assert.Equal(t, a.Dot(b), b.Dot(a))
	assert.InDelta(t, 0.1*-0.4+0.2*2.5+0.3*1.7, a.Dot(b), 1e-15)
	assert.Equal(t, 0.0, a.Dot(Zero()))
	assert.Equal(t, 0.0, Zero().Dot(a))
}

func TestVecTriangleInequality(t *testing.T) {
	a := NewVec([]Det{d1, d2}, []float64{3, 4})
	b := NewVec([]Det{d2, d3}, []float64{-1, 2})
	assert.LessOrEqual(t, a.Add(b).Norm(), a.Norm()+b.Norm())
	assert.InDelta(t, 5.0, a.Norm(), 1e-15)
}

func TestVecScale(t *testing.T) {
	a := NewVec([]Det{d1, d2}, []float64{3, 4})
	assert.True(t, a.Scale(0).IsZero())
	assert.InDelta(t, 1.0, a.Normalized().Norm(), 1e-15)
	assert.True(t, Zero().Normalized().IsZero())
	assert.True(t, a.Scale(2).Equal(a.Add(a)))
}

func TestVecNewSumsRepeats(t *testing.T) {
	v := NewVec([]Det{d1, d1}, []float64{0.5, 0.25})
	assert.Equal(t, 0.75, v.Coef(d1))
}

func TestVecValueSemantics(t *testing.T) {
	a := d1.Mul(1)
	b := a.Add(d2.Mul(1))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
	coefs := b.Coefs()
	coefs[0] = math.NaN()
	assert.Equal(t, 1.0, b.Coef(d1))
}

func TestVecString(t *testing.T) {
	assert.Equal(t, "0", Zero().String())
	assert.Equal(t, "|1 2 3; 1 2 3)", d1.Mul(1).String())
}

func TestCombine(t *testing.T) {
	a := NewVec([]Det{d1, d2}, []float64{1, 1})
	b := NewVec([]Det{d2, d3}, []float64{1, -1})
	got := Combine([]Vec{a, b}, []float64{2, -2})
	want := a.Scale(2).Sub(b.Scale(2))
	assert.True(t, got.Equal(want))
	assert.False(t, got.Has(d2))
	assert.True(t, Combine(nil, nil).IsZero())
}
