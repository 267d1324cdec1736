// overlap.go --  This file is part of goCSF project.
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
	"github.com/james-bowman/sparse"
	"github.com/mirzaevaiv/gocsf/vec"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Overlap is the projector from determinant space onto the candidate CSFs:
// one row per CSF, normalized, one column per indexed determinant.
type Overlap interface {
	mat.Matrix
	NNZ() int
}

// Backend builds and applies the overlap matrix in one storage format.
type Backend interface {
	Rep() MatrixRep
	// Build indexes the columns starting from a copy of seed, then every
	// determinant of csfs in CSF order.
	Build(csfs []vec.Vec, seed *vec.IndexList) (*vec.IndexList, Overlap)
	// Apply returns P·c.
	Apply(p Overlap, c []float64) []float64
	// ProjectionResidual returns |(I - PᵗP)c|².
	ProjectionResidual(p Overlap, c []float64) float64
}

func NewBackend(rep MatrixRep) (Backend, error) {
	switch rep {
	case Dense:
		return denseBackend{}, nil
	case Sparse:
		return sparseBackend{}, nil
	}
	return nil, &UnknownMatrixRepresentationError{Rep: rep}
}

// DetIndicesFromCSFs adds the support of every CSF to dets in CSF order.
func DetIndicesFromCSFs(csfs []vec.Vec, dets *vec.IndexList) *vec.IndexList {
	for _, csf := range csfs {
		csf.Each(func(d vec.Det, _ float64) {
			dets.Add(d)
		})
	}
	return dets
}

func columns(csfs []vec.Vec, seed *vec.IndexList) *vec.IndexList {
	if seed == nil {
		return DetIndicesFromCSFs(csfs, vec.NewIndexList())
	}
	return DetIndicesFromCSFs(csfs, seed.Clone())
}

type denseOverlap struct {
	*mat.Dense
}

func (d denseOverlap) NNZ() int {
	n := 0
	r, c := d.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if d.At(i, j) != 0 {
				n++
			}
		}
	}
	return n
}

type denseBackend struct{}

func (denseBackend) Rep() MatrixRep { return Dense }

func (denseBackend) Build(csfs []vec.Vec, seed *vec.IndexList) (*vec.IndexList, Overlap) {
	dets := columns(csfs, seed)
	m := mat.NewDense(len(csfs), dets.Len(), nil)
	for n, csf := range csfs {
		norm := csf.Norm()
		csf.Each(func(d vec.Det, coef float64) {
			j, _ := dets.Index(d)
			m.Set(n, j, coef/norm)
		})
	}
	return dets, denseOverlap{m}
}

func (denseBackend) Apply(p Overlap, c []float64) []float64 {
	var y mat.VecDense
	y.MulVec(p, mat.NewVecDense(len(c), c))
	return y.RawVector().Data
}

func (denseBackend) ProjectionResidual(p Overlap, c []float64) float64 {
	n := len(c)
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	var ptp, errOp mat.Dense
	ptp.Mul(p.T(), p)
	errOp.Sub(mat.NewDiagDense(n, ones), &ptp)

	var r mat.VecDense
	r.MulVec(&errOp, mat.NewVecDense(n, c))
	return mat.Dot(&r, &r)
}

// sparseBackend stores the overlap as a *sparse.CSR, which already
// satisfies Overlap.
type sparseBackend struct{}

func (sparseBackend) Rep() MatrixRep { return Sparse }

func (sparseBackend) Build(csfs []vec.Vec, seed *vec.IndexList) (*vec.IndexList, Overlap) {
	dets := columns(csfs, seed)
	var rows, cols []int
	var coefs []float64
	for n, csf := range csfs {
		norm := csf.Norm()
		csf.Each(func(d vec.Det, coef float64) {
			j, _ := dets.Index(d)
			rows = append(rows, n)
			cols = append(cols, j)
			coefs = append(coefs, coef/norm)
		})
	}
	return dets, sparse.NewCOO(len(csfs), dets.Len(), rows, cols, coefs).ToCSR()
}

func (sparseBackend) Apply(p Overlap, c []float64) []float64 {
	s, ok := p.(*sparse.CSR)
	if !ok {
		return denseBackend{}.Apply(p, c)
	}
	r, _ := s.Dims()
	y := make([]float64, r)
	s.MulVecTo(y, false, c)
	return y
}

func (sparseBackend) ProjectionResidual(p Overlap, c []float64) float64 {
	s, ok := p.(*sparse.CSR)
	if !ok {
		return denseBackend{}.ProjectionResidual(p, c)
	}
	r, _ := s.Dims()
	pc := make([]float64, r)
	s.MulVecTo(pc, false, c)
	res := make([]float64, len(c))
	s.MulVecTo(res, true, pc)
	floats.SubTo(res, c, res)
	return floats.Dot(res, res)
}
