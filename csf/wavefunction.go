// wavefunction.go --  This file is part of goCSF project.
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
	"cmp"
	"math"

	"github.com/mirzaevaiv/gocsf/vec"
	"golang.org/x/exp/slices"
)

// Term is one determinant of the input wavefunction with its coefficient.
type Term struct {
	Det  vec.Det
	Coef float64
}

// Truncate keeps the terms with |coef| > tol and checks that they share
// one Sz.
func Truncate(wf []Term, tol float64) ([]Term, error) {
	var res []Term
	for _, t := range wf {
		if math.Abs(t.Coef) > tol {
			res = append(res, t)
		}
	}
	if len(res) == 0 {
		return nil, ErrEmptyWavefunction
	}
	if _, err := TwiceSz(Dets(res)); err != nil {
		return nil, err
	}
	return res, nil
}

// TwiceSz returns round(2*Sz) shared by all dets.
func TwiceSz(dets []vec.Det) (int, error) {
	var vals []int
	for _, d := range dets {
		v := int(math.Round(2 * d.Sz()))
		if !slices.Contains(vals, v) {
			vals = append(vals, v)
		}
	}
	switch len(vals) {
	case 0:
		return 0, ErrEmptyWavefunction
	case 1:
		return vals[0], nil
	}
	slices.Sort(vals)
	return 0, &MixedSpinError{TwiceSz: vals}
}

func Dets(wf []Term) []vec.Det {
	res := make([]vec.Det, len(wf))
	for i, t := range wf {
		res[i] = t.Det
	}
	return res
}

// WeightOrder indexes the determinants by descending |coef|; ties keep
// input order.
func WeightOrder(wf []Term) *vec.IndexList {
	sorted := slices.Clone(wf)
	slices.SortStableFunc(sorted, func(a, b Term) int {
		return cmp.Compare(math.Abs(b.Coef), math.Abs(a.Coef))
	})
	return vec.NewIndexList(Dets(sorted)...)
}

// WavefunctionVec sums the terms into a single vector.
func WavefunctionVec(wf []Term) vec.Vec {
	coefs := make([]float64, len(wf))
	for i, t := range wf {
		coefs[i] = t.Coef
	}
	return vec.NewVec(Dets(wf), coefs)
}

// Configs lists the distinct configurations of dets in first-seen order.
func Configs(dets []vec.Det) []vec.Config {
	var res []vec.Config
	seen := make(map[string]bool)
	for _, d := range dets {
		c := vec.NewConfig(d)
		if !seen[c.Key()] {
			seen[c.Key()] = true
			res = append(res, c)
		}
	}
	return res
}
