// labels.go --  This file is part of goCSF project.
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
	"fmt"
	"math"

	"github.com/mirzaevaiv/gocsf/vec"
	"golang.org/x/exp/slices"
)

// DetLabelTol separates distinct summed orbital energies.
const DetLabelTol = 1e-8

// EnergyLookup returns the energy of a 1-based orbital.
type EnergyLookup func(orb int) (float64, error)

// EnergyTable maps orbitals to energies.
type EnergyTable map[int]float64

func (t EnergyTable) Energy(orb int) (float64, error) {
	e, ok := t[orb]
	if !ok {
		return 0, fmt.Errorf("%w for orbital %d", ErrMissingEnergy, orb)
	}
	return e, nil
}

// SumOrbEnergies adds the energies of every occupied spin orbital of d.
func SumOrbEnergies(d vec.Det, energy EnergyLookup) (float64, error) {
	sum := 0.0
	for _, orbs := range [][]int{d.Up(), d.Dn()} {
		for _, orb := range orbs {
			e, err := energy(orb)
			if err != nil {
				return 0, err
			}
			sum += e
		}
	}
	return sum, nil
}

// DetConfigLabels groups determinants by summed orbital energy. Labels
// start at 1 and grow with energy; determinants within tol of the previous
// one in energy order share its label. The result is indexed like dets.
func DetConfigLabels(dets *vec.IndexList, energy EnergyLookup, tol float64) ([]int, error) {
	type detEnergy struct {
		idx int
		e   float64
	}
	des := make([]detEnergy, dets.Len())
	for i, d := range dets.Dets() {
		e, err := SumOrbEnergies(d, energy)
		if err != nil {
			return nil, err
		}
		des[i] = detEnergy{i, e}
	}
	slices.SortStableFunc(des, func(a, b detEnergy) int { return cmp.Compare(a.e, b.e) })

	labels := make([]int, len(des))
	prev, label := math.Inf(1), 0
	for _, de := range des {
		if math.Abs(de.e-prev) > tol {
			label++
		}
		labels[de.idx] = label
		prev = de.e
	}
	return labels, nil
}
