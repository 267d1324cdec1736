// labels_test.go --  This file is part of goCSF project.
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
	"testing"

	"github.com/mirzaevaiv/gocsf/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetConfigLabels(t *testing.T) {
	energies := EnergyTable{1: -2.0, 2: -1.0, 3: 0.5, 4: 0.5}
	dets := vec.NewIndexList(
		det([]int{1, 3}, []int{1}), // -3.5
		det([]int{1}, []int{1}),    // -4.0
		det([]int{1, 4}, []int{1}), // -3.5
		det([]int{1, 2}, []int{1}), // -5.0
	)
	labels, err := DetConfigLabels(dets, energies.Energy, DetLabelTol)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 3, 1}, labels)
}

func TestDetConfigLabelsMissingEnergy(t *testing.T) {
	dets := vec.NewIndexList(det([]int{1, 9}, []int{1}))
	_, err := DetConfigLabels(dets, EnergyTable{1: -1}.Energy, DetLabelTol)
	assert.ErrorIs(t, err, ErrMissingEnergy)
}

func TestSumOrbEnergies(t *testing.T) {
	e, err := SumOrbEnergies(det([]int{1, 2}, []int{1}), EnergyTable{1: -1, 2: 0.25}.Energy)
	require.NoError(t, err)
	assert.Equal(t, -1.75, e)
}
