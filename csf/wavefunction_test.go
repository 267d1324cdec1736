// wavefunction_test.go --  This file is part of goCSF project.
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
	"errors"
	"testing"

	"github.com/mirzaevaiv/gocsf/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	wf := []Term{
		{det([]int{1}, []int{1}), 0.9},
		{det([]int{2}, []int{2}), 1e-9},
		{det([]int{1}, []int{2}), -0.3},
	}
	got, err := Truncate(wf, 1e-8)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, -0.3, got[1].Coef)
}

func TestTruncateEmpty(t *testing.T) {
	_, err := Truncate([]Term{{det([]int{1}, []int{1}), 1e-12}}, 1e-8)
	assert.ErrorIs(t, err, ErrEmptyWavefunction)
}

func TestTruncateMixedSpin(t *testing.T) {
	wf := []Term{
		{det([]int{1}, []int{1}), 0.9},
		{det([]int{1, 2}, []int{1}), 0.1},
	}
	_, err := Truncate(wf, 1e-8)
	var mixed *MixedSpinError
	require.True(t, errors.As(err, &mixed))
	assert.Equal(t, []int{0, 1}, mixed.TwiceSz)

	// the offending determinant is below tolerance, so it is not checked
	wf[1].Coef = 1e-10
	_, err = Truncate(wf, 1e-8)
	assert.NoError(t, err)
}

func TestTwiceSz(t *testing.T) {
	s, err := TwiceSz([]vec.Det{det([]int{1, 2, 3}, []int{1}), det([]int{1, 2, 4}, []int{3})})
	require.NoError(t, err)
	assert.Equal(t, 2, s)
}

func TestWeightOrder(t *testing.T) {
	a, b, c := det([]int{1}, []int{1}), det([]int{2}, []int{2}), det([]int{3}, []int{3})
	idx := WeightOrder([]Term{{a, 0.1}, {b, -0.8}, {c, 0.1}})
	assert.Equal(t, []vec.Det{b, a, c}, idx.Dets())
}

func TestConfigsFirstSeen(t *testing.T) {
	dets := []vec.Det{
		det([]int{1}, []int{2}),
		det([]int{1}, []int{1}),
		det([]int{2}, []int{1}),
	}
	configs := Configs(dets)
	require.Len(t, configs, 2)
	assert.Equal(t, "1S1_2S1", configs[0].Key())
	assert.Equal(t, "1S2", configs[1].Key())
}
