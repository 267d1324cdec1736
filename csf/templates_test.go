// templates_test.go --  This file is part of goCSF project.
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

func TestTemplateOpen(t *testing.T) {
	n, err := TemplateOpen(twoOpenSinglet())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = TemplateOpen(closedShell())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = TemplateOpen(vec.Zero())
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	_, err = TemplateOpen(det([]int{1}, []int{3}).Mul(1))
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	mixed := det([]int{1}, []int{2}).Mul(1).Add(det([]int{1, 2, 3}, nil).Mul(1))
	_, err = TemplateOpen(mixed)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestTemplateTable(t *testing.T) {
	four := combo([]vec.Det{det([]int{1, 2}, []int{3, 4})}, 1)
	tbl := table(0, closedShell(), twoOpenSinglet(), four)
	require.NoError(t, tbl.Add(1, det([]int{1}, nil).Mul(1)))
	assert.Equal(t, 4, tbl.Len())

	got, err := tbl.Templates(2, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = tbl.Templates(4, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = tbl.Templates(4, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.ErrorIs(t, tbl.Add(0, vec.Zero()), ErrInvalidTemplate)
}

func TestInstantiate(t *testing.T) {
	config := vec.ConfigFromOrbs([]int{1, 2, 4}, []int{1, 2, 3})
	csf := Instantiate(twoOpenTriplet(), config)

	a := det([]int{1, 2, 3}, []int{1, 2, 4})
	b := det([]int{1, 2, 4}, []int{1, 2, 3})
	require.Equal(t, 2, csf.Len())
	assert.InDelta(t, sqrtHalf, csf.Coef(a), 1e-15)
	assert.InDelta(t, -sqrtHalf, csf.Coef(b), 1e-15)
}

func TestInstantiateNormalizes(t *testing.T) {
	tmpl := combo([]vec.Det{det([]int{1, 2}, []int{3}), det([]int{1, 3}, []int{2})}, 1, 1)
	csf := Instantiate(tmpl, vec.ConfigFromOrbs([]int{2, 5}, []int{7}))
	assert.InDelta(t, 1.0, csf.Norm(), 1e-15)
	assert.True(t, csf.Has(det([]int{2, 5}, []int{7})))
	assert.True(t, csf.Has(det([]int{2, 7}, []int{5})))
}

func TestConfigsToCSFs(t *testing.T) {
	configs := []vec.Config{
		vec.ConfigFromOrbs([]int{1}, []int{2}),
		vec.ConfigFromOrbs([]int{1}, []int{1}),
	}
	csfs, labels, err := ConfigsToCSFs(configs, []vec.Vec{twoOpenSinglet(), closedShell(), twoOpenTriplet()}, 0)
	require.NoError(t, err)
	require.Len(t, csfs, 3)
	assert.Equal(t, []string{"1S1_2S1", "1S1_2S1", "1S2"}, labels)
	assert.True(t, csfs[2].Equal(det([]int{1}, []int{1}).Mul(1)))
}

func TestConfigsToCSFsMissingTemplate(t *testing.T) {
	configs := []vec.Config{vec.ConfigFromOrbs([]int{1}, []int{2})}
	_, _, err := ConfigsToCSFs(configs, []vec.Vec{closedShell()}, 0)

	var missing *MissingSpinCouplingDataError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 2, missing.NumOpen)
	assert.Equal(t, 0, missing.TwiceS)
}
