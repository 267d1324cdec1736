// det.go --  This file is part of goCSF project.
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

// Package vec holds the determinant algebra: Slater determinants, sparse
// vectors over them, spatial configurations and insertion-ordered indices.
package vec

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Det is a Slater determinant given by its up- and down-spin occupied
// orbitals (1-based). Both sets are kept sorted, so two determinants with
// the same occupations are equal no matter how they were built.
type Det struct {
	up, dn []int
	key    string
}

// NewDet sorts up and dn. An orbital repeated within one channel is kept
// once, so input parsers reject repeats before calling it.
func NewDet(up, dn []int) Det {
	d := Det{up: occSet(up), dn: occSet(dn)}
	d.key = d.repr()
	return d
}

func occSet(orbs []int) []int {
	res := slices.Clone(orbs)
	slices.Sort(res)
	return slices.Compact(res)
}

func (d Det) Up() []int { return slices.Clone(d.up) }
func (d Det) Dn() []int { return slices.Clone(d.dn) }

func (d Det) NumUp() int { return len(d.up) }
func (d Det) NumDn() int { return len(d.dn) }

// Sz = (n_up - n_dn)/2
func (d Det) Sz() float64 {
	return float64(len(d.up)-len(d.dn)) / 2
}

// Key is the canonical string used for equality and hashing.
func (d Det) Key() string {
	if d.key == "" {
		return d.repr()
	}
	return d.key
}

func (d Det) Equal(other Det) bool {
	return d.Key() == other.Key()
}

// Less orders determinants for display only.
func (d Det) Less(other Det) bool {
	if c := slices.Compare(d.up, other.up); c != 0 {
		return c < 0
	}
	return slices.Compare(d.dn, other.dn) < 0
}

// Mul returns coef*|d> as a vector.
func (d Det) Mul(coef float64) Vec {
	return NewVec([]Det{d}, []float64{coef})
}

func (d Det) String() string {
	return d.Key()
}

func (d Det) repr() string {
	var sb strings.Builder
	sb.WriteString("|")
	writeOrbs(&sb, d.up)
	sb.WriteString("; ")
	writeOrbs(&sb, d.dn)
	sb.WriteString(")")
	return sb.String()
}

func writeOrbs(sb *strings.Builder, orbs []int) {
	for i, orb := range orbs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(orb))
	}
}

// QMCString renders the determinant in the fixed-width form expected by
// the Monte Carlo input: up orbitals, a five-space gap, down orbitals.
func (d Det) QMCString() string {
	var sb strings.Builder
	for _, orb := range d.up {
		fmt.Fprintf(&sb, "%4d", orb)
	}
	sb.WriteString("     ")
	for _, orb := range d.dn {
		fmt.Fprintf(&sb, "%4d", orb)
	}
	return sb.String()
}
