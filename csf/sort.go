// sort.go --  This file is part of goCSF project.
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

// SortCSFs orders the CSFs by descending |coef| (ties keep their order)
// and renumbers the labels 0, 1, ... in order of first appearance.
func SortCSFs[L comparable](csfs []vec.Vec, labels []L, coefs []float64) ([]vec.Vec, []int, []float64) {
	perm := make([]int, len(csfs))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		return cmp.Compare(math.Abs(coefs[b]), math.Abs(coefs[a]))
	})

	sortedCSFs := make([]vec.Vec, len(perm))
	sortedLabels := make([]L, len(perm))
	sortedCoefs := make([]float64, len(perm))
	for n, i := range perm {
		sortedCSFs[n] = csfs[i]
		sortedLabels[n] = labels[i]
		sortedCoefs[n] = coefs[i]
	}
	return sortedCSFs, ReindexLabels(sortedLabels), sortedCoefs
}

// ReindexLabels maps labels to 0, 1, ... in order of first appearance.
func ReindexLabels[L comparable](labels []L) []int {
	ids := make(map[L]int)
	res := make([]int, len(labels))
	for i, label := range labels {
		id, ok := ids[label]
		if !ok {
			id = len(ids)
			ids[label] = id
		}
		res[i] = id
	}
	return res
}
