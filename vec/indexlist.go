// indexlist.go --  This file is part of goCSF project.
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
	"strings"
)

// IndexList assigns dense indices to determinants in first-seen order.
// Adding a determinant twice keeps its first index.
type IndexList struct {
	dets []Det
	idx  map[string]int
}

func NewIndexList(dets ...Det) *IndexList {
	l := &IndexList{idx: make(map[string]int, len(dets))}
	for _, d := range dets {
		l.Add(d)
	}
	return l
}

// Add inserts d if it is new and returns its index.
func (l *IndexList) Add(d Det) int {
	if i, ok := l.idx[d.Key()]; ok {
		return i
	}
	if l.idx == nil {
		l.idx = make(map[string]int)
	}
	l.idx[d.Key()] = len(l.dets)
	l.dets = append(l.dets, d)
	return len(l.dets) - 1
}

func (l *IndexList) Index(d Det) (int, bool) {
	if l == nil {
		return 0, false
	}
	i, ok := l.idx[d.Key()]
	return i, ok
}

func (l *IndexList) At(i int) Det { return l.dets[i] }

func (l *IndexList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.dets)
}

func (l *IndexList) Dets() []Det {
	res := make([]Det, len(l.dets))
	copy(res, l.dets)
	return res
}

// Clone returns an independent copy with the same index assignment.
func (l *IndexList) Clone() *IndexList {
	return NewIndexList(l.dets...)
}

func (l *IndexList) String() string {
	parts := make([]string, len(l.dets))
	for i, d := range l.dets {
		parts[i] = fmt.Sprintf("%s: %d", d, i)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
