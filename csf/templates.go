// templates.go --  This file is part of goCSF project.
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
	"fmt"

	"github.com/mirzaevaiv/gocsf/vec"
	"golang.org/x/exp/slices"
)

// TemplateSource provides canonical CSFs written over abstract open-shell
// slots 1..n. Slot k stands for the k-th singly occupied orbital of a
// configuration; doubly occupied orbitals do not appear.
type TemplateSource interface {
	Templates(maxOpen, twiceS int) ([]vec.Vec, error)
}

// TemplateTable is an in-memory TemplateSource.
type TemplateTable struct {
	byTwiceS map[int][]vec.Vec
}

func NewTemplateTable() *TemplateTable {
	return &TemplateTable{byTwiceS: make(map[int][]vec.Vec)}
}

// Add registers a template for total spin twiceS/2.
func (t *TemplateTable) Add(twiceS int, tmpl vec.Vec) error {
	if _, err := TemplateOpen(tmpl); err != nil {
		return err
	}
	t.byTwiceS[twiceS] = append(t.byTwiceS[twiceS], tmpl)
	return nil
}

func (t *TemplateTable) Len() int {
	n := 0
	for _, tmpls := range t.byTwiceS {
		n += len(tmpls)
	}
	return n
}

// Templates returns every registered template for twiceS with at most
// maxOpen open shells, in registration order.
func (t *TemplateTable) Templates(maxOpen, twiceS int) ([]vec.Vec, error) {
	var res []vec.Vec
	for _, tmpl := range t.byTwiceS[twiceS] {
		n, _ := TemplateOpen(tmpl)
		if n <= maxOpen {
			res = append(res, tmpl)
		}
	}
	return res, nil
}

// TemplateOpen returns the open-shell count of a template: the number of
// slots in each of its determinants. All determinants must use the same
// slots 1..n exactly once.
func TemplateOpen(tmpl vec.Vec) (int, error) {
	if tmpl.IsZero() {
		return 0, fmt.Errorf("%w: empty template", ErrInvalidTemplate)
	}
	n := -1
	for _, d := range tmpl.Dets() {
		slots := append(d.Up(), d.Dn()...)
		if n < 0 {
			n = len(slots)
		}
		if len(slots) != n {
			return 0, fmt.Errorf("%w: %v mixes open-shell counts", ErrInvalidTemplate, tmpl)
		}
		slices.Sort(slots)
		for i, s := range slots {
			if s != i+1 {
				return 0, fmt.Errorf("%w: %s does not fill slots 1..%d", ErrInvalidTemplate, d, n)
			}
		}
	}
	return n, nil
}

// Instantiate maps a template onto the orbitals of config: slot k becomes
// the k-th open orbital and every closed orbital is added to both spins.
// The result is normalized.
func Instantiate(tmpl vec.Vec, config vec.Config) vec.Vec {
	open, closed := config.Open(), config.Closed()
	dets := make([]vec.Det, 0, tmpl.Len())
	coefs := make([]float64, 0, tmpl.Len())
	tmpl.Each(func(d vec.Det, coef float64) {
		up, dn := slices.Clone(closed), slices.Clone(closed)
		for _, s := range d.Up() {
			up = append(up, open[s-1])
		}
		for _, s := range d.Dn() {
			dn = append(dn, open[s-1])
		}
		dets = append(dets, vec.NewDet(up, dn))
		coefs = append(coefs, coef)
	})
	return vec.NewVec(dets, coefs).Normalized()
}

// ConfigsToCSFs instantiates every template whose open-shell count matches
// each configuration. The returned labels are the configuration keys, one
// per CSF.
func ConfigsToCSFs(configs []vec.Config, templates []vec.Vec, twiceS int) ([]vec.Vec, []string, error) {
	byOpen := make(map[int][]vec.Vec)
	for _, tmpl := range templates {
		n, err := TemplateOpen(tmpl)
		if err != nil {
			return nil, nil, err
		}
		byOpen[n] = append(byOpen[n], tmpl)
	}
	var csfs []vec.Vec
	var labels []string
	for _, config := range configs {
		tmpls := byOpen[config.NumOpen()]
		if len(tmpls) == 0 {
			return nil, nil, &MissingSpinCouplingDataError{NumOpen: config.NumOpen(), TwiceS: twiceS}
		}
		for _, tmpl := range tmpls {
			csfs = append(csfs, Instantiate(tmpl, config))
			labels = append(labels, config.Key())
		}
	}
	return csfs, labels, nil
}
