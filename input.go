// input.go --  This file is part of goCSF project.
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
package main

import (
	"strconv"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/mirzaevaiv/gocsf/csf"
	"github.com/mirzaevaiv/gocsf/vec"
)

type input struct {
	cfg       csf.Config
	wf        []csf.Term
	templates *csf.TemplateTable
	energies  csf.EnergyTable
}

type block struct {
	start, end int
}

// processInput parses the Options, Wavefunction, CSF and Energies blocks.
// Options override the values already in cfg.
func processInput(data []string, cfg csf.Config) (*input, error) {
	blocks := map[string]block{}
	for i := 0; i < len(data); i++ {
		words := strings.Fields(stripComment(data[i]))
		if len(words) == 0 {
			continue
		}
		name := strings.ToLower(words[0])
		switch name {
		case "options", "wavefunction", "csf", "energies":
			if _, ok := blocks[name]; ok {
				return nil, errors.Errorf("line %d: duplicate %s block", i+1, words[0])
			}
			end, err := findBlockEnd(i, data, words[0])
			if err != nil {
				return nil, err
			}
			blocks[name] = block{i + 1, end}
			level.Debug(logger).Log("msg", "parsing input", "block", name, "start", i+1, "end", end+1)
			i = end
		}
	}

	inp := &input{cfg: cfg, templates: csf.NewTemplateTable(), energies: csf.EnergyTable{}}
	if b, ok := blocks["options"]; ok {
		if err := parseOptions(data, b, &inp.cfg); err != nil {
			return nil, err
		}
		if err := inp.cfg.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid options")
		}
	}

	b, ok := blocks["wavefunction"]
	if !ok {
		return nil, errors.New("parsing input: no Wavefunction block found")
	}
	wf, err := parseWavefunction(data, b)
	if err != nil {
		return nil, err
	}
	inp.wf = wf

	b, ok = blocks["csf"]
	if !ok {
		return nil, errors.New("parsing input: no CSF block found")
	}
	if err := parseTemplates(data, b, inp.templates); err != nil {
		return nil, err
	}

	if b, ok := blocks["energies"]; ok {
		if err := parseEnergies(data, b, inp.energies); err != nil {
			return nil, err
		}
	}
	return inp, nil
}

// stripComment drops a trailing "# ..." and pads ";" so it splits as a
// field of its own.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.ReplaceAll(line, ";", " ; ")
}

func findBlockEnd(n int, data []string, bname string) (int, error) {
	for i := n + 1; i < len(data); i++ {
		words := strings.Fields(stripComment(data[i]))
		if len(words) > 0 && strings.ToLower(words[0]) == "end" {
			return i, nil
		}
	}
	return 0, errors.Errorf("no end of block %s", bname)
}

// blockLines calls fn with the line number and fields of every non-empty
// line of b.
func blockLines(data []string, b block, fn func(n int, words []string) error) error {
	for i := b.start; i < b.end; i++ {
		words := strings.Fields(stripComment(data[i]))
		if len(words) == 0 {
			continue
		}
		if err := fn(i+1, words); err != nil {
			return err
		}
	}
	return nil
}

func parseOptions(data []string, b block, cfg *csf.Config) error {
	return blockLines(data, b, func(n int, words []string) error {
		if len(words) != 2 {
			return errors.Errorf("line %d: expected \"key value\"", n)
		}
		return errors.Wrapf(cfg.Set(words[0], words[1]), "line %d", n)
	})
}

// parseOrbs reads orbital lists separated by ";", e.g. "1 2 ; 1 3".
func parseOrbs(words []string) (up, dn []int, err error) {
	sep := -1
	for i, w := range words {
		if w == ";" {
			if sep >= 0 {
				return nil, nil, errors.New("more than one \";\"")
			}
			sep = i
		}
	}
	if sep < 0 {
		return nil, nil, errors.New("missing \";\" between up and down orbitals")
	}
	if up, err = atoiAll(words[:sep]); err != nil {
		return nil, nil, err
	}
	if dn, err = atoiAll(words[sep+1:]); err != nil {
		return nil, nil, err
	}
	return up, dn, nil
}

// atoiAll reads the orbitals of one spin channel. Orbitals are 1-based and
// may appear only once.
func atoiAll(words []string) ([]int, error) {
	res := make([]int, len(words))
	for i, w := range words {
		v, err := strconv.Atoi(w)
		if err != nil {
			return nil, errors.Wrapf(err, "bad orbital %q", w)
		}
		if v < 1 {
			return nil, errors.Errorf("orbital %d out of range, orbitals start at 1", v)
		}
		if slices.Contains(res[:i], v) {
			return nil, errors.Errorf("orbital %d occupied twice in one spin channel", v)
		}
		res[i] = v
	}
	return res, nil
}

func parseWavefunction(data []string, b block) ([]csf.Term, error) {
	var wf []csf.Term
	err := blockLines(data, b, func(n int, words []string) error {
		coef, err := strconv.ParseFloat(words[0], 64)
		if err != nil {
			return errors.Wrapf(err, "line %d: bad coefficient", n)
		}
		up, dn, err := parseOrbs(words[1:])
		if err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
		wf = append(wf, csf.Term{Det: vec.NewDet(up, dn), Coef: coef})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(wf) == 0 {
		return nil, errors.New("parsing input: empty Wavefunction block")
	}
	return wf, nil
}

type templateRows struct {
	twiceS int
	dets   []vec.Det
	coefs  []float64
}

// parseTemplates groups "id coef up ; dn" lines by id, in first-seen
// order, and registers each group under the 2S of its determinants.
func parseTemplates(data []string, b block, table *csf.TemplateTable) error {
	var ids []string
	groups := map[string]*templateRows{}
	err := blockLines(data, b, func(n int, words []string) error {
		if len(words) < 3 {
			return errors.Errorf("line %d: expected \"id coef up ; dn\"", n)
		}
		coef, err := strconv.ParseFloat(words[1], 64)
		if err != nil {
			return errors.Wrapf(err, "line %d: bad coefficient", n)
		}
		up, dn, err := parseOrbs(words[2:])
		if err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
		d := vec.NewDet(up, dn)
		twiceS := d.NumUp() - d.NumDn()
		g, ok := groups[words[0]]
		if !ok {
			g = &templateRows{twiceS: twiceS}
			groups[words[0]] = g
			ids = append(ids, words[0])
		} else if g.twiceS != twiceS {
			return errors.Errorf("line %d: CSF %s mixes 2Sz %d and %d", n, words[0], g.twiceS, twiceS)
		}
		g.dets = append(g.dets, d)
		g.coefs = append(g.coefs, coef)
		return nil
	})
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return errors.New("parsing input: empty CSF block")
	}
	for _, id := range ids {
		g := groups[id]
		if err := table.Add(g.twiceS, vec.NewVec(g.dets, g.coefs)); err != nil {
			return errors.Wrapf(err, "CSF %s", id)
		}
	}
	return nil
}

func parseEnergies(data []string, b block, energies csf.EnergyTable) error {
	return blockLines(data, b, func(n int, words []string) error {
		if len(words) != 2 {
			return errors.Errorf("line %d: expected \"orbital energy\"", n)
		}
		orb, err := strconv.Atoi(words[0])
		if err != nil {
			return errors.Wrapf(err, "line %d: bad orbital", n)
		}
		e, err := strconv.ParseFloat(words[1], 64)
		if err != nil {
			return errors.Wrapf(err, "line %d: bad energy", n)
		}
		energies[orb] = e
		return nil
	})
}
