// methods.go --  This file is part of goCSF project.
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

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mirzaevaiv/gocsf/vec"
)

// Result is the CSF expansion of a wavefunction. CSFs, Coefs and Labels
// are parallel and sorted by descending |coef|.
type Result struct {
	CSFs   []vec.Vec
	Coefs  []float64
	Labels []int
	// Dets indexes every determinant used by CSFs, in CSF order.
	Dets *vec.IndexList
	// DetLabels groups Dets by orbital energy; nil without energies.
	DetLabels []int

	ProjError  float64
	Error      float64
	OrthoError float64
}

// Entry is one determinant of a CSF, by its index in Result.Dets.
type Entry struct {
	Det  int
	Coef float64
}

// Entries lists every CSF as (determinant index, coefficient) pairs.
func (r *Result) Entries() [][]Entry {
	res := make([][]Entry, len(r.CSFs))
	for n, csf := range r.CSFs {
		csf.Each(func(d vec.Det, coef float64) {
			i, _ := r.Dets.Index(d)
			res[n] = append(res[n], Entry{Det: i, Coef: coef})
		})
	}
	return res
}

type Option func(*Methods)

// WithLogger sets the logger for progress and diagnostics.
func WithLogger(l log.Logger) Option {
	return func(m *Methods) {
		if l == nil {
			l = log.NewNopLogger()
		}
		m.logger = l
	}
}

// WithOrbitalEnergies enables the energy labels of Result.DetLabels.
func WithOrbitalEnergies(e EnergyLookup) Option {
	return func(m *Methods) { m.energy = e }
}

// Methods runs the determinant to CSF conversion for one configuration.
type Methods struct {
	cfg       Config
	backend   Backend
	templates TemplateSource
	energy    EnergyLookup
	logger    log.Logger
}

func New(cfg Config, templates TemplateSource, opts ...Option) (*Methods, error) {
	if templates == nil {
		return nil, errors.New("no spin-coupling template source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	backend, err := NewBackend(cfg.MatrixRep)
	if err != nil {
		return nil, err
	}
	m := &Methods{
		cfg:       cfg,
		backend:   backend,
		templates: templates,
		logger:    log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Methods) Config() Config { return m.cfg }

// GetCSFs builds the candidate CSFs of every configuration in dets along
// with their configuration labels.
func (m *Methods) GetCSFs(dets []vec.Det) ([]vec.Vec, []string, error) {
	twiceS, err := TwiceSz(dets)
	if err != nil {
		return nil, nil, err
	}
	configs := Configs(dets)
	maxOpen := 0
	for _, c := range configs {
		maxOpen = max(maxOpen, c.NumOpen())
	}

	level.Info(m.logger).Log("msg", "loading CSF data", "max_open", maxOpen, "twice_s", twiceS)
	templates, err := m.templates.Templates(maxOpen, twiceS)
	if err != nil {
		return nil, nil, err
	}
	level.Info(m.logger).Log("msg", "converting configs", "configs", len(configs), "templates", len(templates))
	csfs, labels, err := ConfigsToCSFs(configs, templates, twiceS)
	if err != nil {
		return nil, nil, err
	}
	for _, st := range csfStats(labels) {
		level.Debug(m.logger).Log("msg", "csfs per config", "config", st.label, "ncsf", st.n)
	}
	return csfs, labels, nil
}

type labelCount struct {
	label string
	n     int
}

// csfStats counts CSFs per configuration label in first-seen order.
func csfStats(labels []string) []labelCount {
	var res []labelCount
	idx := map[string]int{}
	for _, l := range labels {
		i, ok := idx[l]
		if !ok {
			i = len(res)
			idx[l] = i
			res = append(res, labelCount{label: l})
		}
		res[i].n++
	}
	return res
}

// CSFInfo converts wf into a sorted, orthonormal CSF expansion. Nothing is
// returned on error; the error metrics are reported as they come out and
// are left for the caller to judge.
func (m *Methods) CSFInfo(wf []Term) (*Result, error) {
	wf, err := Truncate(wf, m.cfg.WfTol)
	if err != nil {
		return nil, err
	}
	level.Debug(m.logger).Log("msg", "truncated wavefunction", "dets", len(wf), "wf_tol", m.cfg.WfTol)

	csfs, labels, err := m.GetCSFs(Dets(wf))
	if err != nil {
		return nil, err
	}

	detIndices, ovlp := m.backend.Build(csfs, WeightOrder(wf))
	level.Debug(m.logger).Log("msg", "built overlap matrix", "rep", m.backend.Rep(),
		"csfs", len(csfs), "dets", detIndices.Len(), "nnz", ovlp.NNZ())
	wfDetCoefs, err := ReindexCoefs(detIndices, wf)
	if err != nil {
		return nil, err
	}
	wfCSFCoefs := Project(m.backend, ovlp, wfDetCoefs)

	rot := RotateCSFs(csfs, labels, wfCSFCoefs, m.cfg)
	level.Info(m.logger).Log("msg", "rotated csfs", "candidates", len(csfs), "kept", len(rot.CSFs), "orthonormal_error", rot.OrthoErr)

	res := &Result{OrthoError: rot.OrthoErr}
	res.CSFs, res.Labels, res.Coefs = SortCSFs(rot.CSFs, rot.Labels, rot.Coefs)
	res.Dets = DetIndicesFromCSFs(res.CSFs, vec.NewIndexList())

	res.ProjError = ProjError(m.backend, ovlp, wfDetCoefs)
	res.Error = DirectError(wf, res.CSFs, res.Coefs)
	level.Info(m.logger).Log("msg", "csf expansion done", "perr", res.ProjError, "err", res.Error)

	if m.energy != nil {
		res.DetLabels, err = DetConfigLabels(res.Dets, m.energy, DetLabelTol)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
