// config.go --  This file is part of goCSF project.
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

// Package csf converts a truncated determinant expansion into an expansion
// over configuration state functions: it instantiates spin-coupling
// templates on every configuration, projects the wavefunction onto them,
// rotates each configuration's subspace towards the wavefunction and
// reports how much of the wavefunction the result reproduces.
package csf

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MatrixRep selects the overlap matrix backend.
type MatrixRep string

const (
	Dense  MatrixRep = "dense"
	Sparse MatrixRep = "sparse"
)

const (
	DefaultMatrixRep  = Sparse
	DefaultWfTol      = 1e-8
	DefaultCsfTol     = 1e-8
	DefaultOrthoTol   = 1e-8
	DefaultReduceCSFs = true
)

// Config carries every tunable of the pipeline. It is passed by value to
// each stage; nothing reads tolerances from package state.
type Config struct {
	MatrixRep  MatrixRep `yaml:"matrix_rep"`
	WfTol      float64   `yaml:"wf_tol"`
	CsfTol     float64   `yaml:"csf_tol"`
	OrthoTol   float64   `yaml:"ortho_tol"`
	ReduceCSFs bool      `yaml:"reduce_csfs"`
}

func DefaultConfig() Config {
	return Config{
		MatrixRep:  DefaultMatrixRep,
		WfTol:      DefaultWfTol,
		CsfTol:     DefaultCsfTol,
		OrthoTol:   DefaultOrthoTol,
		ReduceCSFs: DefaultReduceCSFs,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from
// the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Set assigns one option by its YAML key, as written in an input file.
func (c *Config) Set(key, value string) error {
	var err error
	switch strings.ToLower(key) {
	case "matrix_rep":
		c.MatrixRep = MatrixRep(strings.ToLower(value))
	case "wf_tol":
		c.WfTol, err = strconv.ParseFloat(value, 64)
	case "csf_tol":
		c.CsfTol, err = strconv.ParseFloat(value, 64)
	case "ortho_tol":
		c.OrthoTol, err = strconv.ParseFloat(value, 64)
	case "reduce_csfs":
		c.ReduceCSFs, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	if err != nil {
		return fmt.Errorf("option %s: %w", key, err)
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := NewBackend(c.MatrixRep); err != nil {
		return err
	}
	tols := []struct {
		name string
		val  float64
	}{{"wf_tol", c.WfTol}, {"csf_tol", c.CsfTol}, {"ortho_tol", c.OrthoTol}}
	for _, tol := range tols {
		if tol.val < 0 || math.IsNaN(tol.val) {
			return fmt.Errorf("%s must be non-negative, got %g", tol.name, tol.val)
		}
	}
	return nil
}
