// report.go --  This file is part of goCSF project.
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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mirzaevaiv/gocsf/csf"
	"github.com/mirzaevaiv/gocsf/vec"
)

// writeReport prints the CSF expansion: coefficients, the determinants of
// every CSF by 1-based index, the determinant list and the error metrics.
func writeReport(w io.Writer, cfg csf.Config, res *csf.Result) {
	fmt.Fprintln(w, "\nSettings:")
	fmt.Fprintf(w, "    matrix_rep  %s\n", cfg.MatrixRep)
	fmt.Fprintf(w, "    wf_tol      %g\n", cfg.WfTol)
	fmt.Fprintf(w, "    csf_tol     %g\n", cfg.CsfTol)
	fmt.Fprintf(w, "    ortho_tol   %g\n", cfg.OrthoTol)
	fmt.Fprintf(w, "    reduce_csfs %t\n", cfg.ReduceCSFs)
	printOutputDelimiter(w)

	fmt.Fprintf(w, "ncsf %d\n", len(res.CSFs))
	fmt.Fprintln(w, "CSF coefficients:")
	PrintCoefs(w, res.Coefs)
	fmt.Fprintln(w, "Determinants per CSF:")
	entries := res.Entries()
	for n := range res.CSFs {
		fmt.Fprintf(w, "CSF %d  label %d  config %s  ndet %d\n",
			n+1, res.Labels[n], csfConfig(res.CSFs[n]), len(entries[n]))
		idx := make([]string, len(entries[n]))
		coefs := make([]string, len(entries[n]))
		for i, e := range entries[n] {
			idx[i] = strconv.Itoa(e.Det + 1)
			coefs[i] = fmt.Sprintf("%.8f", e.Coef)
		}
		fmt.Fprintf(w, "    %s\n", strings.Join(idx, " "))
		fmt.Fprintf(w, "    %s\n", strings.Join(coefs, " "))
	}
	printOutputDelimiter(w)

	fmt.Fprintf(w, "ndet %d\n", res.Dets.Len())
	for i, d := range res.Dets.Dets() {
		if res.DetLabels != nil {
			fmt.Fprintf(w, "%5d %s   # %d\n", i+1, d.QMCString(), res.DetLabels[i])
		} else {
			fmt.Fprintf(w, "%5d %s\n", i+1, d.QMCString())
		}
	}
	printOutputDelimiter(w)

	fmt.Fprintf(w, "Projection error:      %.10f\n", res.ProjError)
	fmt.Fprintf(w, "Direct error:          %.10f\n", res.Error)
	fmt.Fprintf(w, "Orthonormality error:  %.10e\n", res.OrthoError)
	printOutputDelimiter(w)
}

// csfConfig is the configuration shared by all determinants of a CSF.
func csfConfig(c vec.Vec) string {
	dets := c.Dets()
	if len(dets) == 0 {
		return "-"
	}
	return vec.NewConfig(dets[0]).Key()
}
