// helper.go --  This file is part of goCSF project.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/go-kit/log/level"
	"gonum.org/v1/gonum/mat"
)

func ReadFileLines(fname string) ([]string, error) {
	var result []string
	var err error

	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	err = scanner.Err()

	return result, err
}

// PrintCoefs writes coefs as one row, ten decimals each.
func PrintCoefs(w io.Writer, coefs []float64) {
	if len(coefs) == 0 {
		fmt.Fprintln(w, "    (none)")
		return
	}
	row := mat.NewDense(1, len(coefs), coefs)
	fa := mat.Formatted(row, mat.Prefix("    "), mat.Squeeze())
	fmt.Fprintf(w, "    %.10f\n", fa)
}

func memDebug() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	level.Info(logger).Log("msg", "memory",
		"alloc", memStats.Alloc,
		"total_alloc", memStats.TotalAlloc,
		"heap_alloc", memStats.HeapAlloc,
		"heap_sys", memStats.HeapSys)
}
