// main.go --  This file is part of goCSF project.
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
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/mirzaevaiv/gocsf/csf"
)

var logger log.Logger = log.NewNopLogger()

func initLog(file io.Writer, debug bool) {
	logger = log.NewLogfmtLogger(log.NewSyncWriter(file))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	if debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
}

func appInfo(w io.Writer) {
	fmt.Fprint(w, "\n                    ___________ ______   |"+
		"\n   ____ ____        / ____/ ___// ____/   | Author: Mirzaeva Irina Valerievna"+
		"\n  / __ `/ __ \\______/ /    \\__ \\/ /_      | email: dairdre@gmail.com"+
		"\n / /_/ / /_/ /_____/ /___ ___/ / __/      | Determinants to configuration state functions"+
		"\n \\__, /\\____/      \\____//____/_/         | Have Fun!!!"+
		"\n/____/                                    |\n\n")
}

func printOutputDelimiter(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", 70))
}

// outputName replaces the extension of the input file with ".out". An
// input that is already a .out file keeps its name and gains a second one.
func outputName(inpFname string) string {
	fExt := filepath.Ext(inpFname)
	if fExt == ".out" {
		return inpFname + ".out"
	}
	return strings.TrimSuffix(inpFname, fExt) + ".out"
}

// run reads the input file, converts the wavefunction and writes the
// report to out.
func run(inpFname, configPath string, out io.Writer) (*csf.Result, error) {
	cfg := csf.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = csf.LoadConfig(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "cannot load config")
		}
		level.Info(logger).Log("msg", "loaded config", "path", configPath)
	}

	fmt.Fprintln(out, "Input file content:")
	printOutputDelimiter(out)
	inpData, err := ReadFileLines(inpFname)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read input file")
	}
	for _, line := range inpData {
		fmt.Fprintln(out, line)
	}
	printOutputDelimiter(out)

	inp, err := processInput(inpData, cfg)
	if err != nil {
		return nil, err
	}
	level.Info(logger).Log("msg", "parsed input", "dets", len(inp.wf), "templates", inp.templates.Len(), "energies", len(inp.energies))

	opts := []csf.Option{csf.WithLogger(logger)}
	if len(inp.energies) > 0 {
		opts = append(opts, csf.WithOrbitalEnergies(inp.energies.Energy))
	}
	m, err := csf.New(inp.cfg, inp.templates, opts...)
	if err != nil {
		return nil, err
	}
	res, err := m.CSFInfo(inp.wf)
	if err != nil {
		return nil, errors.Wrap(err, "csf calculation failed")
	}
	writeReport(out, inp.cfg, res)
	return res, nil
}

func main() {
	configPath := flag.String("config", "", "YAML file with option defaults")
	debug := flag.Bool("debug", false, "log debug messages")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "No input file.")
		os.Exit(1)
	}
	inpFname := flag.Arg(0)
	outFname := outputName(inpFname)
	fmt.Println("Output file: ", outFname)

	file, err := os.OpenFile(outFname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer file.Close()
	initLog(file, *debug)

	level.Info(logger).Log("msg", "starting goCSF")
	appInfo(file)

	res, err := run(inpFname, *configPath, file)
	if err != nil {
		level.Error(logger).Log("msg", "goCSF failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("perr: %.10f, err: %.10f\n", res.ProjError, res.Error)

	memDebug()
	level.Info(logger).Log("msg", "exiting goCSF")
	fmt.Println("goCSF done.")
}
