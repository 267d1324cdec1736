// errors.go --  This file is part of goCSF project.
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
	"fmt"
)

var (
	// ErrEmptyWavefunction is returned when no determinant survives truncation.
	ErrEmptyWavefunction = errors.New("no determinants above wavefunction tolerance")
	// ErrInvalidTemplate marks a spin-coupling template that cannot be
	// mapped onto open-shell slots.
	ErrInvalidTemplate = errors.New("invalid spin-coupling template")
	ErrMissingEnergy   = errors.New("no orbital energy")
)

// MixedSpinError reports determinants with more than one Sz value.
type MixedSpinError struct {
	TwiceSz []int
}

func (e *MixedSpinError) Error() string {
	return fmt.Sprintf("different sz values in dets: 2*Sz in %v", e.TwiceSz)
}

// MissingSpinCouplingDataError reports that the template source has no
// CSF for a configuration's open-shell count.
type MissingSpinCouplingDataError struct {
	NumOpen int
	TwiceS  int
}

func (e *MissingSpinCouplingDataError) Error() string {
	return fmt.Sprintf("no spin-coupling data for %d open shells with 2S=%d", e.NumOpen, e.TwiceS)
}

type UnknownMatrixRepresentationError struct {
	Rep MatrixRep
}

func (e *UnknownMatrixRepresentationError) Error() string {
	return fmt.Sprintf("unknown matrix rep '%s'", string(e.Rep))
}
