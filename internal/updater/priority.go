package updater

import (
	"fmt"
	"strconv"

	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
)

// Priority bounds. 99 is reserved for the init system itself.
const (
	MinPriority     = 1
	MaxPriority     = 98
	DefaultPriority = 10
)

// EncodePriority returns the filename prefix for a priority. Single digits are
// zero padded so that a lexicographic directory listing matches numeric order.
// Values of two or more digits are returned unchanged.
func EncodePriority(priority int) string {
	s := strconv.Itoa(priority)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// ValidatePriority rejects priorities outside [MinPriority, MaxPriority].
func ValidatePriority(priority int) error {
	if priority < MinPriority || priority > MaxPriority {
		return oerrors.NewValidationError(
			fmt.Sprintf("priority %d is out of range", priority),
			"",
			"priority",
			fmt.Sprintf("Use a value between %d and %d. 99 is reserved.", MinPriority, MaxPriority),
		)
	}
	return nil
}
