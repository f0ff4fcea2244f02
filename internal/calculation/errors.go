package calculation

import (
	"fmt"

	"github.com/finconsult/sipcalc/internal/domain"
)

// invalidf wraps domain.ErrInvalidInput with a formatted reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}
