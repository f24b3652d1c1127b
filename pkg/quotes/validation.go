package quotes

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ifeomasylviadike/quotevault/pkg/errors"
)

// validate is the shared validator instance. validator.Validate is
// safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that a record satisfies the admission invariants:
// non-empty id, text, and category. Records are validated once at
// creation or import; the reconciler never re-validates.
func Validate(rec Record) error {
	// validator's "required" does not catch whitespace-only strings,
	// which the import surface must reject.
	if strings.TrimSpace(rec.Text) == "" {
		return errors.NewValidationError("text", rec.Text, "cannot be empty")
	}
	if strings.TrimSpace(rec.Category) == "" {
		return errors.NewValidationError("category", rec.Category, "cannot be empty")
	}

	if err := validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if ok := stderrors.As(err, &verrs); ok && len(verrs) > 0 {
			fe := verrs[0]
			return errors.NewValidationError(strings.ToLower(fe.Field()), fe.Value(), "failed "+fe.Tag()+" check")
		}
		return errors.WrapValidation("record", err)
	}
	return nil
}
