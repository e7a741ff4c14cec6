package action

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// DecodeParams maps raw request parameters onto a handler's typed input
// struct. JSON numbers arrive as float64 and checkbox groups as []any, so
// decoding is weakly typed, mirroring what the widget layer guarantees.
// Failures are request validation errors, not handler errors.
func DecodeParams(params map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "param",
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidParams, err)
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidParams, err)
	}
	return nil
}

// BadRequestf builds a request validation error (for unknown enumerated
// values and the like).
func BadRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidParams}, args...)...)
}
