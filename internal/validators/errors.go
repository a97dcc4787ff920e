package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPersonaAID   = errors.New("invalid persona_a_id")
	ErrInvalidPersonaBID   = errors.New("invalid persona_b_id")
	ErrInvalidRelationType = errors.New("invalid relation type")
)
