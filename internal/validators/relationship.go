package validators

import (
	"context"

	"github.com/MKhiriev/go-relations-map/models"
)

// Field name constants accepted by [RelationshipValidator.Validate].
const (
	// FieldPersonaAID targets the id of the first person.
	FieldPersonaAID = "persona_a_id"

	// FieldPersonaBID targets the id of the second person.
	FieldPersonaBID = "persona_b_id"

	// FieldTipo targets the relation type.
	FieldTipo = "tipo"
)

// RelationshipValidator checks relationship drafts and the request bodies
// built from them. Person ids must be positive and the type must be one of
// [models.RelationTypes]. Linking a person with themselves is not rejected.
type RelationshipValidator struct {
}

// NewRelationshipValidator constructs a [RelationshipValidator].
func NewRelationshipValidator() Validator {
	return &RelationshipValidator{}
}

// Validate accepts models.RelationshipDraft and models.RelationshipRequest,
// by value or by pointer. Anything else yields ErrUnsupportedType.
// When no fields are named, all of them are checked in order
// persona_a_id, persona_b_id, tipo and the first failure is returned.
func (v *RelationshipValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RelationshipDraft:
		return v.validateRequest(ctx, value.Request(), fields...)
	case *models.RelationshipDraft:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRequest(ctx, value.Request(), fields...)

	case models.RelationshipRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.RelationshipRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RelationshipValidator) validateRequest(_ context.Context, req models.RelationshipRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPersonaAID, FieldPersonaBID, FieldTipo}
	}

	for _, f := range fields {
		switch f {
		case FieldPersonaAID:
			if req.PersonaAID <= 0 {
				return ErrInvalidPersonaAID
			}
		case FieldPersonaBID:
			if req.PersonaBID <= 0 {
				return ErrInvalidPersonaBID
			}
		case FieldTipo:
			if !req.Tipo.Valid() {
				return ErrInvalidRelationType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
