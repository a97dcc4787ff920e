package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-relations-map/internal/adapter"
	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/validators"
	"github.com/MKhiriev/go-relations-map/models"
)

type relationshipService struct {
	api       adapter.APIAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewRelationshipService(api adapter.APIAdapter, validator validators.Validator, logger *logger.Logger) RelationshipService {
	return &relationshipService{api: api, validator: validator, logger: logger}
}

func (r *relationshipService) Create(ctx context.Context, draft models.RelationshipDraft) (models.Relationship, error) {
	if err := r.validator.Validate(ctx, draft, validators.FieldTipo); err != nil {
		return models.Relationship{}, fmt.Errorf("%w: %q: %w", ErrUnknownRelationType, draft.Tipo, err)
	}
	if err := r.validator.Validate(ctx, draft, validators.FieldPersonaAID, validators.FieldPersonaBID); err != nil {
		return models.Relationship{}, errors.Join(ErrIncompleteDraft, err)
	}

	// Self-relationships are sent as is; the API decides whether to accept them.
	if draft.SelfRelationship() {
		r.logger.Warn().Int64("persona_id", draft.PersonaA.ID).Msg("relationship links a person with themselves")
	}

	created, err := r.api.CreateRelationship(ctx, draft.Request())
	if err != nil {
		r.logger.Error().Err(err).
			Int64("persona_a_id", draft.PersonaA.ID).
			Int64("persona_b_id", draft.PersonaB.ID).
			Str("tipo", string(draft.Tipo)).
			Msg("create relationship failed")
		return models.Relationship{}, err
	}

	r.logger.Info().
		Int64("relationship_id", created.ID).
		Int64("persona_a_id", draft.PersonaA.ID).
		Int64("persona_b_id", draft.PersonaB.ID).
		Str("tipo", string(draft.Tipo)).
		Msg("relationship created")

	return created, nil
}
