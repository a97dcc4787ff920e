package service

import (
	"fmt"

	"github.com/MKhiriev/go-relations-map/internal/app"
	"github.com/MKhiriev/go-relations-map/models"
)

// RelationshipForm holds the selection for one relationship: person A,
// person B and the relation type (amistad by default).
//
// The same person may be selected for both slots; the form does not block it.
type RelationshipForm struct {
	personA *models.Person
	personB *models.Person
	tipo    models.RelationType
	state   models.OperationState
}

func NewRelationshipForm() RelationshipForm {
	return RelationshipForm{tipo: models.Amistad, state: models.OperationIdle}
}

// SelectA overwrites the person in slot A.
func (f *RelationshipForm) SelectA(p models.Person) {
	f.personA = &p
}

// SelectB overwrites the person in slot B.
func (f *RelationshipForm) SelectB(p models.Person) {
	f.personB = &p
}

// SetType changes the relation type. Unknown types are rejected and leave the
// form unchanged.
func (f *RelationshipForm) SetType(t models.RelationType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRelationType, t)
	}
	f.tipo = t
	return nil
}

// ToggleType switches to the next relation type in [models.RelationTypes].
func (f *RelationshipForm) ToggleType() {
	types := models.RelationTypes()
	for i, t := range types {
		if t == f.tipo {
			f.tipo = types[(i+1)%len(types)]
			return
		}
	}
	f.tipo = models.Amistad
}

func (f RelationshipForm) PersonA() (models.Person, bool) {
	if f.personA == nil {
		return models.Person{}, false
	}
	return *f.personA, true
}

func (f RelationshipForm) PersonB() (models.Person, bool) {
	if f.personB == nil {
		return models.Person{}, false
	}
	return *f.personB, true
}

func (f RelationshipForm) Type() models.RelationType {
	return f.tipo
}

func (f RelationshipForm) State() models.OperationState {
	return f.state
}

// Submitting reports whether a submit is in flight.
func (f RelationshipForm) Submitting() bool {
	return f.state == models.OperationLoading
}

// Prepare validates the selection and, when both slots are filled, moves the
// form to loading and returns the draft to submit. With an empty slot it
// returns [ErrIncompleteDraft] and no request must be made.
func (f *RelationshipForm) Prepare() (models.RelationshipDraft, error) {
	if f.personA == nil || f.personB == nil {
		f.state = models.OperationError
		return models.RelationshipDraft{}, ErrIncompleteDraft
	}

	f.state = models.OperationLoading
	return models.RelationshipDraft{
		PersonaA: *f.personA,
		PersonaB: *f.personB,
		Tipo:     f.tipo,
	}, nil
}

// Complete records the outcome of a submit and returns the message to show.
func (f *RelationshipForm) Complete(err error) string {
	if err != nil {
		f.state = models.OperationError
		return UserMessage(err)
	}
	f.state = models.OperationSuccess
	return app.MsgRelationshipSaved
}

// Summary renders the complete selection as one line, e.g.
// "Ana (1A) <-> Luis (2B): Amistad fuerte". It reports false while a slot is
// empty.
func (f RelationshipForm) Summary() (string, bool) {
	if f.personA == nil || f.personB == nil {
		return "", false
	}
	return fmt.Sprintf("%s <-> %s: %s", f.personA.Label(), f.personB.Label(), f.tipo.Label()), true
}
