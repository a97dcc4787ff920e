package models

// RelationType is the kind of bidirectional link declared between two people.
type RelationType string

const (
	// Amistad is a regular friendship.
	Amistad RelationType = "amistad"

	// AmistadFuerte is a strong friendship.
	AmistadFuerte RelationType = "amistad_fuerte"
)

// RelationTypes lists every supported relation type in display order.
func RelationTypes() []RelationType {
	return []RelationType{Amistad, AmistadFuerte}
}

// Valid reports whether t is one of [RelationTypes].
func (t RelationType) Valid() bool {
	switch t {
	case Amistad, AmistadFuerte:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name of t.
func (t RelationType) Label() string {
	switch t {
	case Amistad:
		return "Amistad"
	case AmistadFuerte:
		return "Amistad fuerte"
	default:
		return string(t)
	}
}

// RelationshipDraft is the transient selection made in the form before it is
// submitted. Both people must be present before a draft is built.
type RelationshipDraft struct {
	PersonaA Person
	PersonaB Person
	Tipo     RelationType
}

// SelfRelationship reports whether both slots point at the same person.
func (d RelationshipDraft) SelfRelationship() bool {
	return d.PersonaA.ID == d.PersonaB.ID
}

// Request converts the draft to the body of POST /relationships.
func (d RelationshipDraft) Request() RelationshipRequest {
	return RelationshipRequest{
		PersonaAID: d.PersonaA.ID,
		PersonaBID: d.PersonaB.ID,
		Tipo:       d.Tipo,
	}
}

// RelationshipRequest is the JSON body sent to POST /relationships.
type RelationshipRequest struct {
	PersonaAID int64        `json:"persona_a_id"`
	PersonaBID int64        `json:"persona_b_id"`
	Tipo       RelationType `json:"tipo"`
}

// Relationship is the record returned by the API after a successful create.
// Fields the server omits stay at their zero values.
type Relationship struct {
	ID         int64        `json:"id"`
	PersonaAID int64        `json:"persona_a_id"`
	PersonaBID int64        `json:"persona_b_id"`
	Tipo       RelationType `json:"tipo"`
	Activo     bool         `json:"activo"`
}
