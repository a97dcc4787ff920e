package models

import "strings"

// Person is a searchable student record returned by the people API.
// The client never creates or modifies people; values live only in the
// current in-memory result list.
type Person struct {
	// ID is the externally assigned unique identifier.
	ID int64 `json:"id"`

	// Nombre is the display name of the person.
	Nombre string `json:"nombre"`

	// Curso is the course or group the person belongs to.
	Curso string `json:"curso"`

	// ExternalID is the identifier from the upstream school roster, if sent.
	ExternalID string `json:"external_id,omitempty" yaml:"external_id,omitempty"`

	// Seccion is the optional section inside Curso.
	Seccion *string `json:"seccion,omitempty" yaml:"seccion,omitempty"`

	// FotoURL is an optional picture URL.
	FotoURL *string `json:"foto_url,omitempty" yaml:"foto_url,omitempty"`
}

// Label returns "nombre (curso)", or just the name when the course is empty.
func (p Person) Label() string {
	curso := strings.TrimSpace(p.Curso)
	if curso == "" {
		return p.Nombre
	}
	return p.Nombre + " (" + curso + ")"
}
