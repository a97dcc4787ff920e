// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing strings shared by the terminal and web
// front ends.
//
// Every Msg* constant is rendered verbatim in the UI, so both surfaces show
// the same wording for the same outcome.
package app

const (
	// AppTitle is the heading shown on every screen.
	AppTitle = "Mapa de Relaciones"

	// AppSubtitle explains what the application does.
	AppSubtitle = "Declara relaciones bidireccionales entre estudiantes."

	// MsgSelectBothPeople is shown when a submit is attempted with an empty
	// slot. No request is sent in that case.
	MsgSelectBothPeople = "Selecciona ambas personas antes de guardar."

	// MsgRelationshipSaved is shown after the API accepted a relationship.
	MsgRelationshipSaved = "Relación guardada correctamente"

	// MsgRelationshipSaveFailed is the fallback when the API rejected a
	// relationship without a usable detail.
	MsgRelationshipSaveFailed = "No se pudo guardar la relación"

	// MsgUnknownRelationType is shown when the selected relation type is not
	// supported.
	MsgUnknownRelationType = "Tipo de relación no válido"

	// MsgPeopleUnavailable is shown when the people list could not be loaded.
	MsgPeopleUnavailable = "No se pudo cargar la lista de personas"

	// MsgServerUnavailable is a hint added when the API could not be reached
	// at all.
	MsgServerUnavailable = "Sin conexión con el servidor"

	// MsgLoadingPeople is shown while a search is in flight.
	MsgLoadingPeople = "Cargando estudiantes..."

	// MsgSavingRelationship is shown while a submit is in flight.
	MsgSavingRelationship = "Guardando relación..."

	// MsgNoPeople is shown when a search returned an empty list.
	MsgNoPeople = "Sin resultados"

	// MsgCopied confirms a clipboard copy.
	MsgCopied = "Copiado al portapapeles"

	// MsgNothingToCopy is shown when there is no selection to copy.
	MsgNothingToCopy = "Nada que copiar"

	// LabelSearch, LabelPersonA, LabelPersonB, LabelType, LabelSubmit and
	// LabelSelect are form labels.
	LabelSearch  = "Buscar estudiante"
	LabelPersonA = "Persona A"
	LabelPersonB = "Persona B"
	LabelType    = "Tipo de relación"
	LabelSubmit  = "Guardar relación"
	LabelSelect  = "Selecciona"

	// PlaceholderSearch is the hint inside the empty search box.
	PlaceholderSearch = "Nombre o ID"
)
