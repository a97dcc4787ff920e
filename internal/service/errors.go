package service

import "errors"

var (
	// ErrIncompleteDraft is returned when a submit is attempted while either
	// person slot is empty.
	ErrIncompleteDraft = errors.New("both people must be selected")

	// ErrUnknownRelationType is returned for a relation type outside
	// [models.RelationTypes].
	ErrUnknownRelationType = errors.New("unknown relation type")

	// ErrUnknownLayout is returned by [ParseLayout].
	ErrUnknownLayout = errors.New("unknown layout")
)
