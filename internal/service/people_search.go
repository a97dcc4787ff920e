package service

import (
	"github.com/MKhiriev/go-relations-map/models"
)

// SearchErrorPolicy decides what a failed search does to the result set.
type SearchErrorPolicy int

const (
	// ClearOnSearchError replaces the result set with an empty list and
	// reports no message.
	ClearOnSearchError SearchErrorPolicy = iota

	// SurfaceSearchError keeps the previous result set and reports a message.
	SurfaceSearchError
)

// SearchRequest is one outbound search. Generation increases with every
// request issued by the same [PeopleSearch].
type SearchRequest struct {
	Generation uint64
	Query      string
}

// SearchResult is the outcome of a [SearchRequest].
type SearchResult struct {
	Request SearchRequest
	People  []models.Person
	Err     error
}

// PeopleSearch holds the current search term and the latest result set.
//
// Responses may arrive out of order; only the result for the most recently
// issued request is applied, older ones are dropped.
type PeopleSearch struct {
	policy SearchErrorPolicy

	query      string
	issued     bool
	generation uint64

	people []models.Person
	state  models.OperationState
}

func NewPeopleSearch(policy SearchErrorPolicy) PeopleSearch {
	return PeopleSearch{
		policy: policy,
		people: []models.Person{},
		state:  models.OperationIdle,
	}
}

// SetQuery records a new search term. It returns the request to issue and
// true when query differs from the current term, or when no request has been
// issued yet. Repeating the current term issues nothing.
func (s *PeopleSearch) SetQuery(query string) (SearchRequest, bool) {
	if s.issued && query == s.query {
		return SearchRequest{}, false
	}

	s.issued = true
	s.query = query
	s.generation++
	s.state = models.OperationLoading

	return SearchRequest{Generation: s.generation, Query: query}, true
}

// Apply stores res if it answers the latest request. It reports whether res
// was applied and, for a failure under [SurfaceSearchError], the message to
// show.
func (s *PeopleSearch) Apply(res SearchResult) (message string, applied bool) {
	if !s.issued || res.Request.Generation != s.generation {
		return "", false
	}

	if res.Err != nil {
		s.state = models.OperationError
		if s.policy == ClearOnSearchError {
			s.people = []models.Person{}
			return "", true
		}
		return UserMessage(res.Err), true
	}

	s.state = models.OperationSuccess
	s.people = res.People
	if s.people == nil {
		s.people = []models.Person{}
	}
	return "", true
}

// Query returns the current search term.
func (s PeopleSearch) Query() string {
	return s.query
}

// People returns the latest applied result set, in API order.
func (s PeopleSearch) People() []models.Person {
	return s.people
}

// State returns the state of the latest request.
func (s PeopleSearch) State() models.OperationState {
	return s.state
}

// Loading reports whether the latest request is still in flight.
func (s PeopleSearch) Loading() bool {
	return s.state == models.OperationLoading
}

// Find returns the person with id from the current result set.
func (s PeopleSearch) Find(id int64) (models.Person, bool) {
	for _, p := range s.people {
		if p.ID == id {
			return p, true
		}
	}
	return models.Person{}, false
}
