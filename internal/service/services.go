package service

import (
	"github.com/MKhiriev/go-relations-map/internal/adapter"
	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/validators"
)

type Services struct {
	PeopleService       PeopleService
	RelationshipService RelationshipService
}

func NewServices(api adapter.APIAdapter, logger *logger.Logger) *Services {
	return &Services{
		PeopleService:       NewPeopleService(api, logger),
		RelationshipService: NewRelationshipService(api, validators.NewRelationshipValidator(), logger),
	}
}
