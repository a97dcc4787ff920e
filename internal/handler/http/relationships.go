package http

import (
	"net/http"

	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/service"
	"github.com/MKhiriev/go-relations-map/models"
)

// createRelationship handles the form submit. Each request performs at most
// one POST to the people API; with an empty slot none is made. A missing
// tipo keeps the form default.
func (h *Handler) createRelationship(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Warn().Err(err).Msg("error parsing form")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	data, people := h.search(r, r.PostForm.Get(fieldSearch))

	idA := parseID(r.PostForm.Get(fieldPersonA))
	idB := parseID(r.PostForm.Get(fieldPersonB))

	form := service.NewRelationshipForm()
	if idA != 0 {
		form.SelectA(lookupPerson(people, idA))
	}
	if idB != 0 {
		form.SelectB(lookupPerson(people, idB))
	}

	status := http.StatusOK
	var message string

	if err := setType(&form, r.PostForm.Get(fieldTipo)); err != nil {
		message, status = service.UserMessage(err), statusFromError(err)
	} else if draft, err := form.Prepare(); err != nil {
		message, status = service.UserMessage(err), statusFromError(err)
	} else {
		_, err = h.services.RelationshipService.Create(r.Context(), draft)
		message = form.Complete(err)
		if err != nil {
			status = statusFromError(err)
		}
	}

	data.PersonA = idA
	data.PersonB = idB
	data.Types = typeOptions(form.Type())
	data.Message = message
	data.MessageIsErr = status != http.StatusOK

	h.render(w, r, status, data)
}

func setType(form *service.RelationshipForm, raw string) error {
	if raw == "" {
		return nil
	}
	return form.SetType(models.RelationType(raw))
}

// lookupPerson resolves id against the listed people so the draft carries
// names for logging. Ids outside the list are still submitted.
func lookupPerson(people service.PeopleSearch, id int64) models.Person {
	if p, ok := people.Find(id); ok {
		return p
	}
	return models.Person{ID: id}
}
