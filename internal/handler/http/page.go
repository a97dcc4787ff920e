// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-relations-map/internal/app"
	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/service"
	"github.com/MKhiriev/go-relations-map/models"
)

// Form field names shared by the page and the submit handler.
const (
	fieldSearch  = "search"
	fieldPersonA = "persona_a"
	fieldPersonB = "persona_b"
	fieldTipo    = "tipo"
)

var templateFuncs = template.FuncMap{
	"personLabel": service.LayoutFull.PersonLabel,
}

type typeOption struct {
	Value    models.RelationType
	Label    string
	Selected bool
}

type pageData struct {
	Title    string
	Subtitle string
	Version  string

	Search   string
	People   []models.Person
	PersonA  int64
	PersonB  int64
	Types    []typeOption
	NoPeople string

	Message      string
	MessageIsErr bool

	Labels pageLabels
}

type pageLabels struct {
	Search      string
	Placeholder string
	PersonA     string
	PersonB     string
	Type        string
	Submit      string
	Select      string
}

// showPage renders the search page. The query string may preselect people
// (persona_a, persona_b) and the relation type (tipo).
func (h *Handler) showPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	form := service.NewRelationshipForm()
	if err := form.SetType(models.RelationType(query.Get(fieldTipo))); err != nil && query.Get(fieldTipo) != "" {
		logger.FromRequest(r).Debug().Err(err).Msg("ignoring unknown relation type in query")
	}

	data, _ := h.search(r, query.Get(fieldSearch))
	data.PersonA = parseID(query.Get(fieldPersonA))
	data.PersonB = parseID(query.Get(fieldPersonB))
	data.Types = typeOptions(form.Type())

	h.render(w, r, http.StatusOK, data)
}

// search runs one people search for term and fills the page data. A failed
// search surfaces its message on the page. The returned search holds the
// result set the page lists.
func (h *Handler) search(r *http.Request, term string) (pageData, service.PeopleSearch) {
	data := h.newPageData()
	data.Search = term

	people := service.NewPeopleSearch(service.LayoutFull.SearchErrorPolicy())
	req, _ := people.SetQuery(term)
	message, _ := people.Apply(h.services.PeopleService.Search(r.Context(), req))

	data.People = service.LayoutFull.Options(people.People())
	if message != "" {
		data.Message = message
		data.MessageIsErr = true
	}
	return data, people
}

func (h *Handler) newPageData() pageData {
	return pageData{
		Title:    app.AppTitle,
		Subtitle: app.AppSubtitle,
		Version:  h.buildInfo.Short(),
		NoPeople: app.MsgNoPeople,
		Types:    typeOptions(models.Amistad),
		People:   []models.Person{},
		Labels: pageLabels{
			Search:      app.LabelSearch,
			Placeholder: app.PlaceholderSearch,
			PersonA:     app.LabelPersonA,
			PersonB:     app.LabelPersonB,
			Type:        app.LabelType,
			Submit:      app.LabelSubmit,
			Select:      app.LabelSelect,
		},
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func typeOptions(selected models.RelationType) []typeOption {
	types := models.RelationTypes()
	options := make([]typeOption, 0, len(types))
	for _, t := range types {
		options = append(options, typeOption{Value: t, Label: t.Label(), Selected: t == selected})
	}
	return options
}

// parseID returns 0 for an empty or malformed id; ids assigned by the API
// are positive.
func parseID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
