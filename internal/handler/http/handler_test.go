package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-relations-map/internal/adapter"
	"github.com/MKhiriev/go-relations-map/internal/app"
	"github.com/MKhiriev/go-relations-map/internal/logger"
	"github.com/MKhiriev/go-relations-map/internal/service"
	servicemock "github.com/MKhiriev/go-relations-map/internal/service/mock"
	"github.com/MKhiriev/go-relations-map/internal/utils"
	"github.com/MKhiriev/go-relations-map/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	ana    = models.Person{ID: 1, Nombre: "Ana", Curso: "1A"}
	anabel = models.Person{ID: 2, Nombre: "Anabel", Curso: "2B"}
)

type testServer struct {
	people        *servicemock.MockPeopleService
	relationships *servicemock.MockRelationshipService
	handler       *Handler
	router        http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	s := &testServer{
		people:        servicemock.NewMockPeopleService(ctrl),
		relationships: servicemock.NewMockRelationshipService(ctrl),
	}

	h, err := NewHandler(&service.Services{
		PeopleService:       s.people,
		RelationshipService: s.relationships,
	}, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	s.handler = h
	s.router = h.Init()
	return s
}

func (s *testServer) expectSearch(query string, people ...models.Person) {
	s.people.EXPECT().Search(gomock.Any(), service.SearchRequest{Generation: 1, Query: query}).
		DoAndReturn(func(_ context.Context, req service.SearchRequest) service.SearchResult {
			return service.SearchResult{Request: req, People: people}
		})
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/relationships", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ── GET / ───────────────────────────────────────────────────────────────────

func TestShowPage_ListsAllPeople(t *testing.T) {
	s := newTestServer(t)
	s.expectSearch("", ana, anabel)

	rr := s.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	body := rr.Body.String()
	assert.Contains(t, body, app.AppTitle)
	// Each person is offered in both slots.
	assert.Equal(t, 2, strings.Count(body, "Ana (1A)"))
	assert.Equal(t, 2, strings.Count(body, "Anabel (2B)"))
	assert.Contains(t, body, "1.2.3 (abc123)")
}

func TestShowPage_ForwardsSearchTerm(t *testing.T) {
	s := newTestServer(t)
	s.expectSearch("ana", ana)

	rr := s.do(httptest.NewRequest(http.MethodGet, "/?search=ana&persona_a=1", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `value="ana"`)
	assert.Contains(t, body, `<option value="1" selected>Ana (1A)</option>`)
}

func TestShowPage_SearchFailureSurfacesMessage(t *testing.T) {
	s := newTestServer(t)
	s.people.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req service.SearchRequest) service.SearchResult {
			return service.SearchResult{Request: req, Err: adapter.ErrPeopleUnavailable}
		})

	rr := s.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgPeopleUnavailable)
	assert.Contains(t, rr.Body.String(), app.MsgNoPeople)
}

func TestShowPage_EscapesNames(t *testing.T) {
	s := newTestServer(t)
	s.expectSearch("", models.Person{ID: 3, Nombre: "<b>Eve</b>", Curso: "3C"})

	rr := s.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotContains(t, rr.Body.String(), "<b>Eve</b>")
	assert.Contains(t, rr.Body.String(), "&lt;b&gt;Eve&lt;/b&gt;")
}

func TestShowPage_TraceIDReachesServices(t *testing.T) {
	s := newTestServer(t)
	s.people.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req service.SearchRequest) service.SearchResult {
			traceID, ok := utils.GetTraceIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "trace-123", traceID)
			return service.SearchResult{Request: req}
		})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(utils.TraceIDHeader, "trace-123")
	rr := s.do(req)

	assert.Equal(t, "trace-123", rr.Header().Get(utils.TraceIDHeader))
}

// ── POST /relationships ─────────────────────────────────────────────────────

func TestCreateRelationship_Success(t *testing.T) {
	s := newTestServer(t)
	s.relationships.EXPECT().
		Create(gomock.Any(), models.RelationshipDraft{
			PersonaA: ana,
			PersonaB: anabel,
			Tipo:     models.AmistadFuerte,
		}).
		Return(models.Relationship{ID: 7, PersonaAID: 1, PersonaBID: 2, Tipo: models.AmistadFuerte, Activo: true}, nil)
	s.expectSearch("ana", ana, anabel)

	rr := s.do(postForm(url.Values{
		fieldSearch:  {"ana"},
		fieldPersonA: {"1"},
		fieldPersonB: {"2"},
		fieldTipo:    {"amistad_fuerte"},
	}))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, app.MsgRelationshipSaved)
	assert.Contains(t, body, `<option value="amistad_fuerte" selected>`)
}

func TestCreateRelationship_MissingSlotSendsNothing(t *testing.T) {
	s := newTestServer(t)
	s.expectSearch("", ana, anabel)

	rr := s.do(postForm(url.Values{
		fieldPersonA: {"1"},
		fieldPersonB: {""},
		fieldTipo:    {"amistad"},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgSelectBothPeople)
}

func TestCreateRelationship_MissingTypeDefaultsToAmistad(t *testing.T) {
	s := newTestServer(t)
	s.relationships.EXPECT().
		Create(gomock.Any(), models.RelationshipDraft{PersonaA: ana, PersonaB: anabel, Tipo: models.Amistad}).
		Return(models.Relationship{ID: 8}, nil)
	s.expectSearch("", ana, anabel)

	rr := s.do(postForm(url.Values{
		fieldPersonA: {"1"},
		fieldPersonB: {"2"},
	}))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, app.MsgRelationshipSaved)
	assert.Contains(t, body, `<option value="amistad" selected>`)
}

func TestCreateRelationship_EmptyFormAsksForBothPeople(t *testing.T) {
	s := newTestServer(t)
	s.expectSearch("", ana, anabel)

	rr := s.do(postForm(url.Values{
		fieldPersonA: {""},
		fieldPersonB: {""},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, app.MsgSelectBothPeople)
	assert.NotContains(t, body, app.MsgUnknownRelationType)
}

func TestCreateRelationship_UnlistedPersonSubmittedByID(t *testing.T) {
	s := newTestServer(t)
	s.relationships.EXPECT().
		Create(gomock.Any(), models.RelationshipDraft{PersonaA: ana, PersonaB: models.Person{ID: 9}, Tipo: models.Amistad}).
		Return(models.Relationship{ID: 3}, nil)
	s.expectSearch("", ana)

	rr := s.do(postForm(url.Values{
		fieldPersonA: {"1"},
		fieldPersonB: {"9"},
		fieldTipo:    {"amistad"},
	}))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateRelationship_UnknownType(t *testing.T) {
	s := newTestServer(t)
	s.expectSearch("")

	rr := s.do(postForm(url.Values{
		fieldPersonA: {"1"},
		fieldPersonB: {"2"},
		fieldTipo:    {"rival"},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgUnknownRelationType)
}

func TestCreateRelationship_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "detail from api",
			err:        &adapter.APIError{StatusCode: 400, Detail: "ya existe", Body: `{"detail":"ya existe"}`},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "ya existe",
		},
		{
			name:       "api without detail",
			err:        &adapter.APIError{StatusCode: 500},
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgRelationshipSaveFailed,
		},
		{
			name:       "transport failure",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgRelationshipSaveFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.relationships.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Relationship{}, tt.err)
			s.expectSearch("", ana, anabel)

			rr := s.do(postForm(url.Values{
				fieldPersonA: {"1"},
				fieldPersonB: {"2"},
				fieldTipo:    {"amistad"},
			}))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantMsg)
		})
	}
}

func TestCreateRelationship_RepeatedSubmitPostsTwice(t *testing.T) {
	s := newTestServer(t)
	s.relationships.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Relationship{ID: 1}, nil).Times(2)
	s.people.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req service.SearchRequest) service.SearchResult {
			return service.SearchResult{Request: req, People: []models.Person{ana, anabel}}
		}).Times(2)

	form := url.Values{fieldPersonA: {"1"}, fieldPersonB: {"2"}, fieldTipo: {"amistad"}}
	assert.Equal(t, http.StatusOK, s.do(postForm(form)).Code)
	assert.Equal(t, http.StatusOK, s.do(postForm(form)).Code)
}

// ── Misc routes ─────────────────────────────────────────────────────────────

func TestGetVersion(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3\n2026-01-01\nabc123\n", rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(httptest.NewRequest(http.MethodGet, "/version", nil))

	rr := s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `http_requests_total{method="GET",path="/version",status="200"} 1`)
}

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(httptest.NewRequest(http.MethodGet, "/relationships", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.do(httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
