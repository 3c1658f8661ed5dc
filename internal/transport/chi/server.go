// Package chi exposes the CRM use cases over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/suplink/vendorcrm/internal/domain"
	"github.com/suplink/vendorcrm/internal/domain/schema"
	"github.com/suplink/vendorcrm/internal/repository/record"
	contactuc "github.com/suplink/vendorcrm/internal/usecase/contact"
	dealuc "github.com/suplink/vendorcrm/internal/usecase/deal"
	healthuc "github.com/suplink/vendorcrm/internal/usecase/health"
	noteuc "github.com/suplink/vendorcrm/internal/usecase/note"
	vendoruc "github.com/suplink/vendorcrm/internal/usecase/vendor"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// IDResponse carries the identifier of a freshly created record.
type IDResponse struct {
	ID string `json:"id"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server wires the use case services to HTTP routes.
type Server struct {
	vendors       *vendoruc.Service
	contacts      *contactuc.Service
	deals         *dealuc.Service
	notes         *noteuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates the HTTP API server.
func NewServer(
	vendors *vendoruc.Service,
	contacts *contactuc.Service,
	deals *dealuc.Service,
	notes *noteuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		vendors:  vendors,
		contacts: contacts,
		deals:    deals,
		notes:    notes,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		validationHandler,
		sentinelHandler(domain.ErrInvalidID, http.StatusBadRequest, "Invalid id format"),
		sentinelHandler(domain.ErrVendorNotFound, http.StatusNotFound, "Vendor not found"),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, "store unavailable"),
	}
	return s
}

// Routes registers every endpoint on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Root)
	r.Get("/test", s.Diagnostic)
	r.Get("/schema", s.Schema)
	r.Get("/metrics", s.Metrics)

	r.Post("/vendors", s.CreateVendor)
	r.Get("/vendors", s.ListVendors)
	r.Post("/contacts", s.CreateContact)
	r.Get("/contacts", s.ListContacts)
	r.Post("/deals", s.CreateDeal)
	r.Get("/deals", s.ListDeals)
	r.Post("/notes", s.CreateNote)
	r.Get("/notes", s.ListNotes)
}

// Root handles GET / (liveness).
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vendor CRM API running"})
}

// Diagnostic handles GET /test. It always answers 200; failures are folded
// into the report by the health service.
func (s *Server) Diagnostic(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.health.Check(r.Context()))
}

// Schema handles GET /schema.
func (s *Server) Schema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, schema.Describe())
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// CreateVendor handles POST /vendors.
func (s *Server) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var p domain.VendorParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := s.vendors.Create(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, IDResponse{ID: id})
}

// ListVendors handles GET /vendors.
func (s *Server) ListVendors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	docs, err := s.vendors.List(r.Context(), q, parseLimit(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeDocs(w, docs)
}

// CreateContact handles POST /contacts.
func (s *Server) CreateContact(w http.ResponseWriter, r *http.Request) {
	var p domain.ContactParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := s.contacts.Create(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, IDResponse{ID: id})
}

// ListContacts handles GET /contacts.
func (s *Server) ListContacts(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendor_id")

	docs, err := s.contacts.List(r.Context(), vendorID, parseLimit(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeDocs(w, docs)
}

// CreateDeal handles POST /deals.
func (s *Server) CreateDeal(w http.ResponseWriter, r *http.Request) {
	var p domain.DealParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := s.deals.Create(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, IDResponse{ID: id})
}

// ListDeals handles GET /deals.
func (s *Server) ListDeals(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendor_id")
	stage := r.URL.Query().Get("stage")

	docs, err := s.deals.List(r.Context(), vendorID, stage, parseLimit(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeDocs(w, docs)
}

// CreateNote handles POST /notes.
func (s *Server) CreateNote(w http.ResponseWriter, r *http.Request) {
	var p domain.NoteParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := s.notes.Create(r.Context(), p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, IDResponse{ID: id})
}

// ListNotes handles GET /notes. vendor_id is required.
func (s *Server) ListNotes(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendor_id")

	docs, err := s.notes.List(r.Context(), vendorID, parseLimit(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeDocs(w, docs)
}

// parseLimit reads the limit query parameter. Absent or unusable values
// return 0 so the service applies its default. Unrecognized query input is
// ignored, not rejected.
func parseLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDocs serializes a listing, normalizing nil to an empty array.
func writeDocs(w http.ResponseWriter, docs []record.Document) {
	if docs == nil {
		docs = []record.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

// validationHandler surfaces the per-field messages of a ValidationError.
func validationHandler(w http.ResponseWriter, err error) bool {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ve.Error())
		return true
	}
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, domain.ErrValidation.Error())
		return true
	}
	return false
}

// sentinelHandler returns an errorHandler that matches a single sentinel
// error and answers with a fixed, safe message.
func sentinelHandler(sentinel error, status int, detail string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, detail)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
