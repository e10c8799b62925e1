// ABOUTME: Read-only HTTP API over a generated CRM dataset.
// ABOUTME: Serves accounts with their notes, prospects, and activities from memory with chi routes.

package api

import (
	"cmp"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apierrors "github.com/2389/crmseed/internal/errors"
	"github.com/2389/crmseed/internal/logging"
	"github.com/2389/crmseed/internal/model"
)

// Recent account defaults and bounds for /api/accounts/recent.
const (
	DefaultRecentLimit = 5
	MaxRecentLimit     = 50
)

// Handlers serves one dataset. The dataset is never modified.
type Handlers struct {
	data *model.Dataset
}

// NewHandlers returns handlers over ds.
func NewHandlers(ds *model.Dataset) *Handlers {
	return &Handlers{data: ds}
}

// NewRouter builds the full HTTP handler: recovery, request logging, health
// check, and the /api routes.
func NewRouter(ds *model.Dataset, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(logging.Middleware(logger))
	r.Use(logging.Recoverer(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apierrors.WriteError(w, http.StatusNotFound, apierrors.ErrNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apierrors.WriteError(w, http.StatusMethodNotAllowed, apierrors.ErrMethodNotAllowed, "the API is read-only")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	NewHandlers(ds).RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts the read-only routes under /api.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/accounts", h.listAccounts)
		// static segment, so chi matches it ahead of {id}
		r.Get("/accounts/recent", h.recentAccounts)
		r.Get("/accounts/{id}", h.getAccount)
		r.Get("/accounts/{id}/notes", h.accountNotes)
		r.Get("/accounts/{id}/prospects", h.accountProspects)
		r.Get("/accounts/{id}/activities", h.accountActivities)
		r.Get("/prospects/{id}", h.getProspect)
		r.Get("/prospects/{id}/activities", h.prospectActivities)
	})
}

type listResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

type itemResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, listResponse{Success: true, Count: len(items), Data: items})
}

func writeItem(w http.ResponseWriter, item any) {
	writeJSON(w, http.StatusOK, itemResponse{Success: true, Data: item})
}

// listAccounts supports ?industry= (exact, case-insensitive) and ?q=
// (company name substring, case-insensitive).
func (h *Handlers) listAccounts(w http.ResponseWriter, r *http.Request) {
	industry := strings.TrimSpace(r.URL.Query().Get("industry"))
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	accounts := make([]model.Account, 0, len(h.data.Accounts))
	for _, a := range h.data.Accounts {
		if industry != "" && !strings.EqualFold(a.Industry, industry) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(a.CompanyName), q) {
			continue
		}
		accounts = append(accounts, a)
	}
	writeList(w, accounts)
}

// recentAccounts lists the accounts contacted most recently, newest first.
// Ties keep id order. ?limit= defaults to DefaultRecentLimit.
func (h *Handlers) recentAccounts(w http.ResponseWriter, r *http.Request) {
	limit := DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxRecentLimit {
			apierrors.WriteErrorWithField(w, http.StatusBadRequest, apierrors.ErrInvalidRequest,
				fmt.Sprintf("limit must be a number between 1 and %d", MaxRecentLimit), "limit")
			return
		}
		limit = n
	}

	accounts := slices.Clone(h.data.Accounts)
	slices.SortStableFunc(accounts, func(a, b model.Account) int {
		if c := cmp.Compare(b.LastContactDate, a.LastContactDate); c != 0 {
			return c
		}
		return cmp.Compare(a.AccountID, b.AccountID)
	})
	writeList(w, accounts[:min(limit, len(accounts))])
}

func (h *Handlers) getAccount(w http.ResponseWriter, r *http.Request) {
	a, ok := h.account(w, r)
	if !ok {
		return
	}
	writeItem(w, a)
}

// accountNotes lists an account's notes newest first.
func (h *Handlers) accountNotes(w http.ResponseWriter, r *http.Request) {
	a, ok := h.account(w, r)
	if !ok {
		return
	}
	notes := slices.Clone(a.Notes)
	slices.SortStableFunc(notes, func(x, y model.Note) int {
		return cmp.Compare(y.Date, x.Date)
	})
	writeList(w, notes)
}

func (h *Handlers) accountProspects(w http.ResponseWriter, r *http.Request) {
	a, ok := h.account(w, r)
	if !ok {
		return
	}
	writeList(w, h.data.ProspectsFor(a.AccountID))
}

func (h *Handlers) accountActivities(w http.ResponseWriter, r *http.Request) {
	a, ok := h.account(w, r)
	if !ok {
		return
	}
	writeList(w, h.data.ActivitiesForAccount(a.AccountID))
}

func (h *Handlers) getProspect(w http.ResponseWriter, r *http.Request) {
	p, ok := h.prospect(w, r)
	if !ok {
		return
	}
	writeItem(w, p)
}

func (h *Handlers) prospectActivities(w http.ResponseWriter, r *http.Request) {
	p, ok := h.prospect(w, r)
	if !ok {
		return
	}
	writeList(w, h.data.ActivitiesForProspect(p.ProspectID))
}

// account resolves the {id} path parameter, writing the error response itself
// when the id is malformed or unknown.
func (h *Handlers) account(w http.ResponseWriter, r *http.Request) (*model.Account, bool) {
	id := model.AccountID(chi.URLParam(r, "id"))
	if !id.Valid() {
		apierrors.WriteErrorWithField(w, http.StatusBadRequest, apierrors.ErrInvalidID,
			fmt.Sprintf("malformed account id %q", id), "id")
		return nil, false
	}
	a, ok := h.data.Account(id)
	if !ok {
		apierrors.WriteError(w, http.StatusNotFound, apierrors.ErrNotFound,
			fmt.Sprintf("account %s not found", id))
		return nil, false
	}
	return a, true
}

func (h *Handlers) prospect(w http.ResponseWriter, r *http.Request) (*model.Prospect, bool) {
	id := model.ProspectID(chi.URLParam(r, "id"))
	if !id.Valid() {
		apierrors.WriteErrorWithField(w, http.StatusBadRequest, apierrors.ErrInvalidID,
			fmt.Sprintf("malformed prospect id %q", id), "id")
		return nil, false
	}
	p, ok := h.data.Prospect(id)
	if !ok {
		apierrors.WriteError(w, http.StatusNotFound, apierrors.ErrNotFound,
			fmt.Sprintf("prospect %s not found", id))
		return nil, false
	}
	return p, true
}
