package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/repositories"
	"influencer-crm-service/services"
)

const maxJSONBody = 1 << 20

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// PageResponse is the pagination envelope of list endpoints.
type PageResponse[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writePage[T any](w http.ResponseWriter, page *services.Page[T]) {
	writeJSON(w, http.StatusOK, PageResponse[T]{
		Data: page.Items,
		Meta: PageMeta{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: repositories.TotalPages(page.Total, page.Limit),
		},
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.StatusOf(err)
	message := err.Error()

	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		message = "internal server error"
	}

	writeJSON(w, status, ErrorResponse{
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    message,
	})
}

// decode reads a JSON body into dst and runs its validate tags.
func (h *Handler) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.BadRequest("request body is required")
		}
		return apperrors.BadRequest("request body must be valid JSON: %v", err)
	}
	return h.validate.Struct(dst)
}

func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.BadRequest("%s must be a positive integer", name)
	}
	return uint(id), nil
}

func queryID(r *http.Request, name string) (*uint, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, apperrors.BadRequest("%s must be a positive integer", name)
	}
	v := uint(id)
	return &v, nil
}

func formID(r *http.Request, name string) (*uint, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, apperrors.BadRequest("%s must be a positive integer", name)
	}
	v := uint(id)
	return &v, nil
}

// queryTime accepts RFC 3339 timestamps or plain dates. A plain date used as
// an upper bound covers the whole day.
func queryTime(r *http.Request, name string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, apperrors.BadRequest("%s must be a date (YYYY-MM-DD) or RFC 3339 timestamp", name)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, apperrors.BadRequest("%s must be a positive integer", name)
	}
	return v, nil
}

// listQuery parses pagination, search, sorting and whitelisted filters.
// filters maps query parameter names to column names; parameters ending in
// "Id" are parsed as ids.
func listQuery(r *http.Request, filters map[string]string) (repositories.ListQuery, error) {
	var (
		q   repositories.ListQuery
		err error
	)
	if q.Page, err = queryInt(r, "page"); err != nil {
		return q, err
	}
	if q.Limit, err = queryInt(r, "limit"); err != nil {
		return q, err
	}

	values := r.URL.Query()
	q.Search = strings.TrimSpace(values.Get("search"))
	q.SortBy = values.Get("sortBy")
	q.SortOrder = values.Get("sortOrder")
	if q.SortOrder != "" && !strings.EqualFold(q.SortOrder, "asc") && !strings.EqualFold(q.SortOrder, "desc") {
		return q, apperrors.BadRequest("sortOrder must be one of asc, desc")
	}

	for param, column := range filters {
		raw := strings.TrimSpace(values.Get(param))
		if raw == "" {
			continue
		}
		if q.Filters == nil {
			q.Filters = map[string]any{}
		}
		if strings.HasSuffix(param, "Id") {
			id, err := queryID(r, param)
			if err != nil {
				return q, err
			}
			q.Filters[column] = *id
			continue
		}
		q.Filters[column] = raw
	}

	if q.DateFrom, err = queryTime(r, "dateFrom", false); err != nil {
		return q, err
	}
	if q.DateTo, err = queryTime(r, "dateTo", true); err != nil {
		return q, err
	}
	if q.DateFrom != nil && q.DateTo != nil && q.DateFrom.After(*q.DateTo) {
		return q, apperrors.BadRequest("dateFrom must be before or equal to dateTo")
	}
	return q, nil
}
