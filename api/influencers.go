package api

import (
	"errors"
	"net/http"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/services"
)

var influencerFilters = map[string]string{
	"status":   "status",
	"platform": "platform",
	"category": "category",
	"city":     "city",
	"storeId":  "store_id",
}

// listInfluencers godoc
// @Summary List influencers
// @Tags influencers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Search name, handle, email, city"
// @Param sortBy query string false "name, createdAt, followersCount, engagementRate"
// @Param sortOrder query string false "asc or desc"
// @Param status query string false "ACTIVE, INACTIVE, BLACKLISTED"
// @Param platform query string false "Platform"
// @Param storeId query int false "Store id"
// @Success 200 {object} PageResponse[models.Influencer]
// @Failure 400 {object} ErrorResponse
// @Router /influencers [get]
func (h *Handler) listInfluencers(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, influencerFilters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Influencers.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// createInfluencer godoc
// @Summary Create an influencer
// @Tags influencers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.InfluencerInput true "Influencer"
// @Success 201 {object} models.Influencer
// @Failure 400 {object} ErrorResponse
// @Router /influencers [post]
func (h *Handler) createInfluencer(w http.ResponseWriter, r *http.Request) {
	var in services.InfluencerInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	influencer, err := h.svc.Influencers.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, influencer)
}

// getInfluencer godoc
// @Summary Get an influencer
// @Tags influencers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.Influencer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /influencers/{id} [get]
func (h *Handler) getInfluencer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	influencer, err := h.svc.Influencers.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, influencer)
}

// updateInfluencer godoc
// @Summary Update an influencer
// @Tags influencers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param body body services.UpdateInfluencerInput true "Fields"
// @Success 200 {object} models.Influencer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /influencers/{id} [patch]
func (h *Handler) updateInfluencer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.UpdateInfluencerInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	influencer, err := h.svc.Influencers.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, influencer)
}

// deleteInfluencer godoc
// @Summary Delete an influencer
// @Tags influencers
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /influencers/{id} [delete]
func (h *Handler) deleteInfluencer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Influencers.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// importInfluencers godoc
// @Summary Import influencers from CSV
// @Description Header row required; columns name, handle, platform, email, phone, followers, engagementRate, category, city.
// @Tags influencers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Param storeId formData int false "Store assigned to every row"
// @Success 200 {object} importer.Result
// @Failure 400 {object} ErrorResponse
// @Router /influencers/import [post]
func (h *Handler) importInfluencers(w http.ResponseWriter, r *http.Request) {
	if err := h.parseMultipart(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, r, apperrors.BadRequest("file is required"))
		return
	}
	defer file.Close()

	storeID, err := formID(r, "storeId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := h.svc.Importer.Influencers(r.Context(), file, storeID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// parseMultipart caps the request at the upload limit plus room for the
// other form fields.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperrors.BadRequest("file exceeds the %d MB upload limit", h.cfg.MaxUploadBytes>>20)
		}
		return apperrors.BadRequest("request must be multipart/form-data")
	}
	return nil
}
