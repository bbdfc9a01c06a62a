package api

import (
	"net/http"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/services"
)

type createStoreRequest struct {
	FirmID uint `json:"firmId" validate:"required"`
	services.StoreInput
}

// listFirms godoc
// @Summary List firms
// @Tags tenancy
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Name search"
// @Success 200 {object} PageResponse[models.Firm]
// @Router /firms [get]
func (h *Handler) listFirms(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, nil)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Tenancy.Firms(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// createFirm godoc
// @Summary Create a firm
// @Tags tenancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.FirmInput true "Fields"
// @Success 201 {object} models.Firm
// @Failure 400 {object} ErrorResponse
// @Router /firms [post]
func (h *Handler) createFirm(w http.ResponseWriter, r *http.Request) {
	var in services.FirmInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	firm, err := h.svc.Tenancy.CreateFirm(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, firm)
}

// getFirm godoc
// @Summary Get a firm
// @Tags tenancy
// @Produce json
// @Security BearerAuth
// @Param firmId path int true "Firm id"
// @Success 200 {object} models.Firm
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /firms/{firmId} [get]
func (h *Handler) getFirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "firmId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	firm, err := h.svc.Tenancy.Firm(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, firm)
}

// updateFirm godoc
// @Summary Update a firm
// @Tags tenancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param firmId path int true "Firm id"
// @Param body body services.UpdateFirmInput true "Fields"
// @Success 200 {object} models.Firm
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /firms/{firmId} [patch]
func (h *Handler) updateFirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "firmId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.UpdateFirmInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	firm, err := h.svc.Tenancy.UpdateFirm(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, firm)
}

// deleteFirm godoc
// @Summary Delete a firm
// @Tags tenancy
// @Security BearerAuth
// @Param firmId path int true "Firm id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /firms/{firmId} [delete]
func (h *Handler) deleteFirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "firmId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Tenancy.DeleteFirm(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listFirmStores godoc
// @Summary List the stores of a firm
// @Tags tenancy
// @Produce json
// @Security BearerAuth
// @Param firmId path int true "Firm id"
// @Success 200 {object} PageResponse[models.Store]
// @Failure 403 {object} ErrorResponse
// @Router /firms/{firmId}/stores [get]
func (h *Handler) listFirmStores(w http.ResponseWriter, r *http.Request) {
	firmID, err := pathID(r, "firmId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q, err := listQuery(r, map[string]string{"city": "city"})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Tenancy.Stores(r.Context(), &firmID, q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// createFirmStore godoc
// @Summary Create a store in the firm
// @Tags tenancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param firmId path int true "Firm id"
// @Param body body services.StoreInput true "Fields"
// @Success 201 {object} models.Store
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /firms/{firmId}/stores [post]
func (h *Handler) createFirmStore(w http.ResponseWriter, r *http.Request) {
	firmID, err := pathID(r, "firmId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.StoreInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	store, err := h.svc.Tenancy.CreateStore(r.Context(), firmID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, store)
}

// firmStore loads a store addressed through its firm. Stores of other firms
// are reported as missing.
func (h *Handler) firmStore(r *http.Request) (*models.Store, error) {
	firmID, err := pathID(r, "firmId")
	if err != nil {
		return nil, err
	}
	storeID, err := pathID(r, "storeId")
	if err != nil {
		return nil, err
	}
	store, err := h.svc.Tenancy.Store(r.Context(), storeID)
	if err != nil {
		return nil, err
	}
	if store.FirmID != firmID {
		return nil, apperrors.NotFound("store %d not found", storeID)
	}
	return store, nil
}

// getFirmStore godoc
// @Summary Get one of the firm's stores
// @Tags tenancy
// @Produce json
// @Security BearerAuth
// @Param firmId path int true "Firm id"
// @Param storeId path int true "Store id"
// @Success 200 {object} models.Store
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /firms/{firmId}/stores/{storeId} [get]
func (h *Handler) getFirmStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.firmStore(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, store)
}

// updateFirmStore godoc
// @Summary Update one of the firm's stores
// @Tags tenancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param firmId path int true "Firm id"
// @Param storeId path int true "Store id"
// @Param body body services.UpdateStoreInput true "Fields"
// @Success 200 {object} models.Store
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /firms/{firmId}/stores/{storeId} [patch]
func (h *Handler) updateFirmStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.firmStore(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.UpdateStoreInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	updated, err := h.svc.Tenancy.UpdateStore(r.Context(), store.ID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// listStores godoc
// @Summary List stores across firms
// @Tags tenancy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PageResponse[models.Store]
// @Router /stores [get]
func (h *Handler) listStores(w http.ResponseWriter, r *http.Request) {
	firmID, err := queryID(r, "firmId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q, err := listQuery(r, map[string]string{"city": "city"})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Tenancy.Stores(r.Context(), firmID, q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// createStore godoc
// @Summary Create a store
// @Tags tenancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createStoreRequest true "Fields"
// @Success 201 {object} models.Store
// @Failure 400 {object} ErrorResponse
// @Router /stores [post]
func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	var in createStoreRequest
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	store, err := h.svc.Tenancy.CreateStore(r.Context(), in.FirmID, in.StoreInput)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, store)
}

// getStore godoc
// @Summary Get a store
// @Tags tenancy
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.Store
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /stores/{id} [get]
func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	store, err := h.svc.Tenancy.Store(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, store)
}

// updateStore godoc
// @Summary Update a store
// @Tags tenancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param body body services.UpdateStoreInput true "Fields"
// @Success 200 {object} models.Store
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /stores/{id} [patch]
func (h *Handler) updateStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.UpdateStoreInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	store, err := h.svc.Tenancy.UpdateStore(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, store)
}

// deleteStore godoc
// @Summary Delete a store
// @Tags tenancy
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /stores/{id} [delete]
func (h *Handler) deleteStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Tenancy.DeleteStore(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
