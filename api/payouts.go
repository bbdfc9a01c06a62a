package api

import (
	"net/http"

	"influencer-crm-service/services"
)

var payoutFilters = map[string]string{
	"status":       "status",
	"currency":     "currency",
	"influencerId": "influencer_id",
	"campaignId":   "campaign_id",
}

// listPayouts godoc
// @Summary List payouts
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, APPROVED, PAID, CANCELLED"
// @Param influencerId query int false "Influencer id"
// @Param campaignId query int false "Campaign id"
// @Success 200 {object} PageResponse[models.Payout]
// @Router /payouts [get]
func (h *Handler) listPayouts(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, payoutFilters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Payouts.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// createPayout godoc
// @Summary Create a payout
// @Tags payouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreatePayoutInput true "Fields"
// @Success 201 {object} models.Payout
// @Failure 400 {object} ErrorResponse
// @Router /payouts [post]
func (h *Handler) createPayout(w http.ResponseWriter, r *http.Request) {
	var in services.CreatePayoutInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	payout, err := h.svc.Payouts.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, payout)
}

// getPayout godoc
// @Summary Get a payout
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.Payout
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payouts/{id} [get]
func (h *Handler) getPayout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	payout, err := h.svc.Payouts.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payout)
}

// updatePayout godoc
// @Summary Update a payout
// @Tags payouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param body body services.UpdatePayoutInput true "Fields"
// @Success 200 {object} models.Payout
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payouts/{id} [patch]
func (h *Handler) updatePayout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.UpdatePayoutInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	payout, err := h.svc.Payouts.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payout)
}

// updatePayoutStatus godoc
// @Summary Approve, pay or cancel a payout
// @Tags payouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payout id"
// @Param body body services.PayoutStatusInput true "New status"
// @Success 200 {object} models.Payout
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payouts/{id}/status [patch]
func (h *Handler) updatePayoutStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.PayoutStatusInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	payout, err := h.svc.Payouts.UpdateStatus(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payout)
}

// deletePayout godoc
// @Summary Delete a payout
// @Tags payouts
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payouts/{id} [delete]
func (h *Handler) deletePayout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Payouts.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
