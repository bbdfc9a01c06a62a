package api

import (
	"net/http"

	"influencer-crm-service/auth"
	"influencer-crm-service/services"
)

var shipmentFilters = map[string]string{
	"status":       "status",
	"carrier":      "carrier",
	"influencerId": "influencer_id",
	"campaignId":   "campaign_id",
	"productId":    "product_id",
	"storeId":      "store_id",
}

// listShipments godoc
// @Summary List courier shipments
// @Tags courier-shipments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Tracking number or location"
// @Param status query string false "PENDING, SENT, IN_TRANSIT, DELIVERED, RETURNED, FAILED"
// @Param carrier query string false "Carrier key"
// @Param influencerId query int false "Influencer id"
// @Param campaignId query int false "Campaign id"
// @Param storeId query int false "Store id"
// @Success 200 {object} PageResponse[models.CourierShipment]
// @Failure 400 {object} ErrorResponse
// @Router /courier-shipments [get]
func (h *Handler) listShipments(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, shipmentFilters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Shipments.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// createShipment godoc
// @Summary Create a courier shipment
// @Description Starts in PENDING with a single timeline entry.
// @Tags courier-shipments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateShipmentInput true "Shipment"
// @Success 201 {object} models.CourierShipment
// @Failure 400 {object} ErrorResponse
// @Router /courier-shipments [post]
func (h *Handler) createShipment(w http.ResponseWriter, r *http.Request) {
	var in services.CreateShipmentInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	shipment, err := h.svc.Shipments.Create(r.Context(), in, auth.PrincipalFrom(r.Context()).ActorID())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, shipment)
}

// listCarriers godoc
// @Summary Supported carriers
// @Tags courier-shipments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Carrier
// @Router /courier-shipments/carriers [get]
func (h *Handler) listCarriers(w http.ResponseWriter, r *http.Request) {
	carriers, err := h.svc.Shipments.Carriers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, carriers)
}

// getShipment godoc
// @Summary Get a courier shipment
// @Tags courier-shipments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.CourierShipment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /courier-shipments/{id} [get]
func (h *Handler) getShipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	shipment, err := h.svc.Shipments.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shipment)
}

// updateShipment godoc
// @Summary Update shipment details
// @Tags courier-shipments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param body body services.UpdateShipmentInput true "Fields"
// @Success 200 {object} models.CourierShipment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /courier-shipments/{id} [patch]
func (h *Handler) updateShipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.UpdateShipmentInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	shipment, err := h.svc.Shipments.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shipment)
}

// deleteShipment godoc
// @Summary Delete a courier shipment
// @Tags courier-shipments
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /courier-shipments/{id} [delete]
func (h *Handler) deleteShipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Shipments.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// updateShipmentStatus godoc
// @Summary Change a shipment's status
// @Description The change must be allowed by the courier transition table.
// @Tags courier-shipments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Shipment id"
// @Param body body services.ShipmentStatusInput true "New status"
// @Success 200 {object} models.CourierShipment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /courier-shipments/{id}/status [patch]
func (h *Handler) updateShipmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.ShipmentStatusInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	shipment, err := h.svc.Shipments.UpdateStatus(r.Context(), id, in, auth.PrincipalFrom(r.Context()).ActorID())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shipment)
}

// recordShipmentEvent godoc
// @Summary Append a timeline event
// @Description Events that change the status go through the courier transition table.
// @Tags courier-shipments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Shipment id"
// @Param body body services.TimelineEventInput true "Event"
// @Success 200 {object} models.CourierShipment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /courier-shipments/{id}/timeline-event [post]
func (h *Handler) recordShipmentEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.TimelineEventInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	shipment, err := h.svc.Shipments.RecordEvent(r.Context(), id, in, auth.PrincipalFrom(r.Context()).ActorID())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shipment)
}

// shipmentTimeline godoc
// @Summary Shipment timeline
// @Tags courier-shipments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {array} models.CourierShipmentEvent
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /courier-shipments/{id}/timeline [get]
func (h *Handler) shipmentTimeline(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	events, err := h.svc.Shipments.Timeline(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
