package api

import (
	"net/http"

	"influencer-crm-service/services"
)

// listCampaigns godoc
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Search name"
// @Param status query string false "DRAFT, ACTIVE, PAUSED, COMPLETED, CANCELLED"
// @Param storeId query int false "Store id"
// @Param dateFrom query string false "Start date lower bound"
// @Param dateTo query string false "Start date upper bound"
// @Success 200 {object} PageResponse[models.Campaign]
// @Router /campaigns [get]
func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, map[string]string{"status": "status", "storeId": "store_id"})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Campaigns.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// createCampaign godoc
// @Summary Create a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CampaignInput true "Campaign"
// @Success 201 {object} models.Campaign
// @Failure 400 {object} ErrorResponse
// @Router /campaigns [post]
func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	var in services.CampaignInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	campaign, err := h.svc.Campaigns.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

// getCampaign godoc
// @Summary Get a campaign
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.Campaign
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id} [get]
func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	campaign, err := h.svc.Campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// updateCampaign godoc
// @Summary Update a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param body body services.UpdateCampaignInput true "Fields"
// @Success 200 {object} models.Campaign
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id} [patch]
func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.UpdateCampaignInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	campaign, err := h.svc.Campaigns.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// deleteCampaign godoc
// @Summary Delete a campaign
// @Tags campaigns
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id} [delete]
func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Campaigns.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listCampaignInfluencers godoc
// @Summary Influencers linked to a campaign
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign id"
// @Success 200 {array} models.InfluencerCampaignLink
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id}/influencers [get]
func (h *Handler) listCampaignInfluencers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	links, err := h.svc.Campaigns.Influencers(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

// linkCampaignInfluencer godoc
// @Summary Add an influencer to a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param body body services.LinkInfluencerInput true "Fields"
// @Success 201 {object} models.InfluencerCampaignLink
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id}/influencers [post]
func (h *Handler) linkCampaignInfluencer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.LinkInfluencerInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	link, err := h.svc.Campaigns.LinkInfluencer(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

// updateCampaignInfluencer godoc
// @Summary Update a campaign participation
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param influencerId path int true "Influencer id"
// @Param body body services.UpdateLinkInput true "Fields"
// @Success 200 {object} models.InfluencerCampaignLink
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id}/influencers/{influencerId} [patch]
func (h *Handler) updateCampaignInfluencer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	influencerID, err := pathID(r, "influencerId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.UpdateLinkInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	link, err := h.svc.Campaigns.UpdateLink(r.Context(), id, influencerID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

// unlinkCampaignInfluencer godoc
// @Summary Remove an influencer from a campaign
// @Tags campaigns
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param influencerId path int true "Influencer id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id}/influencers/{influencerId} [delete]
func (h *Handler) unlinkCampaignInfluencer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	influencerID, err := pathID(r, "influencerId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Campaigns.UnlinkInfluencer(r.Context(), id, influencerID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
