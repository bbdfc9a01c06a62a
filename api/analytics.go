package api

import (
	"net/http"

	"influencer-crm-service/analytics"
	"influencer-crm-service/services"
)

var metricFilters = map[string]string{
	"metricType":   "metric_type",
	"influencerId": "influencer_id",
	"campaignId":   "campaign_id",
	"storeId":      "store_id",
}

// listMetrics godoc
// @Summary List performance metrics
// @Tags performance-metrics
// @Produce json
// @Security BearerAuth
// @Param metricType query string false "Metric type"
// @Param influencerId query int false "Influencer id"
// @Param campaignId query int false "Campaign id"
// @Param storeId query int false "Store id"
// @Param dateFrom query string false "recordedAt lower bound"
// @Param dateTo query string false "recordedAt upper bound"
// @Success 200 {object} PageResponse[models.PerformanceMetric]
// @Router /performance-metrics [get]
func (h *Handler) listMetrics(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, metricFilters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Metrics.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// createMetric godoc
// @Summary Record a performance metric
// @Tags performance-metrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.MetricInput true "Metric"
// @Success 201 {object} models.PerformanceMetric
// @Failure 400 {object} ErrorResponse
// @Router /performance-metrics [post]
func (h *Handler) createMetric(w http.ResponseWriter, r *http.Request) {
	var in services.MetricInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	metric, err := h.svc.Metrics.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, metric)
}

// getMetric godoc
// @Summary Get a performance metric
// @Tags performance-metrics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.PerformanceMetric
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /performance-metrics/{id} [get]
func (h *Handler) getMetric(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	metric, err := h.svc.Metrics.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metric)
}

// deleteMetric godoc
// @Summary Delete a performance metric
// @Tags performance-metrics
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /performance-metrics/{id} [delete]
func (h *Handler) deleteMetric(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Metrics.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// influencerScore godoc
// @Summary Influencer performance score (0 to 100)
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Influencer id"
// @Success 200 {object} analytics.InfluencerScore
// @Failure 404 {object} ErrorResponse
// @Router /analytics/influencer/{id}/score [get]
func (h *Handler) influencerScore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	score, err := h.svc.Analytics.InfluencerScore(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, score)
}

// influencerSummary godoc
// @Summary Influencer score and metric totals
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} analytics.InfluencerSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /analytics/influencer/{id}/summary [get]
func (h *Handler) influencerSummary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	summary, err := h.svc.Analytics.InfluencerSummary(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// budgetUtilization godoc
// @Summary Campaign budget utilization
// @Description Rates are percentages and exceed 100 on overspend.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign id"
// @Success 200 {object} analytics.BudgetUtilization
// @Failure 404 {object} ErrorResponse
// @Router /analytics/campaign/{id}/budget-utilization [get]
func (h *Handler) budgetUtilization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	budget, err := h.svc.Analytics.BudgetUtilization(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, budget)
}

// campaignSummary godoc
// @Summary Campaign budget and metric totals
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} analytics.CampaignSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /analytics/campaign/{id}/summary [get]
func (h *Handler) campaignSummary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	summary, err := h.svc.Analytics.CampaignSummary(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// aggregated godoc
// @Summary Aggregate metrics for one scope
// @Description Exactly one of storeId, firmId, influencerId or campaignId is required.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param storeId query int false "Store id"
// @Param firmId query int false "Firm id"
// @Param influencerId query int false "Influencer id"
// @Param campaignId query int false "Campaign id"
// @Param dateFrom query string false "Window start"
// @Param dateTo query string false "Window end"
// @Success 200 {object} analytics.Aggregation
// @Failure 400 {object} ErrorResponse
// @Router /analytics/aggregated [get]
func (h *Handler) aggregated(w http.ResponseWriter, r *http.Request) {
	var (
		q   analytics.AggregationQuery
		err error
	)
	for name, dst := range map[string]**uint{
		"storeId":      &q.StoreID,
		"firmId":       &q.FirmID,
		"influencerId": &q.InfluencerID,
		"campaignId":   &q.CampaignID,
	} {
		if *dst, err = queryID(r, name); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	if q.DateFrom, err = queryTime(r, "dateFrom", false); err != nil {
		h.writeError(w, r, err)
		return
	}
	if q.DateTo, err = queryTime(r, "dateTo", true); err != nil {
		h.writeError(w, r, err)
		return
	}

	agg, err := h.svc.Analytics.Aggregate(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}
