package api

import (
	"net/http"

	"influencer-crm-service/services"
)

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search name, sku, category"
// @Param category query string false "Category"
// @Param storeId query int false "Store id"
// @Success 200 {object} PageResponse[models.Product]
// @Router /products [get]
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, map[string]string{"category": "category", "storeId": "store_id"})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Products.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// createProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ProductInput true "Fields"
// @Success 201 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Router /products [post]
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.svc.Products.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// getProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.svc.Products.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// updateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param body body services.UpdateProductInput true "Fields"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [patch]
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.UpdateProductInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.svc.Products.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [delete]
func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Products.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

var documentFilters = map[string]string{
	"type":         "type",
	"influencerId": "influencer_id",
	"campaignId":   "campaign_id",
	"storeId":      "store_id",
}

// listDocuments godoc
// @Summary List financial documents
// @Tags financial-documents
// @Produce json
// @Security BearerAuth
// @Param type query string false "INVOICE, RECEIPT, CONTRACT, OTHER"
// @Param influencerId query int false "Influencer id"
// @Param campaignId query int false "Campaign id"
// @Param dateFrom query string false "Document date lower bound"
// @Param dateTo query string false "Document date upper bound"
// @Success 200 {object} PageResponse[models.FinancialDocument]
// @Router /financial-documents [get]
func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, documentFilters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Documents.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// createDocument godoc
// @Summary Create a financial document
// @Tags financial-documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.FinancialDocumentInput true "Fields"
// @Success 201 {object} models.FinancialDocument
// @Failure 400 {object} ErrorResponse
// @Router /financial-documents [post]
func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	var in services.FinancialDocumentInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	doc, err := h.svc.Documents.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// getDocument godoc
// @Summary Get a financial document
// @Tags financial-documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.FinancialDocument
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /financial-documents/{id} [get]
func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	doc, err := h.svc.Documents.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// updateDocument godoc
// @Summary Update a financial document
// @Tags financial-documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param body body services.UpdateFinancialDocumentInput true "Fields"
// @Success 200 {object} models.FinancialDocument
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /financial-documents/{id} [patch]
func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.UpdateFinancialDocumentInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	doc, err := h.svc.Documents.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// deleteDocument godoc
// @Summary Delete a financial document
// @Tags financial-documents
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /financial-documents/{id} [delete]
func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Documents.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
