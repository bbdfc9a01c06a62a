package api

import (
	"bufio"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/auth"
	"influencer-crm-service/services"
)

var invoiceFilters = map[string]string{
	"status":       "status",
	"influencerId": "influencer_id",
	"campaignId":   "campaign_id",
	"storeId":      "store_id",
}

// listInvoices godoc
// @Summary List invoice images
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param search query string false "File name, invoice number or vendor"
// @Param status query string false "PENDING, PROCESSING, PROCESSED, FAILED"
// @Param influencerId query int false "Influencer id"
// @Param campaignId query int false "Campaign id"
// @Param storeId query int false "Store id"
// @Success 200 {object} PageResponse[models.InvoiceImage]
// @Router /invoices [get]
func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, invoiceFilters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Invoices.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// uploadInvoice godoc
// @Summary Upload an invoice image
// @Description Accepts jpeg, png, webp, pdf and plain text. The invoice starts PENDING and is picked up by the OCR worker.
// @Tags invoices
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Invoice file"
// @Param influencerId formData int false "Influencer id"
// @Param campaignId formData int false "Campaign id"
// @Param storeId formData int false "Store id"
// @Success 201 {object} models.InvoiceImage
// @Failure 400 {object} ErrorResponse
// @Router /invoices [post]
func (h *Handler) uploadInvoice(w http.ResponseWriter, r *http.Request) {
	if err := h.parseMultipart(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, r, apperrors.BadRequest("file is required"))
		return
	}
	defer file.Close()

	in := services.UploadInvoiceInput{
		OriginalName: header.Filename,
		Size:         header.Size,
		UploadedBy:   auth.PrincipalFrom(r.Context()).ActorID(),
	}
	for name, dst := range map[string]**uint{
		"influencerId": &in.InfluencerID,
		"campaignId":   &in.CampaignID,
		"storeId":      &in.StoreID,
	} {
		if *dst, err = formID(r, name); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	content := bufio.NewReader(file)
	in.Content = content
	in.MimeType = header.Header.Get("Content-Type")
	if in.MimeType == "" || strings.HasPrefix(in.MimeType, "application/octet-stream") {
		sniff, _ := content.Peek(512)
		in.MimeType = http.DetectContentType(sniff)
	}

	invoice, err := h.svc.Invoices.Upload(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, invoice)
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.InvoiceImage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [get]
func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	invoice, err := h.svc.Invoices.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

// downloadInvoice godoc
// @Summary Download the original invoice file
// @Tags invoices
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Invoice id"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id}/file [get]
func (h *Handler) downloadInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	invoice, rc, err := h.svc.Invoices.OpenFile(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer rc.Close()

	name := invoice.OriginalName
	if name == "" {
		name = invoice.FileName
	}
	w.Header().Set("Content-Type", invoice.MimeType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	if invoice.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(invoice.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("Invoice download interrupted", zap.Uint("invoice_id", id), zap.Error(err))
	}
}

// updateInvoice godoc
// @Summary Correct extracted invoice fields
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invoice id"
// @Param body body services.InvoiceFieldsInput true "Fields"
// @Success 200 {object} models.InvoiceImage
// @Failure 400 {object} ErrorResponse
// @Router /invoices/{id} [patch]
func (h *Handler) updateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.InvoiceFieldsInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	invoice, err := h.svc.Invoices.UpdateFields(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

// updateInvoiceStatus godoc
// @Summary Change an invoice's status
// @Description The change must be allowed by the invoice transition table.
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invoice id"
// @Param body body services.InvoiceStatusInput true "New status"
// @Success 200 {object} models.InvoiceImage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id}/status [patch]
func (h *Handler) updateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.InvoiceStatusInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	invoice, err := h.svc.Invoices.UpdateStatus(r.Context(), id, in.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

// deleteInvoice godoc
// @Summary Delete an invoice and its file
// @Tags invoices
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [delete]
func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Invoices.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
