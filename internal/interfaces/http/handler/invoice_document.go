package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appbilling "github.com/gensetworks/backend/internal/application/billing"
	"github.com/gensetworks/backend/internal/domain/shared"
	"github.com/gensetworks/backend/internal/interfaces/http/dto"
)

// InvoiceDocumentHandler handles invoice document download requests
type InvoiceDocumentHandler struct {
	BaseHandler
	documentService *appbilling.InvoiceDocumentService
}

// NewInvoiceDocumentHandler creates a new InvoiceDocumentHandler
func NewInvoiceDocumentHandler(documentService *appbilling.InvoiceDocumentService) *InvoiceDocumentHandler {
	return &InvoiceDocumentHandler{
		documentService: documentService,
	}
}

// DownloadPDF renders the invoice as a PDF and streams it as a file download.
// Template, format, orientation, logo and watermark behavior are tunable via
// query parameters.
func (h *InvoiceDocumentHandler) DownloadPDF(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}
	invoiceID, err := uuid.Parse(idReq.ID)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req appbilling.RenderInvoicePDFRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid request parameters: "+err.Error())
		return
	}

	doc, err := h.documentService.RenderInvoicePDF(c.Request.Context(), invoiceID, req)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			h.ErrorWithCode(c, dto.NormalizeErrorCode(domainErr.Code), domainErr.Message)
			return
		}
		h.ErrorWithCode(c, dto.ErrCodeRenderFailed, "Failed to generate invoice document")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

// RegisterRoutes registers all invoice document routes
func (h *InvoiceDocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.GET("/:id/pdf", h.DownloadPDF)
	}
}
