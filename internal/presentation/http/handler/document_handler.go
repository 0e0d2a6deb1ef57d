package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opygoal/nextride-api/internal/application/service"
	"github.com/opygoal/nextride-api/internal/infrastructure/assets"
	"github.com/opygoal/nextride-api/internal/presentation/http/dto/request"
	"github.com/opygoal/nextride-api/internal/presentation/http/dto/response"
	"github.com/opygoal/nextride-api/pkg/renderer"
)

// DocumentHandler handles invoice and receipt generation requests
type DocumentHandler struct {
	documentService *service.DocumentService
	assets          *assets.Store
	maxUploadSize   int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, store *assets.Store, maxUploadSize int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		assets:          store,
		maxUploadSize:   maxUploadSize,
	}
}

// GenerateInvoice renders an invoice PDF from the booking form
func (h *DocumentHandler) GenerateInvoice(c *gin.Context) {
	h.generate(c, renderer.KindInvoice)
}

// GenerateReceipt renders a receipt PDF from the booking form
func (h *DocumentHandler) GenerateReceipt(c *gin.Context) {
	h.generate(c, renderer.KindReceipt)
}

func (h *DocumentHandler) generate(c *gin.Context, kind renderer.DocumentKind) {
	var req request.DocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data")
		return
	}

	logoPath := h.saveOptionalUpload(c, "logo")
	signaturePath := h.saveOptionalUpload(c, "signature")
	defer h.assets.Remove(logoPath)
	defer h.assets.Remove(signaturePath)

	out, err := h.documentService.Generate(&service.GenerateInput{
		Kind:               kind,
		CustomerName:       req.CustomerName,
		CustomerAddress:    req.CustomerAddress,
		CustomerContact:    req.CustomerContact,
		TripType:           req.TripType,
		Pickup:             req.Pickup,
		Dropoff:            req.Dropoff,
		TripDate:           req.TripDate,
		TripTime:           req.TripTime,
		ReturnDate:         req.ReturnDate,
		ReturnTime:         req.ReturnTime,
		MultipleTrips:      req.MultipleTrips,
		ServiceDescription: req.ServiceDescription,
		Route:              req.Route,
		ScopeOfWork:        req.ScopeOfWork,
		Quantity:           req.Quantity,
		UnitPrice:          req.UnitPrice,
		Notes:              req.Notes,
		PaymentMethod:      req.PaymentMethod,
		LogoPath:           logoPath,
		SignaturePath:      signaturePath,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	c.Header("X-Document-Number", out.Number)
	c.Data(http.StatusOK, "application/pdf", out.PDF.Bytes())
}

// saveOptionalUpload stores a form file if present and within the size limit.
// A missing or oversized file degrades to the default asset, never an error.
func (h *DocumentHandler) saveOptionalUpload(c *gin.Context, field string) string {
	fh, err := c.FormFile(field)
	if err != nil {
		return ""
	}
	if h.maxUploadSize > 0 && fh.Size > h.maxUploadSize {
		log.Printf("WARNING: %s upload %s exceeds size limit, ignoring", field, fh.Filename)
		return ""
	}
	path, err := h.assets.SaveUpload(fh, field)
	if err != nil {
		log.Printf("WARNING: could not save %s upload: %v", field, err)
		return ""
	}
	return path
}
