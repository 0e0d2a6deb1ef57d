package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/opygoal/nextride-api/internal/application/service"
	"github.com/opygoal/nextride-api/internal/domain/entity"
	"github.com/opygoal/nextride-api/internal/presentation/http/dto/request"
	"github.com/opygoal/nextride-api/internal/presentation/http/dto/response"
)

// CompanyHandler handles company profile HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// GetCompany returns the current company profile
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	response.OK(c, "Company profile retrieved successfully", h.companyService.Get())
}

// UpdateCompany applies a partial profile update
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req request.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile := h.companyService.Update(entity.CompanyProfilePatch{
		Name:        req.Name,
		Address:     req.Address,
		Phones:      req.Phones,
		Emails:      req.Emails,
		Tagline:     req.Tagline,
		Description: req.Description,
		Footer:      req.Footer,
		BankDetails: req.BankDetails,
	})

	response.OK(c, "Company profile updated successfully", profile)
}
