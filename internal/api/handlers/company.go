package handlers

import (
	"net/http"
	"strconv"

	"company-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for company operations
type CompanyHandler struct {
	companyService service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// ListCompanies handles GET /api/company
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Showing all companies",
		"data":    companies,
	})
}

// CreateCompany handles POST /api/company. The body is multipart form data
// carrying the logo file.
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req service.CreateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Company has been added",
		"data":    company,
	})
}

// GetCompany handles GET /api/company/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
		return
	}

	company, err := h.companyService.GetByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Showing company profiles",
		"data":    company,
	})
}

// UpdateCompany handles PUT and PATCH /api/company/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
		return
	}

	var req service.UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Company's data has been updated",
		"data":    company,
	})
}

// DeleteCompany handles DELETE /api/company/:id. A successful delete answers
// 410 Gone. The misspelled message is load-bearing for existing clients.
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusGone, gin.H{"message": "Comapny's data has been deleted"})
}
