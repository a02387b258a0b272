package handlers

import (
	"errors"
	"net/http"

	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/services"
	"wedding_hall_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// GetMenus handles fetching all menu packages.
func (h *CatalogHandler) GetMenus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.catalogService.GetMenus()})
}

// SaveMenu upserts a menu package. Validation rejections leave the catalog
// unchanged.
func (h *CatalogHandler) SaveMenu(c *gin.Context) {
	var req models.MenuPackage
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SaveMenu: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	menu, err := h.catalogService.SaveMenuPackage(req)
	if err != nil {
		utils.LogError(err, "SaveMenu: Error from catalogService.SaveMenuPackage")
		if errors.Is(err, services.ErrCatalogValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save menu package.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, menu)
}

// DeleteMenu removes a menu package by identity. Unknown identities are a no-op;
// bookings referencing the package keep their dangling reference.
func (h *CatalogHandler) DeleteMenu(c *gin.Context) {
	h.catalogService.DeleteMenuPackage(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GetAddons handles fetching the addon portfolio.
func (h *CatalogHandler) GetAddons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.catalogService.GetAddons()})
}

// SaveAddon upserts an addon service.
func (h *CatalogHandler) SaveAddon(c *gin.Context) {
	var req models.AddonService
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SaveAddon: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	addon, err := h.catalogService.SaveAddonService(req)
	if err != nil {
		utils.LogError(err, "SaveAddon: Error from catalogService.SaveAddonService")
		if errors.Is(err, services.ErrCatalogValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save addon service.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, addon)
}

// DeleteAddon removes an addon service by identity, no-op when unknown.
func (h *CatalogHandler) DeleteAddon(c *gin.Context) {
	h.catalogService.DeleteAddonService(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GetStalls handles fetching the stall list.
func (h *CatalogHandler) GetStalls(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.catalogService.GetStallItems()})
}

type setStallsRequest struct {
	Items []string `json:"items"`
}

// SetStalls replaces the whole stall list.
func (h *CatalogHandler) SetStalls(c *gin.Context) {
	var req setStallsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.catalogService.SetStallItems(req.Items)})
}
