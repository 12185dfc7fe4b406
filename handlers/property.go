package handlers

import (
	"net/http"

	"realtor/models"
	"realtor/services/property"
	"realtor/utils"

	"github.com/gin-gonic/gin"
)

// PropertyHandler exposes structured property search.
type PropertyHandler struct {
	Service property.SearchService
}

func NewPropertyHandler(service property.SearchService) *PropertyHandler {
	return &PropertyHandler{Service: service}
}

// Search runs a structured filter search against the listings database.
func (h *PropertyHandler) Search(c *gin.Context) {
	var filters models.PropertySearchFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filters", err.Error())
		return
	}

	properties, err := h.Service.Search(c.Request.Context(), filters)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "property search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      len(properties),
		"properties": properties,
	})
}

// GetByID returns a single listing.
func (h *PropertyHandler) GetByID(c *gin.Context) {
	prop, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "property not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, prop)
}
