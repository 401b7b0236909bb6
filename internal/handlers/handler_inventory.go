package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/erp_records_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_records_backend/internal/dto"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles HTTP requests related to inventory metadata.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// RegisterInventoryRoutes registers routes related to inventory metadata.
func RegisterInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	mustRegisterValidators()
	h := newInventoryHandler(inventoryService)

	inventory := rg.Group("/inventory")
	{
		inventory.GET("/ids", h.listInventoryIDs)

		metadata := inventory.Group("/metadata")
		metadata.GET("", h.listInventory)
		metadata.POST("", h.createInventory)
		metadata.GET("/:uuid", h.getInventory)
		metadata.PUT("/:uuid", h.updateInventory)
		metadata.DELETE("/:uuid", h.deleteInventory)
	}
}

// listInventory godoc
// @Summary List inventory items
// @Description Lists inventory metadata joined with group, unit and type, ordered by code
// @Tags inventory
// @Produce  json
// @Param   text query string false "Substring of the label"
// @Param   uuid query string false "Item identifier, repeat for several"
// @Param   group_uuid query string false "Group identifier"
// @Param   inventory_uuids query string false "Item identifiers, repeat for several"
// @Param   code query string false "Exact code"
// @Param   label query string false "Exact label"
// @Param   locked query bool false "Locked items"
// @Param   limit query int false "Maximum number of items"
// @Success 200 {array} dto.InventoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list inventory"
// @Security BearerAuth
// @Router /inventory/metadata [get]
func (h *inventoryHandler) listInventory(c *gin.Context) {
	items, err := h.inventoryService.ListInventory(c.Request.Context(), filter.FromQuery(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err, "Failed to list inventory")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInventoryResponse(items))
}

// getInventory godoc
// @Summary Get an inventory item
// @Tags inventory
// @Produce  json
// @Param   uuid path string true "Item identifier"
// @Success 200 {object} dto.InventoryResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed identifier"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve inventory item"
// @Security BearerAuth
// @Router /inventory/metadata/{uuid} [get]
func (h *inventoryHandler) getInventory(c *gin.Context) {
	item, err := h.inventoryService.GetInventory(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondError(c, err, "Failed to retrieve inventory item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryResponse(item))
}

// createInventory godoc
// @Summary Create an inventory item
// @Description Creates an item for the caller's enterprise
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateInventoryRequest true "Item details"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Duplicate code or unknown group, unit or type"
// @Failure 500 {object} dto.ErrorResponse "Failed to create inventory item"
// @Security BearerAuth
// @Router /inventory/metadata [post]
func (h *inventoryHandler) createInventory(c *gin.Context) {
	var req dto.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	id, err := h.inventoryService.CreateInventory(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "Failed to create inventory item")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{UUID: id.String()})
}

// updateInventory godoc
// @Summary Update an inventory item
// @Description Applies the provided fields only. The identifier cannot be changed. An empty note clears it.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   uuid path string true "Item identifier"
// @Param   item body dto.UpdateInventoryRequest true "Fields to change"
// @Success 200 {object} dto.InventoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 409 {object} dto.ErrorResponse "Rejected by a store constraint"
// @Failure 500 {object} dto.ErrorResponse "Failed to update inventory item"
// @Security BearerAuth
// @Router /inventory/metadata/{uuid} [put]
func (h *inventoryHandler) updateInventory(c *gin.Context) {
	var req dto.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.inventoryService.UpdateInventory(c.Request.Context(), c.Param("uuid"), req)
	if err != nil {
		respondError(c, err, "Failed to update inventory item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryResponse(item))
}

// deleteInventory godoc
// @Summary Delete an inventory item
// @Tags inventory
// @Produce  json
// @Param   uuid path string true "Item identifier"
// @Success 200 {object} dto.DeletedResponse
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 409 {object} dto.ErrorResponse "Item is still referenced"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete inventory item"
// @Security BearerAuth
// @Router /inventory/metadata/{uuid} [delete]
func (h *inventoryHandler) deleteInventory(c *gin.Context) {
	deleted, err := h.inventoryService.DeleteInventory(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondError(c, err, "Failed to delete inventory item")
		return
	}
	c.JSON(http.StatusOK, dto.DeletedResponse{Deleted: deleted})
}

// listInventoryIDs godoc
// @Summary List inventory identifiers
// @Tags inventory
// @Produce  json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResponse "Failed to list inventory identifiers"
// @Security BearerAuth
// @Router /inventory/ids [get]
func (h *inventoryHandler) listInventoryIDs(c *gin.Context) {
	ids, err := h.inventoryService.ListInventoryIDs(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list inventory identifiers")
		return
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	c.JSON(http.StatusOK, out)
}
