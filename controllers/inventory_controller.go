package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-orders/models"
	"hotel-orders/services"
	"hotel-orders/utils"
)

type InventoryController struct {
	InventorySvc *services.InventoryService
}

func NewInventoryController(svc *services.InventoryService) *InventoryController {
	return &InventoryController{InventorySvc: svc}
}

// GetInventory (GET /api/inventory, ?below=n keeps items under n units)
func (ctrl *InventoryController) GetInventory(c *gin.Context) {
	var (
		items []models.Inventory
		err   error
	)
	if raw := c.Query("below"); raw != "" {
		threshold, convErr := strconv.Atoi(raw)
		if convErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "below must be an integer")
			return
		}
		items, err = ctrl.InventorySvc.LowStock(c.Request.Context(), threshold)
	} else {
		items, err = ctrl.InventorySvc.ListItems(c.Request.Context())
	}
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (ctrl *InventoryController) CreateItem(c *gin.Context) {
	var item models.Inventory
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid inventory payload: "+err.Error())
		return
	}
	item.ID = 0
	if err := ctrl.InventorySvc.AddItem(c.Request.Context(), &item); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}
