package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-orders/models"
	"hotel-orders/services"
	"hotel-orders/utils"
)

type FoodController struct {
	FoodSvc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{FoodSvc: svc}
}

func (ctrl *FoodController) GetMenu(c *gin.Context) {
	items, err := ctrl.FoodSvc.Menu(c.Request.Context())
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (ctrl *FoodController) CreateFoodItem(c *gin.Context) {
	var req struct {
		Name  string  `json:"name" binding:"required"`
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid food item payload: "+err.Error())
		return
	}

	item := models.NewFoodItem(req.Name, req.Price)
	if err := ctrl.FoodSvc.AddFoodItem(c.Request.Context(), item); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func (ctrl *FoodController) DeleteFoodItem(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ctrl.FoodSvc.DeleteFoodItem(c.Request.Context(), id); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
