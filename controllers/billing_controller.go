package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-orders/models"
	"hotel-orders/services"
	"hotel-orders/utils"
)

type BillingController struct {
	BillingSvc *services.BillingService
}

func NewBillingController(svc *services.BillingService) *BillingController {
	return &BillingController{BillingSvc: svc}
}

// CreateBill (POST /api/bills)
func (ctrl *BillingController) CreateBill(c *gin.Context) {
	var req struct {
		CustomerID uint    `json:"customer_id" binding:"required"`
		Amount     float64 `json:"amount" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid bill payload: "+err.Error())
		return
	}

	bill := &models.Bill{Amount: req.Amount, CustomerID: req.CustomerID}
	if err := ctrl.BillingSvc.CreateBill(c.Request.Context(), bill); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, bill)
}

// GetBills (GET /api/bills)
func (ctrl *BillingController) GetBills(c *gin.Context) {
	bills, err := ctrl.BillingSvc.GetAllBills(c.Request.Context())
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bills)
}

// GetRevenue (GET /api/bills/revenue)
func (ctrl *BillingController) GetRevenue(c *gin.Context) {
	total, err := ctrl.BillingSvc.GetTotalRevenue(c.Request.Context())
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"total": total})
}

// DeleteBill (DELETE /api/bills/:id)
func (ctrl *BillingController) DeleteBill(c *gin.Context) {
	billNo, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ctrl.BillingSvc.DeleteBill(c.Request.Context(), billNo); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": billNo})
}
