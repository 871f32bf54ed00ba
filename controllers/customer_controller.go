package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-orders/models"
	"hotel-orders/services"
	"hotel-orders/utils"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

type customerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	RoomNo  *uint  `json:"room_no"`
}

func (r customerRequest) toModel() *models.Customer {
	customer := models.NewCustomer(r.Name, r.Address, r.Phone)
	if r.RoomNo != nil {
		customer.AssignRoom(&models.Room{RoomNo: *r.RoomNo})
	}
	return customer
}

// CreateCustomer (POST /api/customers)
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload: "+err.Error())
		return
	}

	customer := req.toModel()
	if err := ctrl.CustomerSvc.AddCustomer(c.Request.Context(), customer); err != nil {
		log.Printf("❌ DB ERROR during customer creation: %v", err)
		utils.JSONServiceError(c, err)
		return
	}
	// the placeholder room only carried the number
	customer.Room = nil
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

// GetCustomers (GET /api/customers, ?withBills=true keeps billed customers)
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	var (
		customers []models.Customer
		err       error
	)
	if c.Query("withBills") == "true" {
		customers, err = ctrl.CustomerSvc.GetCustomersWithBills(c.Request.Context())
	} else {
		customers, err = ctrl.CustomerSvc.GetAllCustomers(c.Request.Context())
	}
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

// GetCustomer (GET /api/customers/:id)
func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := ctrl.CustomerSvc.GetCustomer(c.Request.Context(), id)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// UpdateCustomer (PUT /api/customers/:id) replaces the stored fields.
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload: "+err.Error())
		return
	}

	customer := req.toModel()
	customer.ID = id
	if err := ctrl.CustomerSvc.UpdateCustomer(c.Request.Context(), customer); err != nil {
		utils.JSONServiceError(c, err)
		return
	}

	updated, err := ctrl.CustomerSvc.GetCustomer(c.Request.Context(), id)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// DeleteCustomer (DELETE /api/customers/:id) also removes the customer's bills.
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ctrl.CustomerSvc.DeleteCustomer(c.Request.Context(), id); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// OrderFood (POST /api/customers/:id/food)
func (ctrl *CustomerController) OrderFood(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		FoodIDs []uint `json:"food_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid food order: "+err.Error())
		return
	}

	customer, err := ctrl.CustomerSvc.OrderFood(c.Request.Context(), id, req.FoodIDs...)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}
