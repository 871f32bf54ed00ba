package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-orders/models"
	"hotel-orders/services"
	"hotel-orders/utils"
)

type ClientController struct {
	ClientSvc *services.ClientService
}

func NewClientController(svc *services.ClientService) *ClientController {
	return &ClientController{ClientSvc: svc}
}

type commandeRequest struct {
	Date   string          `json:"date" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

type clientRequest struct {
	Name      string            `json:"name" binding:"required"`
	Email     string            `json:"email"`
	Commandes []commandeRequest `json:"commandes"`
}

// CreateClient (POST /api/clients)
func (ctrl *ClientController) CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid client payload: "+err.Error())
		return
	}

	client := models.NewClient(req.Name, req.Email)
	for _, cr := range req.Commandes {
		date, err := time.Parse("2006-01-02", cr.Date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("Invalid commande date %q", cr.Date))
			return
		}
		client.AddCommande(models.NewCommande(date, cr.Amount))
	}

	if err := ctrl.ClientSvc.Register(c.Request.Context(), client); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, client)
}

// GetClients (GET /api/clients)
func (ctrl *ClientController) GetClients(c *gin.Context) {
	clients, err := ctrl.ClientSvc.List(c.Request.Context())
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, clients)
}

// GetClient (GET /api/clients/:id)
func (ctrl *ClientController) GetClient(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	client, err := ctrl.ClientSvc.Get(c.Request.Context(), id)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"client":       client,
		"total_amount": client.TotalAmount().StringFixed(2),
	})
}

// UpdateEmail (PATCH /api/clients/:id/email)
func (ctrl *ClientController) UpdateEmail(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid email payload: "+err.Error())
		return
	}

	old, err := ctrl.ClientSvc.ChangeEmail(c.Request.Context(), id, req.Email)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"old_email": old, "email": req.Email})
}

// DeleteClient (DELETE /api/clients/:id) removes the client and its commandes.
func (ctrl *ClientController) DeleteClient(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ctrl.ClientSvc.Delete(c.Request.Context(), &models.Client{ID: id}); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// DeleteCommande (DELETE /api/commandes/:id)
func (ctrl *ClientController) DeleteCommande(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ctrl.ClientSvc.RemoveCommande(c.Request.Context(), id); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
