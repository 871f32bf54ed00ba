package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-orders/models"
	"hotel-orders/services"
	"hotel-orders/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// ----------------------------------------------------
// GET /api/rooms
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAllRooms(c.Request.Context())
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// ----------------------------------------------------
// GET /api/rooms/available
// ----------------------------------------------------

func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAvailableRooms(c.Request.Context())
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// ----------------------------------------------------
// POST /api/rooms
// ----------------------------------------------------

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req struct {
		RoomNo    uint   `json:"room_no" binding:"required"`
		Location  string `json:"location"`
		Available bool   `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room payload: "+err.Error())
		return
	}

	room := models.NewRoom(req.RoomNo, req.Location, req.Available)
	if err := ctrl.RoomSvc.AddRoom(c.Request.Context(), room); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// ----------------------------------------------------
// GET /api/rooms/:roomNo
// ----------------------------------------------------

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	roomNo, err := utils.ParseUintParam(c, "roomNo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	room, err := ctrl.RoomSvc.GetRoom(c.Request.Context(), roomNo)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// PATCH /api/rooms/:roomNo/availability
// ----------------------------------------------------

func (ctrl *RoomController) SetAvailability(c *gin.Context) {
	roomNo, err := utils.ParseUintParam(c, "roomNo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability payload: "+err.Error())
		return
	}

	room, err := ctrl.RoomSvc.SetAvailability(c.Request.Context(), roomNo, *req.Available)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// DELETE /api/rooms/:roomNo
// ----------------------------------------------------

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	roomNo, err := utils.ParseUintParam(c, "roomNo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ctrl.RoomSvc.DeleteRoom(c.Request.Context(), roomNo); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": roomNo})
}
