package controllers

import (
	"net/http"

	"ClinicBook/config/authorization"
	"ClinicBook/models"
	"ClinicBook/role"
	"ClinicBook/services"
	"ClinicBook/util"

	"github.com/gin-gonic/gin"
)

type SlotController struct {
	Slots *services.Slots
}

func Slot(router gin.IRouter, ctl *SlotController) {
	router.POST("/appointments/:doctorId/add-default-slots",
		authorization.RequireRoles(role.Doctor, role.Admin),
		authorization.RequireOwner("doctorId", role.Admin),
		ctl.AddDefaultSlots)
	router.POST("/appointments/:doctorId/book-slot", ctl.BookSlot)
}

func (ctl *SlotController) AddDefaultSlots(c *gin.Context) {
	id, ok := pathID(c, "doctorId")
	if !ok {
		return
	}
	var req models.AddDefaultSlotsRequest
	if !bind(c, &req) {
		return
	}
	date, err := services.ParseDate(req.Date)
	if err != nil {
		util.Fail(c, err)
		return
	}
	slots, err := ctl.Slots.AddDefaultSlots(c.Request.Context(), id, date)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.SLOTS_ADDED, slots))
}

func (ctl *SlotController) BookSlot(c *gin.Context) {
	id, ok := pathID(c, "doctorId")
	if !ok {
		return
	}
	var req models.BookSlotRequest
	if !bind(c, &req) {
		return
	}
	date, err := services.ParseDate(req.Date)
	if err != nil {
		util.Fail(c, err)
		return
	}
	if err := ctl.Slots.BookSlot(c.Request.Context(), id, date, req.Time); err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.SLOT_BOOKED, nil))
}
