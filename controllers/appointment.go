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

type AppointmentController struct {
	Appointments *services.Appointments
}

func Appointment(router gin.IRouter, ctl *AppointmentController) {
	router.POST("/appointments", ctl.Create)
	router.GET("/appointments/:userId", ctl.ListForPatient)
	router.PUT("/appointments/:appointmentId", ctl.Update)
	router.DELETE("/appointments/:appointmentId", ctl.Delete)

	router.GET("/doctor-appointments/:doctorId", ctl.ListForDoctor)
	router.PUT("/doctor-appointments/:appointmentId",
		authorization.RequireRoles(role.Doctor, role.Admin), ctl.UpdateStatus)
}

func (ctl *AppointmentController) Create(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if !bind(c, &req) {
		return
	}
	appointment, err := ctl.Appointments.Create(c.Request.Context(), req)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(util.APPOINTMENT_CREATED, appointment))
}

func (ctl *AppointmentController) ListForPatient(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	list, err := ctl.Appointments.ListForPatient(c.Request.Context(), id)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.APPOINTMENTS_FETCHED, list))
}

func (ctl *AppointmentController) ListForDoctor(c *gin.Context) {
	id, ok := pathID(c, "doctorId")
	if !ok {
		return
	}
	list, err := ctl.Appointments.ListForDoctor(c.Request.Context(), id)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.APPOINTMENTS_FETCHED, list))
}

func (ctl *AppointmentController) Update(c *gin.Context) {
	id, ok := pathID(c, "appointmentId")
	if !ok {
		return
	}
	var req models.UpdateAppointmentRequest
	if !bind(c, &req) {
		return
	}
	appointment, err := ctl.Appointments.Update(c.Request.Context(), id, req)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.APPOINTMENT_UPDATED, appointment))
}

func (ctl *AppointmentController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "appointmentId")
	if !ok {
		return
	}
	var req models.UpdateStatusRequest
	if !bind(c, &req) {
		return
	}
	appointment, err := ctl.Appointments.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.APPOINTMENT_UPDATED, appointment))
}

func (ctl *AppointmentController) Delete(c *gin.Context) {
	id, ok := pathID(c, "appointmentId")
	if !ok {
		return
	}
	if err := ctl.Appointments.Delete(c.Request.Context(), id); err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.APPOINTMENT_DELETED, nil))
}
