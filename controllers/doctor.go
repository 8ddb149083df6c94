package controllers

import (
	"net/http"

	"ClinicBook/config/authorization"
	"ClinicBook/role"
	"ClinicBook/services"
	"ClinicBook/util"

	"github.com/gin-gonic/gin"
)

type DoctorController struct {
	Directory *services.Directory
}

// Doctor registers the public listing and the authenticated profile route.
func Doctor(public, private gin.IRouter, ctl *DoctorController) {
	public.GET("/doctors", ctl.ListDoctors)
	public.GET("/doctors/:doctorId/availability", ctl.Availability)
	private.GET("/doctors/me", authorization.RequireRoles(role.DoctorRoles...), ctl.Profile)
}

func (ctl *DoctorController) ListDoctors(c *gin.Context) {
	doctors, err := ctl.Directory.ListDoctors(c.Request.Context())
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.DOCTORS_FETCHED, doctors))
}

func (ctl *DoctorController) Availability(c *gin.Context) {
	id, ok := pathID(c, "doctorId")
	if !ok {
		return
	}
	slots, err := ctl.Directory.Availability(c.Request.Context(), id)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.AVAILABILITY_FETCHED, slots))
}

// Profile reads the doctor id from the session token, never from the path.
func (ctl *DoctorController) Profile(c *gin.Context) {
	id, err := services.ParseID(c.GetString(authorization.ContextID))
	if err != nil {
		util.Fail(c, err)
		return
	}
	profile, err := ctl.Directory.Profile(c.Request.Context(), id)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.PROFILE_FETCHED, profile))
}
