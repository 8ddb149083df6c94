package controllers

import (
	"net/http"

	"ClinicBook/models"
	"ClinicBook/services"
	"ClinicBook/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Users        *services.Auth
	Doctors      *services.Auth
	Registration *services.Registration
}

// Auth registers the public account routes. Every flow exists once for
// users and once for doctors.
func Auth(router gin.IRouter, ctl *AuthController) {
	router.POST("/register", ctl.RegisterUser)
	router.POST("/register-doctor", ctl.RegisterDoctor)

	router.POST("/send-mfa", sendMFA(ctl.Users))
	router.POST("/send-mfa-doctor", sendMFA(ctl.Doctors))
	router.POST("/login", login(ctl.Users))
	router.POST("/login-doctor", login(ctl.Doctors))
	router.POST("/forgot-password", forgotPassword(ctl.Users))
	router.POST("/doctor-forgot-password", forgotPassword(ctl.Doctors))
	router.POST("/verify-otp", verifyOTP(ctl.Users))
	router.POST("/verify-otp-doctor", verifyOTP(ctl.Doctors))
	router.POST("/reset-password", resetPassword(ctl.Users))
	router.POST("/doctor-reset-password", resetPassword(ctl.Doctors))
}

func (ctl *AuthController) RegisterUser(c *gin.Context) {
	var req models.RegisterUserRequest
	if !bind(c, &req) {
		return
	}
	user, err := ctl.Registration.RegisterUser(c.Request.Context(), req)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(util.USER_REGISTERED, user))
}

func (ctl *AuthController) RegisterDoctor(c *gin.Context) {
	var req models.RegisterDoctorRequest
	if !bind(c, &req) {
		return
	}
	doctor, err := ctl.Registration.RegisterDoctor(c.Request.Context(), req)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(util.DOCTOR_REGISTERED, doctor))
}

/*
* Bind the credentials
* The service mails the code, nothing is returned
 */
func sendMFA(auth *services.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CredentialsRequest
		if !bind(c, &req) {
			return
		}
		if err := auth.SendMFA(c.Request.Context(), req); err != nil {
			util.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(util.MFA_CODE_SENT, nil))
	}
}

func login(auth *services.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if !bind(c, &req) {
			return
		}
		res, err := auth.Login(c.Request.Context(), req)
		if err != nil {
			util.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(util.LOGIN_SUCCESSFUL, res))
	}
}

func forgotPassword(auth *services.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ForgotPasswordRequest
		if !bind(c, &req) {
			return
		}
		if err := auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
			util.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(util.OTP_SENT, nil))
	}
}

func verifyOTP(auth *services.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.VerifyOTPRequest
		if !bind(c, &req) {
			return
		}
		if err := auth.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
			util.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(util.OTP_VERIFIED, nil))
	}
}

func resetPassword(auth *services.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ResetPasswordRequest
		if !bind(c, &req) {
			return
		}
		if err := auth.ResetPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
			util.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(util.PASSWORD_RESET_SUCCESSFUL, nil))
	}
}
