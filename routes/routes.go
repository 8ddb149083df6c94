package routes

import (
	"net/http"
	"time"

	"ClinicBook/config/authorization"
	"ClinicBook/controllers"
	"ClinicBook/server"
	"ClinicBook/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, app *server.App) {
	origins := app.Config.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(gin.Recovery(), RequestID(), AccessLog())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", HeaderRequestID},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		if err := app.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse("ok", nil))
	})

	//public
	public := r.Group("/auth")
	controllers.Auth(public, &controllers.AuthController{
		Users:        app.UserAuth,
		Doctors:      app.DoctorAuth,
		Registration: app.Registration,
	})

	//private
	private := r.Group("/api", authorization.JWTAuth(app.Tokens))
	controllers.Doctor(public, private, &controllers.DoctorController{Directory: app.Directory})
	controllers.Slot(private, &controllers.SlotController{Slots: app.Slots})
	controllers.Appointment(private, &controllers.AppointmentController{Appointments: app.Appointments})
}
