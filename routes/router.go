package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bvtech/attendance-server/config"
	"github.com/bvtech/attendance-server/controllers"
	"github.com/bvtech/attendance-server/middleware"
	"github.com/bvtech/attendance-server/repository"
	"github.com/bvtech/attendance-server/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(utils.RequestLogger(utils.Logger))
	r.Use(utils.Recovery(utils.Logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	employeeRepo := repository.NewEmployeeRepository(db, cfg.EmployeeIDPrefix)
	attendanceRepo := repository.NewAttendanceRepository(db)

	authController := controllers.NewAuthController(employeeRepo)
	employeeController := controllers.NewEmployeeController(employeeRepo)
	attendanceController := controllers.NewAttendanceController(attendanceRepo, employeeRepo)
	geoController := controllers.NewGeoController()

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "attendance task server")
	})
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.GET("/ip-api/:ip", geoController.Lookup)
	api.POST("/jwt", middleware.RateLimitMiddleware(), authController.IssueToken)
	api.GET("/users/admin/:email", middleware.AuthRequired(), authController.AdminCheck)
	api.POST("/usersexist/:email", authController.UserExists)
	api.PUT("/users", authController.ClaimAccount)

	attendance := api.Group("/attendance")
	attendance.Use(middleware.AuthRequired())
	attendance.GET("/:email", attendanceController.ListForEmployee)
	attendance.POST("", attendanceController.StartSession)
	attendance.PUT("/:id", attendanceController.CloseSession)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired(employeeRepo))
	admin.GET("/employee", employeeController.List)
	admin.POST("/employee", employeeController.Create)
	admin.PUT("/employee/:id", employeeController.Update)
	admin.DELETE("/employee/:id", employeeController.Delete)
	admin.GET("/employeeName", employeeController.ListNames)
	admin.GET("/attendance", attendanceController.AdminList)
	admin.POST("/attendance/:id", attendanceController.AdminDetail)

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "route not found"})
	})

	return r
}
