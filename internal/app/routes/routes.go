package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/melisdmr/brightnest/internal/app/controllers"
	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	childController *controllers.ChildController,
	classroomController *controllers.ClassroomController,
	attendanceController *controllers.AttendanceController,
	ratioController *controllers.RatioController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	staffOnly := authMiddleware.RoleRequired(models.RoleStaff, models.RoleDirector)
	directorOnly := authMiddleware.RoleRequired(models.RoleDirector)

	// User routes
	users := authenticated.Group("/users")
	{
		users.GET("/me", userController.Me)
		users.GET("/staff", directorOnly, userController.ListStaff)
	}

	// Child routes. Parents can only see their own children; management is
	// staff territory and enrollment is the director's.
	children := authenticated.Group("/children")
	{
		children.GET("/mine", childController.ListMine)

		children.GET("", staffOnly, childController.List)
		children.GET("/:id", staffOnly, childController.GetByID)
		children.DELETE("/:id/classroom", staffOnly, attendanceController.RemoveChild)
		children.POST("", directorOnly, childController.Create)
		children.PUT("/:id", directorOnly, childController.Update)
		children.DELETE("/:id", directorOnly, childController.Delete)
	}

	// Classroom routes
	classrooms := authenticated.Group("/classrooms")
	classrooms.Use(staffOnly)
	{
		classrooms.GET("", classroomController.List)
		classrooms.GET("/:id", classroomController.GetByID)
		classrooms.GET("/:id/roster", classroomController.Roster)
		classrooms.GET("/:id/ratio", ratioController.ClassroomRatio)

		classrooms.POST("/:id/children", attendanceController.AssignChild)

		classroomsDirector := classrooms.Group("")
		classroomsDirector.Use(directorOnly)
		{
			classroomsDirector.POST("", classroomController.Create)
			classroomsDirector.PUT("/:id", classroomController.Update)
			classroomsDirector.DELETE("/:id", classroomController.Delete)
		}
	}

	// Attendance routes
	attendance := authenticated.Group("/attendance")
	attendance.Use(staffOnly)
	{
		attendance.POST("/check-in", attendanceController.CheckIn)
		attendance.POST("/check-out", attendanceController.CheckOut)
	}

	// Staff attendance routes
	staff := authenticated.Group("/staff")
	staff.Use(staffOnly)
	{
		staff.POST("/attendance/sign-in", attendanceController.StaffSignIn)
		staff.POST("/attendance/sign-out", attendanceController.StaffSignOut)
		staff.GET("/attendance", attendanceController.StaffPresence)
	}

	// Dashboard routes
	dashboard := authenticated.Group("/dashboard")
	dashboard.Use(staffOnly)
	{
		dashboard.GET("/ratios", ratioController.Dashboard)
	}
}
