package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	departmentController "campuseval_backend/internals/features/academics/departments/controller"
)

// DepartmentAdminRoutes mounts under /api/a
func DepartmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := departmentController.NewDepartmentController(db)

	departments := r.Group("/departments")
	departments.Post("/", ctl.Create)
	departments.Get("/", ctl.List)
	departments.Get("/:id", ctl.GetByID)
	departments.Patch("/:id", ctl.Update)
	departments.Delete("/:id", ctl.Delete)
}
