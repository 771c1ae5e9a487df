// file: internals/features/academics/departments/controller/department_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campuseval_backend/internals/features/academics/departments/model"
	filiereModel "campuseval_backend/internals/features/academics/filieres/model"
	helper "campuseval_backend/internals/helpers"
)

type DepartmentController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db, validate: validator.New()}
}

type departmentRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

// POST /api/a/departments
func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var req departmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	department := model.DepartmentModel{DepartmentName: req.Name}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&department).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonAppError(c, helper.ErrConflict("a department with this name already exists"))
		}
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Department created", department)
}

// GET /api/a/departments
func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.DepartmentModel{})
	if search := c.Query("search"); search != "" {
		db = db.Where("department_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonAppError(c, err)
	}

	var rows []model.DepartmentModel
	if err := db.Order("department_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &pagination)
}

// GET /api/a/departments/:id
func (ctl *DepartmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	var department model.DepartmentModel
	err = ctl.DB.WithContext(c.UserContext()).
		First(&department, "department_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonAppError(c, helper.ErrNotFound("department not found"))
	}
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", department)
}

// PATCH /api/a/departments/:id
func (ctl *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	var req departmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var department model.DepartmentModel
	err = ctl.DB.WithContext(c.UserContext()).
		First(&department, "department_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonAppError(c, helper.ErrNotFound("department not found"))
	}
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	err = ctl.DB.WithContext(c.UserContext()).Model(&department).
		Update("department_name", req.Name).Error
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonAppError(c, helper.ErrConflict("a department with this name already exists"))
		}
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Department updated", department)
}

// DELETE /api/a/departments/:id — refused while filieres still point at it
func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	var inUse int64
	err = ctl.DB.WithContext(c.UserContext()).Model(&filiereModel.FiliereModel{}).
		Where("filiere_department_id = ?", id).
		Count(&inUse).Error
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if inUse > 0 {
		return helper.JsonAppError(c, helper.ErrConflict("department still has filieres"))
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		return helper.JsonAppError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonAppError(c, helper.ErrNotFound("department not found"))
	}
	return helper.JsonDeleted(c, "Department deleted", fiber.Map{"department_id": id})
}
