// file: internals/features/academics/filieres/controller/filiere_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	departmentModel "campuseval_backend/internals/features/academics/departments/model"
	"campuseval_backend/internals/features/academics/filieres/model"
	matiereModel "campuseval_backend/internals/features/academics/matieres/model"
	helper "campuseval_backend/internals/helpers"
)

type FiliereController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewFiliereController(db *gorm.DB) *FiliereController {
	return &FiliereController{DB: db, validate: validator.New()}
}

type createFiliereRequest struct {
	Name         string    `json:"name" validate:"required,min=2,max=255"`
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
}

type updateFiliereRequest struct {
	Name         *string    `json:"name" validate:"omitempty,min=2,max=255"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

func (ctl *FiliereController) departmentExists(c *fiber.Ctx, id uuid.UUID) error {
	var n int64
	err := ctl.DB.WithContext(c.UserContext()).Model(&departmentModel.DepartmentModel{}).
		Where("department_id = ?", id).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return helper.ErrNotFound("department not found")
	}
	return nil
}

// POST /api/a/filieres
func (ctl *FiliereController) Create(c *fiber.Ctx) error {
	var req createFiliereRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctl.departmentExists(c, req.DepartmentID); err != nil {
		return helper.JsonAppError(c, err)
	}

	filiere := model.FiliereModel{
		FiliereName:         req.Name,
		FiliereDepartmentID: req.DepartmentID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&filiere).Error; err != nil {
		return helper.JsonAppError(c, helper.TranslatePGError(err))
	}
	return helper.JsonCreated(c, "Filiere created", filiere)
}

// GET /api/a/filieres
func (ctl *FiliereController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.FiliereModel{})
	if search := c.Query("search"); search != "" {
		db = db.Where("filiere_name ILIKE ?", "%"+search+"%")
	}
	if departmentID := c.Query("department_id"); departmentID != "" {
		id, err := uuid.Parse(departmentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
		}
		db = db.Where("filiere_department_id = ?", id)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonAppError(c, err)
	}

	var rows []model.FiliereModel
	if err := db.Order("filiere_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &pagination)
}

// GET /api/a/filieres/:id
func (ctl *FiliereController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid filiere id")
	}

	var filiere model.FiliereModel
	err = ctl.DB.WithContext(c.UserContext()).
		First(&filiere, "filiere_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonAppError(c, helper.ErrNotFound("filiere not found"))
	}
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", filiere)
}

// PATCH /api/a/filieres/:id
func (ctl *FiliereController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid filiere id")
	}

	var req updateFiliereRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var filiere model.FiliereModel
	err = ctl.DB.WithContext(c.UserContext()).
		First(&filiere, "filiere_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonAppError(c, helper.ErrNotFound("filiere not found"))
	}
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["filiere_name"] = *req.Name
	}
	if req.DepartmentID != nil {
		if err := ctl.departmentExists(c, *req.DepartmentID); err != nil {
			return helper.JsonAppError(c, err)
		}
		updates["filiere_department_id"] = *req.DepartmentID
	}
	if len(updates) > 0 {
		err = ctl.DB.WithContext(c.UserContext()).Model(&filiere).
			Updates(updates).Error
		if err != nil {
			return helper.JsonAppError(c, helper.TranslatePGError(err))
		}
	}
	return helper.JsonOK(c, "Filiere updated", filiere)
}

// DELETE /api/a/filieres/:id — refused while matieres still point at it
func (ctl *FiliereController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid filiere id")
	}

	var inUse int64
	err = ctl.DB.WithContext(c.UserContext()).Model(&matiereModel.MatiereModel{}).
		Where("matiere_filiere_id = ?", id).
		Count(&inUse).Error
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if inUse > 0 {
		return helper.JsonAppError(c, helper.ErrConflict("filiere still has matieres"))
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.FiliereModel{}, "filiere_id = ?", id)
	if res.Error != nil {
		return helper.JsonAppError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonAppError(c, helper.ErrNotFound("filiere not found"))
	}
	return helper.JsonDeleted(c, "Filiere deleted", fiber.Map{"filiere_id": id})
}
