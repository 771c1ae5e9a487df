// file: internals/features/academics/matieres/controller/matiere_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campuseval_backend/internals/constants"
	departmentModel "campuseval_backend/internals/features/academics/departments/model"
	filiereModel "campuseval_backend/internals/features/academics/filieres/model"
	dto "campuseval_backend/internals/features/academics/matieres/dto"
	"campuseval_backend/internals/features/academics/matieres/model"
	userModel "campuseval_backend/internals/features/users/users/model"
	helper "campuseval_backend/internals/helpers"
)

type MatiereController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewMatiereController(db *gorm.DB) *MatiereController {
	return &MatiereController{DB: db, validate: validator.New()}
}

// resolveEnseignants loads the users and refuses ids that are missing or
// not enseignants. Duplicated ids in the payload are collapsed first.
func (ctl *MatiereController) resolveEnseignants(c *fiber.Ctx, ids []uuid.UUID) ([]userModel.UserModel, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	var users []userModel.UserModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("user_id IN ? AND user_role = ?", ids, constants.RoleEnseignant).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) != len(ids) {
		return nil, helper.ErrBadRequest("INVALID_ENSEIGNANT", "one or more enseignant ids are unknown or not enseignants")
	}
	return users, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// POST /api/a/matieres
func (ctl *MatiereController) Create(c *fiber.Ctx) error {
	var req dto.CreateMatiereRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&departmentModel.DepartmentModel{}).
		Where("department_id = ?", req.DepartmentID).
		Count(&n).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	if n == 0 {
		return helper.JsonAppError(c, helper.ErrNotFound("department not found"))
	}
	if req.FiliereID != nil {
		if err := ctl.DB.WithContext(c.UserContext()).Model(&filiereModel.FiliereModel{}).
			Where("filiere_id = ?", *req.FiliereID).
			Count(&n).Error; err != nil {
			return helper.JsonAppError(c, err)
		}
		if n == 0 {
			return helper.JsonAppError(c, helper.ErrNotFound("filiere not found"))
		}
	}

	enseignants, err := ctl.resolveEnseignants(c, req.EnseignantIDs)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	matiere := model.MatiereModel{
		MatiereCode:         req.Code,
		MatiereNom:          req.Nom,
		MatiereDescription:  req.Description,
		MatiereDepartmentID: req.DepartmentID,
		MatiereFiliereID:    req.FiliereID,
		MatiereEnseignants:  enseignants,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&matiere).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonAppError(c, helper.ErrConflict("a matiere with this code already exists"))
		}
		return helper.JsonAppError(c, helper.TranslatePGError(err))
	}
	resp := dto.ToMatiereResponse(&matiere)
	return helper.JsonCreated(c, "Matiere created", resp)
}

// GET /api/a/matieres
func (ctl *MatiereController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.MatiereModel{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		db = db.Where("matiere_nom ILIKE ? OR matiere_code ILIKE ?", pattern, pattern)
	}
	if filiereID := c.Query("filiere_id"); filiereID != "" {
		id, err := uuid.Parse(filiereID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid filiere id")
		}
		db = db.Where("matiere_filiere_id = ?", id)
	}
	if departmentID := c.Query("department_id"); departmentID != "" {
		id, err := uuid.Parse(departmentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
		}
		db = db.Where("matiere_department_id = ?", id)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonAppError(c, err)
	}

	var rows []model.MatiereModel
	if err := db.Preload("MatiereEnseignants").
		Order("matiere_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.ToMatiereResponses(rows), &pagination)
}

// GET /api/a/matieres/:id
func (ctl *MatiereController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid matiere id")
	}

	var matiere model.MatiereModel
	err = ctl.DB.WithContext(c.UserContext()).
		Preload("MatiereEnseignants").
		First(&matiere, "matiere_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonAppError(c, helper.ErrNotFound("matiere not found"))
	}
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	resp := dto.ToMatiereResponse(&matiere)
	return helper.JsonOK(c, "", resp)
}

// PATCH /api/a/matieres/:id — EnseignantIDs nil leaves assignments alone,
// non-nil replaces them wholesale
func (ctl *MatiereController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid matiere id")
	}

	var req dto.UpdateMatiereRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var matiere model.MatiereModel
	err = ctl.DB.WithContext(c.UserContext()).
		First(&matiere, "matiere_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonAppError(c, helper.ErrNotFound("matiere not found"))
	}
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var enseignants []userModel.UserModel
	if req.EnseignantIDs != nil {
		enseignants, err = ctl.resolveEnseignants(c, *req.EnseignantIDs)
		if err != nil {
			return helper.JsonAppError(c, err)
		}
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Code != nil {
			updates["matiere_code"] = *req.Code
		}
		if req.Nom != nil {
			updates["matiere_nom"] = *req.Nom
		}
		if req.Description != nil {
			updates["matiere_description"] = *req.Description
		}
		if req.FiliereID != nil {
			updates["matiere_filiere_id"] = *req.FiliereID
		}
		if len(updates) > 0 {
			if err := tx.Model(&matiere).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.EnseignantIDs != nil {
			if err := tx.Model(&matiere).
				Association("MatiereEnseignants").
				Replace(enseignants); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonAppError(c, helper.ErrConflict("a matiere with this code already exists"))
		}
		return helper.JsonAppError(c, helper.TranslatePGError(err))
	}
	return ctl.GetByID(c)
}

// DELETE /api/a/matieres/:id
func (ctl *MatiereController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid matiere id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM matiere_enseignants WHERE matiere_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.MatiereModel{}, "matiere_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.ErrNotFound("matiere not found")
		}
		return nil
	})
	if err != nil {
		return helper.JsonAppError(c, helper.TranslatePGError(err))
	}
	return helper.JsonDeleted(c, "Matiere deleted", fiber.Map{"matiere_id": id})
}
