// file: internals/features/users/users/controller/user_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dto "campuseval_backend/internals/features/users/users/dto"
	"campuseval_backend/internals/features/users/users/model"
	helper "campuseval_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, validate: validator.New()}
}

// POST /api/a/users
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	user := model.UserModel{
		UserName:         req.Name,
		UserEmail:        req.Email,
		UserPassword:     string(hash),
		UserRole:         req.Role,
		UserDepartmentID: req.DepartmentID,
		UserFiliereID:    req.FiliereID,
		UserStatus:       model.UserStatusActive,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonAppError(c, helper.ErrConflict("a user with this email already exists"))
		}
		return helper.JsonAppError(c, helper.TranslatePGError(err))
	}
	resp := dto.ToUserResponse(&user)
	return helper.JsonCreated(c, "User created", resp)
}

// GET /api/a/users
func (ctl *UserController) List(c *fiber.Ctx) error {
	var q dto.ListUsersQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	if q.Role != nil && *q.Role != "" {
		db = db.Where("user_role = ?", *q.Role)
	}
	if q.DepartmentID != nil {
		db = db.Where("user_department_id = ?", *q.DepartmentID)
	}
	if q.FiliereID != nil {
		db = db.Where("user_filiere_id = ?", *q.FiliereID)
	}
	if q.Search != nil && *q.Search != "" {
		pattern := "%" + *q.Search + "%"
		db = db.Where("user_name ILIKE ? OR user_email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonAppError(c, err)
	}

	var rows []model.UserModel
	if err := db.Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.ToUserResponses(rows), &pagination)
}

// GET /api/a/users/:id
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	err = ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonAppError(c, helper.ErrNotFound("user not found"))
	}
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	resp := dto.ToUserResponse(&user)
	return helper.JsonOK(c, "", resp)
}

// PATCH /api/a/users/:id
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err = ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonAppError(c, helper.ErrNotFound("user not found"))
	}
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["user_name"] = *req.Name
	}
	if req.Email != nil {
		updates["user_email"] = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		updates["user_password"] = string(hash)
	}
	if req.Role != nil {
		updates["user_role"] = *req.Role
	}
	if req.DepartmentID != nil {
		updates["user_department_id"] = *req.DepartmentID
	}
	if req.FiliereID != nil {
		updates["user_filiere_id"] = *req.FiliereID
	}
	if req.Status != nil {
		updates["user_status"] = *req.Status
	}
	if len(updates) > 0 {
		err = ctl.DB.WithContext(c.UserContext()).Model(&user).
			Updates(updates).Error
		if err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonAppError(c, helper.ErrConflict("a user with this email already exists"))
			}
			return helper.JsonAppError(c, helper.TranslatePGError(err))
		}
	}
	resp := dto.ToUserResponse(&user)
	return helper.JsonOK(c, "User updated", resp)
}

// DELETE /api/a/users/:id
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.UserModel{}, "user_id = ?", id)
	if res.Error != nil {
		return helper.JsonAppError(c, helper.TranslatePGError(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.JsonAppError(c, helper.ErrNotFound("user not found"))
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"user_id": id})
}
