// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campuseval_backend/internals/configs"
	authDTO "campuseval_backend/internals/features/users/auth/dto"
	service "campuseval_backend/internals/features/users/auth/service"
	userDTO "campuseval_backend/internals/features/users/users/dto"
	userModel "campuseval_backend/internals/features/users/users/model"
	helper "campuseval_backend/internals/helpers"
	"campuseval_backend/internals/middlewares/auth"
)

type AuthController struct {
	Service  *service.AuthService
	DB       *gorm.DB
	validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Service:  service.NewAuthService(db, configs.JWTSecret),
		DB:       db,
		validate: validator.New(),
	}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, user, err := ctl.Service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		User:        userDTO.ToUserResponse(user),
	})
}

// GET /api/u/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	raw, _ := c.Locals(auth.LocUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	err = ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonAppError(c, helper.ErrNotFound("user not found"))
	}
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", userDTO.ToUserResponse(&user))
}
