// file: internals/features/evaluations/campagnes/controller/campagne_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campuseval_backend/internals/events"
	dto "campuseval_backend/internals/features/evaluations/campagnes/dto"
	service "campuseval_backend/internals/features/evaluations/campagnes/service"
	helper "campuseval_backend/internals/helpers"
)

type CampagneController struct {
	Service  *service.CampagneService
	validate *validator.Validate
}

func NewCampagneController(db *gorm.DB, bus *events.Bus) *CampagneController {
	return &CampagneController{
		Service:  service.NewCampagneService(db, bus),
		validate: validator.New(),
	}
}

// POST /api/a/campagnes
func (ctl *CampagneController) Create(c *fiber.Ctx) error {
	var req dto.CreateCampagneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	campagne, err := ctl.Service.Create(c.UserContext(), &req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	resp := dto.ToCampagneResponse(campagne)
	return helper.JsonCreated(c, "Campagne created", resp)
}

// GET /api/a/campagnes/:id — triggers the lazy status recompute
func (ctl *CampagneController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campagne id")
	}

	campagne, err := ctl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	resp := dto.ToCampagneResponse(campagne)
	return helper.JsonOK(c, "", resp)
}

// GET /api/a/campagnes
func (ctl *CampagneController) List(c *fiber.Ctx) error {
	var q dto.ListCampagnesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.Service.List(c.UserContext(), &q, paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.ToCampagneResponses(rows), &pagination)
}

// GET /api/campagnes/actives — public student feed
func (ctl *CampagneController) ListActives(c *fiber.Ctx) error {
	rows, err := ctl.Service.ListActives(c.UserContext())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToCampagneResponses(rows))
}

// PATCH /api/a/campagnes/:id
func (ctl *CampagneController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campagne id")
	}

	var req dto.UpdateCampagneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	campagne, err := ctl.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	resp := dto.ToCampagneResponse(campagne)
	return helper.JsonOK(c, "Campagne updated", resp)
}

// DELETE /api/a/campagnes/:id
func (ctl *CampagneController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campagne id")
	}

	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Campagne deleted", fiber.Map{"campagne_id": id})
}
