// file: internals/features/evaluations/questionnaires/controller/questionnaire_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "campuseval_backend/internals/features/evaluations/questionnaires/dto"
	service "campuseval_backend/internals/features/evaluations/questionnaires/service"
	helper "campuseval_backend/internals/helpers"
)

type QuestionnaireController struct {
	Service  *service.QuestionnaireService
	validate *validator.Validate
}

func NewQuestionnaireController(db *gorm.DB) *QuestionnaireController {
	return &QuestionnaireController{
		Service:  service.NewQuestionnaireService(db),
		validate: validator.New(),
	}
}

// POST /api/a/questionnaires
func (ctl *QuestionnaireController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	questionnaire, err := ctl.Service.Create(c.UserContext(), &req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Questionnaire created", dto.ToQuestionnaireResponse(questionnaire))
}

// GET /api/a/questionnaires/:id
func (ctl *QuestionnaireController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid questionnaire id")
	}

	questionnaire, err := ctl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToQuestionnaireResponse(questionnaire))
}

// GET /api/a/questionnaires
func (ctl *QuestionnaireController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.Service.List(c.UserContext(), paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.ToQuestionnaireResponses(rows), &pagination)
}

// PATCH /api/a/questionnaires/:id
func (ctl *QuestionnaireController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid questionnaire id")
	}

	var req dto.UpdateQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	questionnaire, err := ctl.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Questionnaire updated", dto.ToQuestionnaireResponse(questionnaire))
}

// DELETE /api/a/questionnaires/:id
func (ctl *QuestionnaireController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid questionnaire id")
	}

	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Questionnaire deleted", fiber.Map{"questionnaire_id": id})
}
