// file: internals/features/evaluations/analytics/controller/analytics_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "campuseval_backend/internals/features/evaluations/analytics/dto"
	service "campuseval_backend/internals/features/evaluations/analytics/service"
	helper "campuseval_backend/internals/helpers"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{Service: service.NewAnalyticsService(db)}
}

func parseFilter(c *fiber.Ctx) (*dto.AnalyticsFilter, error) {
	var f dto.AnalyticsFilter
	if err := c.QueryParser(&f); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	return &f, nil
}

// GET /api/analytics/overview
func (ctl *AnalyticsController) Overview(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return err
	}

	out, err := ctl.Service.Overview(c.UserContext(), f)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", out)
}

// GET /api/analytics/departments/:id
func (ctl *AnalyticsController) DepartmentStats(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}
	f, err := parseFilter(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	out, totalFilieres, err := ctl.Service.DepartmentStats(c.UserContext(), id, f, paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(totalFilieres, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", out, &pagination)
}

// GET /api/analytics/filieres/:id
func (ctl *AnalyticsController) FiliereStats(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid filiere id")
	}
	f, err := parseFilter(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	out, totalMatieres, err := ctl.Service.FiliereStats(c.UserContext(), id, f, paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(totalMatieres, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", out, &pagination)
}

// GET /api/analytics/trends
func (ctl *AnalyticsController) Trends(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 12, 60)

	points, total, err := ctl.Service.Trends(c.UserContext(), f, paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", points, &pagination)
}

// GET /api/analytics/campagnes/:id/distribution
func (ctl *AnalyticsController) Distribution(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campagne id")
	}

	out, err := ctl.Service.Distribution(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "", out)
}
