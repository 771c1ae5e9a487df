// file: internals/features/evaluations/reponses/controller/reponse_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campuseval_backend/internals/events"
	dto "campuseval_backend/internals/features/evaluations/reponses/dto"
	"campuseval_backend/internals/features/evaluations/reponses/model"
	service "campuseval_backend/internals/features/evaluations/reponses/service"
	helper "campuseval_backend/internals/helpers"
)

type ReponseController struct {
	Service  *service.ReponseService
	validate *validator.Validate
}

func NewReponseController(db *gorm.DB, bus *events.Bus) *ReponseController {
	return &ReponseController{
		Service:  service.NewReponseService(db, bus),
		validate: validator.New(),
	}
}

// POST /api/reponses/submit — the anonymous entry point. No auth, no
// identity in the payload, and the acknowledgement carries no row ids.
func (ctl *ReponseController) Submit(c *fiber.Ctx) error {
	var req dto.SubmitEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Service.Submit(c.UserContext(), &req); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Evaluation enregistree", dto.SubmitEvaluationResponse{
		Success: true,
		Message: "merci pour votre participation",
	})
}

// GET /api/a/reponses — admin report view
func (ctl *ReponseController) List(c *fiber.Ctx) error {
	var q dto.ListReponsesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	paging := helper.ResolvePaging(c, 50, 200)

	rows, total, err := ctl.Service.List(c.UserContext(), &q, paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", toReponseResponses(rows), &pagination)
}

func toReponseResponses(rows []model.ReponseModel) []dto.ReponseResponse {
	out := make([]dto.ReponseResponse, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		out = append(out, dto.ReponseResponse{
			ReponseID:    r.ReponseID,
			CampagneID:   r.ReponseCampagneID,
			QuestionID:   r.ReponseQuestionID,
			FiliereID:    r.ReponseFiliereID,
			MatiereID:    r.ReponseMatiereID,
			EnseignantID: r.ReponseEnseignantID,
			NoteEtoiles:  r.ReponseNoteEtoiles,
			Commentaire:  r.ReponseCommentaire,
			CreatedAt:    r.ReponseCreatedAt,
		})
	}
	return out
}
