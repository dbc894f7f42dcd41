package controller

import (
	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/features/staff/dto"
	"assurance_backend/internals/features/staff/repository"
	helper "assurance_backend/internals/helpers"
)

// GET /api/subjects
func (sc *StaffController) ListSubjects(c *fiber.Ctx) error {
	rows, err := repository.ListSubjects(sc.Store.Conn(c.UserContext()))
	if err != nil {
		return helper.WritePGError(c, err, "", "Subject not found")
	}
	return helper.JsonList(c, "ok", dto.FromSubjects(rows), nil)
}

// POST /api/subjects
func (sc *StaffController) CreateSubject(c *fiber.Ctx) error {
	var req dto.SubjectRequest
	if ok, resp := helper.BindJSON(c, sc.Validate, &req); !ok {
		return resp
	}
	m := req.ToModel()
	if err := repository.CreateSubject(sc.Store.Conn(c.UserContext()), m); err != nil {
		return helper.WritePGError(c, err, "Subject code already exists", "Subject not found")
	}
	return helper.JsonCreated(c, "Subject created successfully", dto.FromSubject(m))
}
