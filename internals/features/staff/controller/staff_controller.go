package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	database "assurance_backend/internals/databases"
	"assurance_backend/internals/features/staff/dto"
	"assurance_backend/internals/features/staff/model"
	"assurance_backend/internals/features/staff/repository"
	helper "assurance_backend/internals/helpers"
)

const msgStaffNotFound = "Staff member not found"

type StaffController struct {
	Store    *database.Store
	Validate *validator.Validate
}

func NewStaffController(store *database.Store, v *validator.Validate) *StaffController {
	return &StaffController{Store: store, Validate: v}
}

// staff_id and email are both unique; name the one that clashed.
func duplicateStaffMessage(err error) string {
	switch helper.ViolatedConstraint(err) {
	case "staff_email_key":
		return "Email already exists"
	case "staff_staff_id_key":
		return "Staff ID already exists"
	default:
		return "Staff ID or email already exists"
	}
}

func writeStaffError(c *fiber.Ctx, err error) error {
	return helper.WritePGError(c, err, duplicateStaffMessage(err), msgStaffNotFound)
}

// GET /api/staff?search=&status=
func (sc *StaffController) List(c *fiber.Ctx) error {
	q := dto.ListStaffQuery{
		Search:   c.Query("search"),
		Statuses: helper.SplitCSV(c.Query("status")),
	}
	var paging *helper.Paging
	if p, ok := helper.ResolvePaging(c, 20, 200); ok {
		paging = &p
	}

	rows, total, err := repository.ListStaff(sc.Store.Conn(c.UserContext()), q, paging)
	if err != nil {
		return writeStaffError(c, err)
	}
	var pg *helper.Pagination
	if paging != nil {
		pg = helper.BuildPagination(total, *paging, len(rows))
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), pg)
}

// GET /api/staff/:id (with assigned subjects)
func (sc *StaffController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	db := sc.Store.Conn(c.UserContext())
	s, err := repository.GetStaff(db, id)
	if err != nil {
		return writeStaffError(c, err)
	}
	subjects, err := repository.SubjectsOfStaff(db, id)
	if err != nil {
		return writeStaffError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.WithSubjects(s, subjects))
}

// POST /api/staff
func (sc *StaffController) Create(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if ok, resp := helper.BindJSON(c, sc.Validate, &req); !ok {
		return resp
	}
	m := req.ToModel()
	if err := repository.CreateStaff(sc.Store.Conn(c.UserContext()), m); err != nil {
		return writeStaffError(c, err)
	}
	return helper.JsonCreated(c, "Staff member created successfully", dto.FromModel(m))
}

// PUT /api/staff/:id
func (sc *StaffController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.StaffRequest
	if ok, resp := helper.BindJSON(c, sc.Validate, &req); !ok {
		return resp
	}

	db := sc.Store.Conn(c.UserContext())
	if err := repository.UpdateStaff(db, id, req.ToModel()); err != nil {
		return writeStaffError(c, err)
	}
	s, err := repository.GetStaff(db, id)
	if err != nil {
		return writeStaffError(c, err)
	}
	return helper.JsonUpdated(c, "Staff member updated successfully", dto.FromModel(s))
}

// DELETE /api/staff/:id
func (sc *StaffController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := repository.DeleteStaff(sc.Store.Conn(c.UserContext()), id); err != nil {
		return writeStaffError(c, err)
	}
	return helper.JsonDeleted(c, "Staff member deleted successfully", fiber.Map{"id": id})
}

// POST /api/staff/:id/subjects
func (sc *StaffController) AssignSubject(c *fiber.Ctx) error {
	staffID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.AssignSubjectRequest
	if ok, resp := helper.BindJSON(c, sc.Validate, &req); !ok {
		return resp
	}

	a := &model.StaffSubjectModel{StaffID: staffID, SubjectID: req.SubjectID}
	err = repository.AssignSubject(sc.Store.Conn(c.UserContext()), a)
	switch {
	case err == nil:
	case helper.IsForeignKeyViolation(err):
		return helper.JsonError(c, fiber.StatusNotFound, "Staff member or subject not found")
	default:
		return helper.WritePGError(c, err, "Subject already assigned to this staff member", msgStaffNotFound)
	}
	return helper.JsonCreated(c, "Subject assigned successfully", fiber.Map{
		"id":         a.ID,
		"staff_id":   a.StaffID,
		"subject_id": a.SubjectID,
	})
}

// DELETE /api/staff/:staffId/subjects/:subjectId
func (sc *StaffController) UnassignSubject(c *fiber.Ctx) error {
	staffID, err := helper.ParseIDParam(c, "staffId")
	if err != nil {
		return err
	}
	subjectID, err := helper.ParseIDParam(c, "subjectId")
	if err != nil {
		return err
	}
	if err := repository.UnassignSubject(sc.Store.Conn(c.UserContext()), staffID, subjectID); err != nil {
		return helper.WritePGError(c, err, "", "Subject assignment not found")
	}
	return helper.JsonDeleted(c, "Subject removed successfully", nil)
}
