package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	database "assurance_backend/internals/databases"
	"assurance_backend/internals/features/students/dto"
	"assurance_backend/internals/features/students/repository"
	helper "assurance_backend/internals/helpers"
)

const (
	msgDuplicateStudent = "Student ID already exists"
	msgStudentNotFound  = "Student not found"
)

type StudentController struct {
	Store    *database.Store
	Validate *validator.Validate
}

func NewStudentController(store *database.Store, v *validator.Validate) *StudentController {
	return &StudentController{Store: store, Validate: v}
}

// GET /api/students?search=&enrollment_category=&status=Active,Graduated&page=&per_page=
func (sc *StudentController) List(c *fiber.Ctx) error {
	q := dto.ListStudentsQuery{
		Search:             c.Query("search"),
		EnrollmentCategory: c.Query("enrollment_category"),
		Statuses:           helper.SplitCSV(c.Query("status")),
	}

	var paging *helper.Paging
	if p, ok := helper.ResolvePaging(c, 20, 200); ok {
		paging = &p
	}

	rows, total, err := repository.ListStudents(sc.Store.Conn(c.UserContext()), q, paging)
	if err != nil {
		return helper.WritePGError(c, err, msgDuplicateStudent, msgStudentNotFound)
	}

	var pg *helper.Pagination
	if paging != nil {
		pg = helper.BuildPagination(total, *paging, len(rows))
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), pg)
}

// GET /api/students/:id
func (sc *StudentController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	s, err := repository.GetStudent(sc.Store.Conn(c.UserContext()), id)
	if err != nil {
		return helper.WritePGError(c, err, msgDuplicateStudent, msgStudentNotFound)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(s))
}

// POST /api/students
func (sc *StudentController) Create(c *fiber.Ctx) error {
	var req dto.StudentRequest
	if ok, resp := helper.BindJSON(c, sc.Validate, &req); !ok {
		return resp
	}

	m := req.ToModel()
	if err := repository.CreateStudent(sc.Store.Conn(c.UserContext()), m); err != nil {
		return helper.WritePGError(c, err, msgDuplicateStudent, msgStudentNotFound)
	}
	return helper.JsonCreated(c, "Student created successfully", dto.FromModel(m))
}

// PUT /api/students/:id
func (sc *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.StudentRequest
	if ok, resp := helper.BindJSON(c, sc.Validate, &req); !ok {
		return resp
	}

	db := sc.Store.Conn(c.UserContext())
	if err := repository.UpdateStudent(db, id, req.ToModel()); err != nil {
		return helper.WritePGError(c, err, msgDuplicateStudent, msgStudentNotFound)
	}
	s, err := repository.GetStudent(db, id)
	if err != nil {
		return helper.WritePGError(c, err, msgDuplicateStudent, msgStudentNotFound)
	}
	return helper.JsonUpdated(c, "Student updated successfully", dto.FromModel(s))
}

// DELETE /api/students/:id
func (sc *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := repository.DeleteStudent(sc.Store.Conn(c.UserContext()), id); err != nil {
		return helper.WritePGError(c, err, msgDuplicateStudent, msgStudentNotFound)
	}
	return helper.JsonDeleted(c, "Student deleted successfully", fiber.Map{"id": id})
}
