package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/features/staff/dto"
	"assurance_backend/internals/features/staff/repository"
	helper "assurance_backend/internals/helpers"
)

// POST /api/staff/attendance
func (sc *StaffController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.AttendanceRequest
	if ok, resp := helper.BindJSON(c, sc.Validate, &req); !ok {
		return resp
	}

	m := req.ToModel()
	if err := repository.UpsertAttendance(sc.Store.Conn(c.UserContext()), m); err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusNotFound, msgStaffNotFound)
		}
		return helper.WritePGError(c, err, "", msgStaffNotFound)
	}
	return helper.JsonCreated(c, "Attendance recorded successfully", dto.FromAttendance(m))
}

// GET /api/staff/attendance?staff_id=&date_from=&date_to=
func (sc *StaffController) ListAttendance(c *fiber.Ctx) error {
	var q dto.ListAttendanceQuery
	fieldErrs := map[string][]string{}

	if raw := strings.TrimSpace(c.Query("staff_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			fieldErrs["staff_id"] = append(fieldErrs["staff_id"], "must be a positive integer")
		}
		q.StaffID = id
	}
	for key, dst := range map[string]*string{"date_from": &q.DateFrom, "date_to": &q.DateTo} {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			continue
		}
		if _, err := helper.ParseDate(raw); err != nil {
			fieldErrs[key] = append(fieldErrs[key], "must be a date in YYYY-MM-DD format")
			continue
		}
		*dst = raw
	}
	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}

	rows, err := repository.ListAttendance(sc.Store.Conn(c.UserContext()), q)
	if err != nil {
		return helper.WritePGError(c, err, "", msgStaffNotFound)
	}
	return helper.JsonList(c, "ok", dto.FromAttendanceRows(rows), nil)
}
