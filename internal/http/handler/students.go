package handler

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"studentapi/internal/model"
	"studentapi/internal/service"
)

// importResponse is the body returned by a successful import.
type importResponse struct {
	Message string `json:"message"`
	service.ImportResult
}

// ListStudents godoc
// @Summary List students
// @Description Newest first. universidad and jornada are exact filters, search matches name, surname, email or university.
// @Tags students
// @Produce json
// @Param universidad query string false "University"
// @Param jornada query string false "Schedule (Diurna|Nocturna)"
// @Param search query string false "Case-insensitive text search"
// @Success 200 {object} service.StudentListResult
// @Router /students [get]
func ListStudents(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), service.ListFilter{
			Universidad: c.Query("universidad"),
			Jornada:     c.Query("jornada"),
			Search:      c.Query("search"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateStudent godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param student body model.StudentInput true "Student"
// @Success 201 {object} model.Student
// @Failure 400 {object} errorPayload
// @Router /students [post]
func CreateStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.StudentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}

		st, err := svc.Create(c.UserContext(), in.Student())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(st)
	}
}

// GetStudent godoc
// @Summary Get a student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} model.Student
// @Failure 404 {object} errorPayload
// @Router /students/{id} [get]
func GetStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := utils.CopyString(c.Params("id"))
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		st, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// UpdateStudent godoc
// @Summary Replace a student's fields
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param student body model.StudentInput true "Student"
// @Success 200 {object} model.Student
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /students/{id} [put]
func UpdateStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := utils.CopyString(c.Params("id"))
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.StudentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}

		st, err := svc.Update(c.UserContext(), id, in.Student())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Param id path string true "Student ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /students/{id} [delete]
func DeleteStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := utils.CopyString(c.Params("id"))
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ImportStudents godoc
// @Summary Bulk import students from a CSV or XLSX file
// @Description Valid rows are stored in one batch. Rejected rows are reported with their 1-based line number.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} importResponse
// @Failure 400 {object} errorPayload
// @Router /students/import-csv [post]
func ImportStudents(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "No file provided")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		res, err := svc.Import(c.UserContext(), service.ImportUpload{
			Filename:    fh.Filename,
			ContentType: ct,
			Content:     content,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(importResponse{
			Message:      fmt.Sprintf("Successfully imported %d students", res.Imported),
			ImportResult: *res,
		})
	}
}
