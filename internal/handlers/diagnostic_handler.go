package handlers

import (
	"errors"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DiagnosticHandler struct {
	diagnosticService *services.DiagnosticService
}

func NewDiagnosticHandler(diagnosticService *services.DiagnosticService) *DiagnosticHandler {
	return &DiagnosticHandler{diagnosticService: diagnosticService}
}

func isDiagnosticValidationErr(err error) bool {
	return errors.Is(err, services.ErrDiagnosisNameRequired) ||
		errors.Is(err, services.ErrInvalidDiagnosisStatus) ||
		errors.Is(err, services.ErrInvalidDate)
}

func (h *DiagnosticHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDiagnosticRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.diagnosticService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPatientNotFound), errors.Is(err, services.ErrDoctorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isDiagnosticValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create diagnostic",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *DiagnosticHandler) List(c *fiber.Ctx) error {
	page, limit := pageLimit(c)
	resp, err := h.diagnosticService.List(services.DiagnosticFilters{
		Page:          page,
		Limit:         limit,
		Search:        c.Query("search", ""),
		PatientID:     queryUUID(c, "patient_id"),
		Status:        c.Query("status", ""),
		DiagnosedDate: c.Query("diagnosed_date", ""),
		Sort:          c.Query("sort", ""),
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch diagnostics",
		})
	}
	return c.JSON(resp)
}

func (h *DiagnosticHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid diagnostic ID",
		})
	}

	resp, err := h.diagnosticService.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

func (h *DiagnosticHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid diagnostic ID",
		})
	}

	var req dto.UpdateDiagnosticRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.diagnosticService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDiagnosticNotFound), errors.Is(err, services.ErrDoctorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isDiagnosticValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update diagnostic",
		})
	}
	return c.JSON(resp)
}

func (h *DiagnosticHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid diagnostic ID",
		})
	}

	if err := h.diagnosticService.Delete(id); err != nil {
		if errors.Is(err, services.ErrDiagnosticNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete diagnostic",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Diagnostic deleted successfully"})
}
