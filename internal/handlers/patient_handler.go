package handlers

import (
	"errors"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PatientHandler struct {
	patientService *services.PatientService
}

func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

func isPatientValidationErr(err error) bool {
	return errors.Is(err, services.ErrInvalidGender) ||
		errors.Is(err, services.ErrInvalidInsurance) ||
		errors.Is(err, services.ErrDateOfBirthInvalid) ||
		errors.Is(err, services.ErrInvalidPhone) ||
		errors.Is(err, services.ErrInvalidDate) ||
		errors.Is(err, services.ErrWrongRole)
}

func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.patientService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrProfileExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isPatientValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create patient",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *PatientHandler) List(c *fiber.Ctx) error {
	page, limit := pageLimit(c)
	resp, err := h.patientService.List(services.PatientFilters{
		Page:      page,
		Limit:     limit,
		Search:    c.Query("search", ""),
		Gender:    c.Query("gender", ""),
		Insurance: c.Query("insurance_type", ""),
		Sort:      c.Query("sort", ""),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch patients",
		})
	}
	return c.JSON(resp)
}

func (h *PatientHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid patient ID",
		})
	}

	resp, err := h.patientService.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

func (h *PatientHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid patient ID",
		})
	}

	var req dto.UpdatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.patientService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPatientNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isPatientValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update patient",
		})
	}
	return c.JSON(resp)
}

func (h *PatientHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid patient ID",
		})
	}

	if err := h.patientService.Delete(id); err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete patient",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Patient deleted successfully"})
}
