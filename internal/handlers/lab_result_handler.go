package handlers

import (
	"errors"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LabResultHandler struct {
	labService *services.LabResultService
}

func NewLabResultHandler(labService *services.LabResultService) *LabResultHandler {
	return &LabResultHandler{labService: labService}
}

func isLabResultValidationErr(err error) bool {
	return errors.Is(err, services.ErrTestNameRequired) ||
		errors.Is(err, services.ErrInvalidLabResultStatus) ||
		errors.Is(err, services.ErrPerformedDateRequired) ||
		errors.Is(err, services.ErrInvalidDate)
}

func (h *LabResultHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLabResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.labService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPatientNotFound), errors.Is(err, services.ErrDoctorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isLabResultValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create lab result",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *LabResultHandler) List(c *fiber.Ctx) error {
	page, limit := pageLimit(c)
	resp, err := h.labService.List(services.LabResultFilters{
		Page:          page,
		Limit:         limit,
		Search:        c.Query("search", ""),
		PatientID:     queryUUID(c, "patient_id"),
		Status:        c.Query("status", ""),
		PerformedDate: c.Query("performed_date", ""),
		ReportedDate:  c.Query("reported_date", ""),
		Sort:          c.Query("sort", ""),
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch lab results",
		})
	}
	return c.JSON(resp)
}

func (h *LabResultHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid lab result ID",
		})
	}

	resp, err := h.labService.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

func (h *LabResultHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid lab result ID",
		})
	}

	var req dto.UpdateLabResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.labService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLabResultNotFound), errors.Is(err, services.ErrDoctorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isLabResultValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update lab result",
		})
	}
	return c.JSON(resp)
}

func (h *LabResultHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid lab result ID",
		})
	}

	if err := h.labService.Delete(id); err != nil {
		if errors.Is(err, services.ErrLabResultNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete lab result",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Lab result deleted successfully"})
}
