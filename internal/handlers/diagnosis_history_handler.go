package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DiagnosisHistoryHandler struct {
	historyService *services.DiagnosisHistoryService
}

func NewDiagnosisHistoryHandler(historyService *services.DiagnosisHistoryService) *DiagnosisHistoryHandler {
	return &DiagnosisHistoryHandler{historyService: historyService}
}

func isHistoryValidationErr(err error) bool {
	return errors.Is(err, services.ErrInvalidMonth) ||
		errors.Is(err, services.ErrInvalidLevel) ||
		strings.Contains(err.Error(), "must be between")
}

func (h *DiagnosisHistoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDiagnosisHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.historyService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPatientNotFound), errors.Is(err, services.ErrDoctorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrHistoryExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isHistoryValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create diagnosis history",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *DiagnosisHistoryHandler) List(c *fiber.Ctx) error {
	page, limit := pageLimit(c)
	year, _ := strconv.Atoi(c.Query("year", "0"))
	resp, err := h.historyService.List(services.DiagnosisHistoryFilters{
		Page:           page,
		Limit:          limit,
		Search:         c.Query("search", ""),
		PatientID:      queryUUID(c, "patient_id"),
		Month:          c.Query("month", ""),
		Year:           year,
		SystolicLevel:  c.Query("systolic_level", ""),
		DiastolicLevel: c.Query("diastolic_level", ""),
		HeartRateLevel: c.Query("heart_rate_level", ""),
		Sort:           c.Query("sort", ""),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch diagnosis histories",
		})
	}
	return c.JSON(resp)
}

func (h *DiagnosisHistoryHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid diagnosis history ID",
		})
	}

	resp, err := h.historyService.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

func (h *DiagnosisHistoryHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid diagnosis history ID",
		})
	}

	var req dto.UpdateDiagnosisHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.historyService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHistoryNotFound), errors.Is(err, services.ErrDoctorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isHistoryValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update diagnosis history",
		})
	}
	return c.JSON(resp)
}

func (h *DiagnosisHistoryHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid diagnosis history ID",
		})
	}

	if err := h.historyService.Delete(id); err != nil {
		if errors.Is(err, services.ErrHistoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete diagnosis history",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Diagnosis history deleted successfully"})
}
