package handlers

import (
	"errors"

	"github.com/clinicore/clinic-backend/internal/authctx"
	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func isAppointmentValidationErr(err error) bool {
	return errors.Is(err, services.ErrInvalidAppointmentType) ||
		errors.Is(err, services.ErrInvalidAppointmentStatus) ||
		errors.Is(err, services.ErrInvalidDate) ||
		errors.Is(err, services.ErrInvalidTime)
}

func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.appointmentService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPatientNotFound), errors.Is(err, services.ErrDoctorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isAppointmentValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create appointment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	page, limit := pageLimit(c)
	resp, err := h.appointmentService.List(services.AppointmentFilters{
		Page:      page,
		Limit:     limit,
		Search:    c.Query("search", ""),
		PatientID: queryUUID(c, "patient_id"),
		DoctorID:  queryUUID(c, "doctor_id"),
		Status:    c.Query("status", ""),
		Type:      c.Query("type", ""),
		Date:      c.Query("date", ""),
		Sort:      c.Query("sort", ""),
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch appointments",
		})
	}
	return c.JSON(resp)
}

// Mine lists the authenticated caller's own appointments.
func (h *AppointmentHandler) Mine(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	appointments, err := h.appointmentService.ListOwn(userID, authctx.GetRole(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPatientNotFound), errors.Is(err, services.ErrDoctorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "No profile linked to this account",
			})
		case errors.Is(err, services.ErrWrongRole):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Only patient and doctor accounts have a schedule",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch appointments",
		})
	}
	return c.JSON(fiber.Map{"appointments": appointments})
}

func (h *AppointmentHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid appointment ID",
		})
	}

	resp, err := h.appointmentService.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(resp)
}

func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid appointment ID",
		})
	}

	var req dto.UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.appointmentService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAppointmentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isAppointmentValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update appointment",
		})
	}
	return c.JSON(resp)
}

func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid appointment ID",
		})
	}

	if err := h.appointmentService.Delete(id); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete appointment",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Appointment deleted successfully"})
}
