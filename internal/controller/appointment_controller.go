package controller

import (
	"time"

	"bizchat-be/internal/dto"
	"bizchat-be/internal/entity"
	"bizchat-be/internal/pkg/apperr"
	"bizchat-be/internal/pkg/serverutils"
	"bizchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAppointmentController interface {
	RegisterRoutes(r fiber.Router)
	Availability(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type appointmentController struct {
	tenantService       service.ITenantService
	availabilityService service.IAvailabilityService
	bookingService      service.IBookingService
}

func NewAppointmentController(
	tenantService service.ITenantService,
	availabilityService service.IAvailabilityService,
	bookingService service.IBookingService,
) IAppointmentController {
	return &appointmentController{
		tenantService:       tenantService,
		availabilityService: availabilityService,
		bookingService:      bookingService,
	}
}

func (c *appointmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/appointment/v1")
	h.Get("/availability", c.Availability)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Post(":id/cancel", c.Cancel)
	h.Post(":id/complete", c.Complete)
}

func (c *appointmentController) Availability(ctx *fiber.Ctx) error {
	var req dto.AvailableSlotsRequest
	req.ChatbotKey = ctx.Query("chatbot_key")
	req.Date = ctx.Query("date")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	snapshot, err := c.tenantService.Snapshot(ctx.Context(), req.ChatbotKey)
	if err != nil {
		return err
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return apperr.ValidationField("date", "must be YYYY-MM-DD")
	}

	res, err := c.availabilityService.AvailableSlots(ctx.Context(), snapshot, day)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get availability", res))
}

func (c *appointmentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	snapshot, err := c.tenantService.Snapshot(ctx.Context(), req.ChatbotKey)
	if err != nil {
		return err
	}

	appointment, err := c.bookingService.Book(ctx.Context(), snapshot, &service.BookingDetails{
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
		Name:    req.CustomerName,
		Email:   req.CustomerEmail,
		Phone:   req.CustomerPhone,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create appointment", dto.CreateAppointmentResponse{
		Id:        appointment.Id,
		Service:   appointment.ServiceName,
		StartTime: appointment.StartTime,
		EndTime:   appointment.EndTime,
		Status:    appointment.Status,
	}))
}

func (c *appointmentController) GetAll(ctx *fiber.Ctx) error {
	snapshot, err := c.tenantService.Snapshot(ctx.Context(), ctx.Query("chatbot_key"))
	if err != nil {
		return err
	}

	res, err := c.bookingService.List(ctx.Context(), snapshot.Tenant.Id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all appointment", res))
}

func (c *appointmentController) Cancel(ctx *fiber.Ctx) error {
	return c.transition(ctx, entity.AppointmentStatusCancelled, "Success cancel appointment")
}

func (c *appointmentController) Complete(ctx *fiber.Ctx) error {
	return c.transition(ctx, entity.AppointmentStatusCompleted, "Success complete appointment")
}

func (c *appointmentController) transition(ctx *fiber.Ctx, status, message string) error {
	snapshot, err := c.tenantService.Snapshot(ctx.Context(), ctx.Query("chatbot_key"))
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ValidationField("id", "must be a UUID")
	}

	if err := c.bookingService.UpdateStatus(ctx.Context(), snapshot.Tenant.Id, id, status); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any](message, nil))
}
