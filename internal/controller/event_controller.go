package controller

import (
	"devlabs-intake-be/internal/dto"
	"devlabs-intake-be/internal/pkg/serverutils"
	"devlabs-intake-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IEventController exposes the webhook-style ingestion surface a transport
// adapter POSTs inbound traffic to.
type IEventController interface {
	RegisterRoutes(r fiber.Router)
	PostMessage(ctx *fiber.Ctx) error
	PostSelection(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type eventController struct {
	publisher service.IPublisherService
}

func NewEventController(publisher service.IPublisherService) IEventController {
	return &eventController{publisher: publisher}
}

func (c *eventController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/intake/v1")
	h.Get("/health", c.Health)
	h.Post("/events/message", c.PostMessage)
	h.Post("/events/selection", c.PostSelection)
}

func (c *eventController) PostMessage(ctx *fiber.Ctx) error {
	var req dto.InboundMessage
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	err := c.publisher.PublishInbound(ctx.Context(), &dto.InboundEvent{
		Kind:      dto.EventKindMessage,
		UserID:    req.UserID,
		Text:      req.Text,
		FirstName: req.FirstName,
		Username:  req.Username,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse[any]("Event accepted", nil))
}

func (c *eventController) PostSelection(ctx *fiber.Ctx) error {
	var req dto.InboundSelection
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	err := c.publisher.PublishInbound(ctx.Context(), &dto.InboundEvent{
		Kind:      dto.EventKindSelection,
		UserID:    req.UserID,
		Selection: req.Selection,
		FirstName: req.FirstName,
		Username:  req.Username,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse[any]("Event accepted", nil))
}

func (c *eventController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("OK", fiber.Map{"status": "up"}))
}
