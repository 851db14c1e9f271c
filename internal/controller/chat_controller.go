package controller

import (
	"bizchat-be/internal/dto"
	"bizchat-be/internal/pkg/serverutils"
	"bizchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Message(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	assistantService service.IAssistantService
}

func NewChatController(assistantService service.IAssistantService) IChatController {
	return &chatController{assistantService: assistantService}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("/message", c.Message)
	h.Get("/history/:sessionKey", c.History)
}

func (c *chatController) Message(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat message", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	chatbotKey := ctx.Query("chatbot_key")
	sessionKey := ctx.Params("sessionKey")

	res, err := c.assistantService.History(ctx.Context(), chatbotKey, sessionKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}
