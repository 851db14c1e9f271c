package controller

import (
	"bizchat-be/internal/dto"
	"bizchat-be/internal/pkg/serverutils"
	"bizchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITenantController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type tenantController struct {
	tenantService service.ITenantService
}

func NewTenantController(tenantService service.ITenantService) ITenantController {
	return &tenantController{tenantService: tenantService}
}

func (c *tenantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tenant/v1")
	h.Post("", c.Create)
	h.Get(":chatbotKey", c.Show)
}

func (c *tenantController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTenantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tenantService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create tenant", res))
}

// Show is the widget bootstrap endpoint: the public subset of the
// tenant's configuration, resolved by chatbot key.
func (c *tenantController) Show(ctx *fiber.Ctx) error {
	snapshot, err := c.tenantService.Snapshot(ctx.Context(), ctx.Params("chatbotKey"))
	if err != nil {
		return err
	}

	res, err := c.tenantService.Profile(ctx.Context(), snapshot.Tenant.Id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show tenant", res))
}
