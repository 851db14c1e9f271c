package controller

import (
	"bizchat-be/internal/dto"
	"bizchat-be/internal/pkg/apperr"
	"bizchat-be/internal/pkg/serverutils"
	"bizchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	tenantService   service.ITenantService
	documentService service.IDocumentService
}

func NewDocumentController(
	tenantService service.ITenantService,
	documentService service.IDocumentService,
) IDocumentController {
	return &documentController{
		tenantService:   tenantService,
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Get("", c.GetAll)
	h.Post("", c.Ingest)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *documentController) Ingest(ctx *fiber.Ctx) error {
	snapshot, err := c.tenantService.Snapshot(ctx.Context(), ctx.Query("chatbot_key"))
	if err != nil {
		return err
	}

	var req dto.IngestDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.documentService.Ingest(ctx.Context(), snapshot.Tenant.Id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success ingest document", res))
}

func (c *documentController) GetAll(ctx *fiber.Ctx) error {
	snapshot, err := c.tenantService.Snapshot(ctx.Context(), ctx.Query("chatbot_key"))
	if err != nil {
		return err
	}

	res, err := c.documentService.List(ctx.Context(), snapshot.Tenant.Id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all document", res))
}

func (c *documentController) Update(ctx *fiber.Ctx) error {
	snapshot, err := c.tenantService.Snapshot(ctx.Context(), ctx.Query("chatbot_key"))
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ValidationField("id", "must be a UUID")
	}

	var req dto.IngestDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.documentService.Update(ctx.Context(), snapshot.Tenant.Id, id, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update document", nil))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	snapshot, err := c.tenantService.Snapshot(ctx.Context(), ctx.Query("chatbot_key"))
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ValidationField("id", "must be a UUID")
	}

	if err := c.documentService.Delete(ctx.Context(), snapshot.Tenant.Id, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete document", nil))
}
