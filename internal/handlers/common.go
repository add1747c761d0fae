package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/attachments"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/middleware"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/ownership"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/utils"
)

// actor builds the acting user's role and identity from the validated
// claims stored by the auth middleware. This is the only place session
// state is read; everything below receives the role as a plain parameter.
func actor(c *fiber.Ctx) (ownership.Role, ownership.Actor) {
	role := middleware.ActorRole(c)

	var a ownership.Actor
	if claims, ok := c.Locals("claims").(map[string]interface{}); ok {
		if sub, ok := claims["sub"].(string); ok {
			a.ID = types.EntityRef{ID: sub}
		}
		if fr, ok := claims["franchise_id"].(string); ok {
			a.Franchise = types.EntityRef{ID: fr}
		}
	}
	return role, a
}

// formFile reads one multipart file into memory.
func formFile(c *fiber.Ctx, field string) (attachments.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return attachments.File{}, err
	}
	f, err := fh.Open()
	if err != nil {
		return attachments.File{}, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return attachments.File{}, err
	}
	return attachments.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// respondError maps service errors onto the standard envelope: field-level
// validation errors become 400s with the field name, not-found stays 404,
// everything else is a 500.
func respondError(c *fiber.Ctx, err error, errorType string) error {
	var fieldErr *types.CustomError
	if errors.As(err, &fieldErr) && fieldErr.Field != "" {
		return utils.FieldErrorResponse(c, fieldErr)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}
