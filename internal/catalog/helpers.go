package catalog

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	var id uint
	if _, err := fmt.Sscan(c.Params(name), &id); err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" geçersiz")
	}
	return id, nil
}

func requireUintQuery(c *fiber.Ctx, name string) (uint, error) {
	s := c.Query(name)
	if s == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" zorunlu")
	}
	var v uint
	if _, err := fmt.Sscan(s, &v); err != nil || v == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" geçersiz")
	}
	return v, nil
}

func optionalUintQuery(c *fiber.Ctx, name string) (*uint, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	var v uint
	if _, err := fmt.Sscan(s, &v); err != nil || v == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, name+" geçersiz")
	}
	return &v, nil
}
