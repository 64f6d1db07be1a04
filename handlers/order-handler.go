package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/vitalplan-api/logger"
	"github.com/krishkalaria12/vitalplan-api/middleware"
	"github.com/krishkalaria12/vitalplan-api/models"
	"go.uber.org/zap"
)

func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	type orderInput struct {
		Items           []models.OrderItem `json:"items"`
		Total           float64            `json:"total"`
		Vendor          string             `json:"vendor"`
		DeliveryAddress string             `json:"delivery_address"`
		PaymentMethod   string             `json:"payment_method"`
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var input orderInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody()
	}

	if input.Total < 0 {
		return badRequest("Total cannot be negative")
	}
	for _, item := range input.Items {
		if item.Quantity < 0 {
			return badRequest("Item quantity cannot be negative")
		}
	}
	if input.Vendor == "" {
		input.Vendor = models.DefaultVendor
	}
	if !models.ValidVendor(input.Vendor) {
		return badRequest("Invalid vendor")
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = models.DefaultPaymentMethod
	}
	if input.Items == nil {
		input.Items = []models.OrderItem{}
	}

	order := &models.Order{
		UserID:          user.ID,
		Items:           input.Items,
		Total:           input.Total,
		Status:          models.OrderPending,
		Vendor:          input.Vendor,
		DeliveryAddress: input.DeliveryAddress,
		PaymentMethod:   input.PaymentMethod,
	}
	if err := h.Orders.Create(c.UserContext(), order); err != nil {
		logger.Error("failed to create order", zap.Uint("user_id", user.ID), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create order: "+err.Error())
	}

	return respond(c, fiber.StatusCreated, "Order created successfully", fiber.Map{
		"order_id": order.ID,
		"status":   order.Status,
	})
}

func (h *Handler) ListOrders(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	orders, err := h.Orders.List(c.UserContext(), user.ID)
	if err != nil {
		return storeError(err, "Order not found")
	}
	return respond(c, fiber.StatusOK, "Orders found", orders)
}

func (h *Handler) GetOrder(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	order, err := h.Orders.Get(c.UserContext(), user.ID, id)
	if err != nil {
		return storeError(err, "Order not found")
	}
	return respond(c, fiber.StatusOK, "Order found", order)
}

// UpdateOrderStatus assigns any allowed status; transitions are not checked.
func (h *Handler) UpdateOrderStatus(c *fiber.Ctx) error {
	type statusInput struct {
		Status string `json:"status"`
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var input statusInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody()
	}

	ctx := c.UserContext()
	if _, err := h.Orders.Get(ctx, user.ID, id); err != nil {
		return storeError(err, "Order not found")
	}
	if !models.ValidOrderStatus(input.Status) {
		return badRequest("Invalid status")
	}

	if err := h.Orders.UpdateStatus(ctx, user.ID, id, input.Status); err != nil {
		return storeError(err, "Order not found")
	}
	return respond(c, fiber.StatusOK, "Order status updated to "+input.Status, fiber.Map{
		"order_id": id,
		"status":   input.Status,
	})
}
