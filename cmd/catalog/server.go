package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	httpRouter "github.com/jhoicas/Tienda-api/internal/interfaces/http"
)

// messageBody formato de error que entiende storeapi.Client.
type messageBody struct {
	Message string `json:"message"`
}

// paymentAck respuesta de un pago aceptado.
type paymentAck struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Reference     string `json:"reference"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

type server struct {
	products repository.ProductRepository
	log      zerolog.Logger
}

func newServer(products repository.ProductRepository, log zerolog.Logger) *fiber.App {
	s := &server{products: products, log: log}
	app := httpRouter.NewApp("tienda-catalog", log)
	app.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	app.Get("/api/products", s.listProducts)
	app.Post("/api/payment", s.processPayment)
	return app
}

func (s *server) listProducts(c *fiber.Ctx) error {
	products, err := s.products.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// processPayment acepta el pago si el carrito es coherente con el catálogo.
func (s *server) processPayment(c *fiber.Ctx) error {
	var in dto.PaymentPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(messageBody{Message: "Invalid payment payload."})
	}
	if len(in.Items) == 0 || !in.Total.IsPositive() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(messageBody{Message: "Payment requires at least one item."})
	}
	for _, it := range in.Items {
		p, err := s.products.GetBySKU(c.UserContext(), it.SKU)
		if err != nil {
			return err
		}
		if p == nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(messageBody{Message: "Unknown product in cart."})
		}
	}

	ack := paymentAck{
		Status:        "approved",
		TransactionID: uuid.New().String(),
		Reference:     in.Reference,
		Amount:        in.Total.StringFixed(2),
		Currency:      in.Currency,
	}
	s.log.Info().
		Str("reference", ack.Reference).
		Str("transaction_id", ack.TransactionID).
		Str("amount", ack.Amount).
		Msg("pago aprobado")
	return c.JSON(ack)
}
