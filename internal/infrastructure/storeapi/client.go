// Package storeapi implementa la capa de acceso resiliente al servicio remoto de la tienda
// (catálogo y pagos).
//
// Cada operación hace hasta MaxRetries intentos separados por RetryDelay y siempre
// responde con un FetchResult: los errores de red o del servidor nunca salen como
// error de Go ni como panic, viajan en FetchResult.Error.
package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa los puertos.
var (
	_ ports.CatalogFetcher   = (*Client)(nil)
	_ ports.PaymentSubmitter = (*Client)(nil)
)

const (
	// DefaultMaxRetries número de intentos por operación.
	DefaultMaxRetries = 3
	// DefaultRetryDelay pausa entre intentos fallidos.
	DefaultRetryDelay = 1000 * time.Millisecond

	productsPath = "/api/products"
	paymentPath  = "/api/payment"

	// Mensajes de respaldo cuando no hubo un error concreto que reportar.
	FetchProductsFallback  = ports.FetchProductsFallback
	ProcessPaymentFallback = ports.ProcessPaymentFallback

	maxBodyBytes = 1 << 20 // 1 MB
)

// Config parámetros del cliente.
type Config struct {
	BaseURL    string
	MaxRetries int           // < 1 se corrige a DefaultMaxRetries
	RetryDelay time.Duration // < 0 se corrige a 0
	Timeout    time.Duration // timeout de red por intento; 0 = 10 s
}

// sleepFunc suspende la ejecución d o hasta que se cancele ctx.
type sleepFunc func(ctx context.Context, d time.Duration) error

// Client adaptador HTTP hacia /api/products y /api/payment.
type Client struct {
	baseURL    string
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
	sleep      sleepFunc
	log        zerolog.Logger
}

// NewClient construye el cliente. El número de intentos nunca es menor que 1.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = 0
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		sleep:      sleepContext,
		log:        log.With().Str("component", "storeapi").Logger(),
	}
}

// ── Operaciones ───────────────────────────────────────────────────────────────

// FetchProducts obtiene el catálogo completo.
func (c *Client) FetchProducts(ctx context.Context) ports.FetchResult[[]entity.Product] {
	return do[[]entity.Product](ctx, c, "fetch_products", http.MethodGet, productsPath, nil, FetchProductsFallback)
}

// ProcessPayment envía el payload de pago (opaco para esta capa, solo debe ser serializable).
func (c *Client) ProcessPayment(ctx context.Context, payload any) ports.FetchResult[ports.PaymentReceipt] {
	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Error().Err(err).Msg("serializar payload de pago")
		return ports.Failed[ports.PaymentReceipt](fmt.Sprintf("serializar payload: %v", err))
	}
	return do[ports.PaymentReceipt](ctx, c, "process_payment", http.MethodPost, paymentPath, body, ProcessPaymentFallback)
}

// ── Bucle de reintentos ───────────────────────────────────────────────────────

// do ejecuta la petición hasta maxRetries veces. El contador y el último error son
// locales a cada llamada, así que llamadas concurrentes no comparten estado.
func do[T any](ctx context.Context, c *Client, op, method, path string, body []byte, fallback string) ports.FetchResult[T] {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		var out T
		err := c.roundTrip(ctx, method, path, body, &out)
		if err == nil {
			if attempt > 1 {
				c.log.Info().Str("op", op).Int("attempt", attempt).Msg("operación recuperada tras reintento")
			}
			return ports.Succeeded(out)
		}
		lastErr = err
		c.log.Warn().Err(err).Str("op", op).Int("attempt", attempt).Int("max", c.maxRetries).Msg("intento fallido")

		if attempt == c.maxRetries {
			break
		}
		if err := c.sleep(ctx, c.retryDelay); err != nil {
			c.log.Warn().Err(err).Str("op", op).Msg("reintentos interrumpidos por el contexto")
			break
		}
	}

	msg := fallback
	if lastErr != nil && lastErr.Error() != "" {
		msg = lastErr.Error()
	}
	c.log.Error().Str("op", op).Str("error", msg).Msg("operación agotó los reintentos")
	return ports.Failed[T](msg)
}

// roundTrip hace un único intento y decodifica la respuesta exitosa en out.
func (c *Client) roundTrip(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return err
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		return classify(resp.StatusCode, rawBody)
	}
	// Un null decodifica sin error pero deja el destino en cero.
	if bytes.Equal(bytes.TrimSpace(rawBody), []byte("null")) {
		return errors.New("respuesta con formato inesperado: cuerpo null")
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("respuesta con formato inesperado: %w", err)
	}
	return nil
}

// ── Clasificación de errores ──────────────────────────────────────────────────

// StatusError error de una respuesta HTTP no exitosa.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string { return e.Message }

type errorBody struct {
	Message string `json:"message"`
}

// classify intenta leer {"message": "..."} del cuerpo; si no se puede usa el mensaje genérico.
func classify(status int, rawBody []byte) error {
	msg := fmt.Sprintf("HTTP error! Status: %d", status)
	var eb errorBody
	if err := json.Unmarshal(rawBody, &eb); err == nil && strings.TrimSpace(eb.Message) != "" {
		msg = eb.Message
	}
	return &StatusError{Status: status, Message: msg}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
