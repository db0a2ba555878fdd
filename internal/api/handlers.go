package api

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"orderservice/internal/api/middleware"
	"orderservice/internal/metrics"
	"orderservice/internal/order"
	"orderservice/internal/service"
	"orderservice/internal/validator"
)

// DefaultMaxBodyBytes bounds the size of an order document.
const DefaultMaxBodyBytes int64 = 1 << 20

// OrderHandlerConfig groups dependencies for the orders handler.
type OrderHandlerConfig struct {
	Validator    service.Validator
	Service      service.OrderServiceInterface
	Metrics      *metrics.Metrics
	Logger       *zap.SugaredLogger
	MaxBodyBytes int64
}

// AddressResponse is the delivery address of an order.
type AddressResponse struct {
	City     string `json:"city" example:"Taipei"`
	District string `json:"district" example:"Da'an"`
	Street   string `json:"street" example:"Xinyi Rd"`
}

// OrderResponse represents an order as accepted and converted by the service.
type OrderResponse struct {
	ID       string          `json:"id" example:"A0000001"`
	Name     string          `json:"name" example:"Steven Hu"`
	Address  AddressResponse `json:"address"`
	Price    string          `json:"price" example:"3100"`
	Currency string          `json:"currency" example:"TWD"`
}

// OrderRequest documents the body of POST /orders.
type OrderRequest struct {
	ID       string          `json:"id" example:"A0000001"`
	Name     string          `json:"name" example:"Steven Hu"`
	Address  AddressResponse `json:"address"`
	Price    string          `json:"price" example:"100"`
	Currency string          `json:"currency" example:"USD"`
}

func orderResponseFrom(o order.Order) OrderResponse {
	resp := OrderResponse{
		ID:       o.ID,
		Name:     o.Name,
		Price:    o.Price,
		Currency: o.Currency,
	}
	if o.Address != nil {
		resp.Address = AddressResponse{
			City:     o.Address.City,
			District: o.Address.District,
			Street:   o.Address.Street,
		}
	}
	return resp
}

// HandleCreateOrder godoc
// @Summary Submit an order
// @Description Validates the order and converts its price into TWD. USD prices are multiplied by a fixed rate of 31; TWD and unknown currencies are returned unchanged.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body OrderRequest true "Order"
// @Success 201 {object} OrderResponse "Order accepted"
// @Failure 400 {object} BadRequestResponse "Malformed order (ShapeErrorResponse: error maps field paths to messages) or business rule violation (ValidationErrorResponse: error is a string, fields maps field names to messages)"
// @Failure 413 {object} ErrorResponse "Request body too large"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /orders [post]
func HandleCreateOrder(cfg OrderHandlerConfig) http.HandlerFunc {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.RequestIDFromContext(r.Context())

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
				return
			}
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
			return
		}

		ord, err := order.Decode(raw)
		if err != nil {
			var shapeErr *order.ShapeError
			if errors.As(err, &shapeErr) {
				cfg.Metrics.ObserveRejected(metrics.ReasonShape, shapeErr.Fields)
				log.Infow("Malformed order", "request_id", reqID, "fields", shapeErr.Fields)
				writeJSON(w, http.StatusBadRequest, ShapeErrorResponse{Error: shapeErr.Fields})
				return
			}
			cfg.Metrics.ObserveRejected(metrics.ReasonInternal, nil)
			log.Errorw("Shape check failed", "request_id", reqID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
			return
		}

		if _, err := cfg.Validator.Validate(ord.Record()); err != nil {
			var vErr *validator.ValidationError
			if errors.As(err, &vErr) {
				cfg.Metrics.ObserveRejected(metrics.ReasonValidation, vErr.Fields)
				log.Infow("Order rejected", "request_id", reqID, "order_id", ord.ID, "fields", vErr.Fields)
				writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Error: vErr.Error(), Fields: vErr.Fields})
				return
			}
			cfg.Metrics.ObserveRejected(metrics.ReasonInternal, nil)
			log.Errorw("Order validation failed", "request_id", reqID, "order_id", ord.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
			return
		}

		out, err := cfg.Service.Process(ord)
		if err != nil {
			cfg.Metrics.ObserveRejected(metrics.ReasonInternal, nil)
			log.Errorw("Order processing failed", "request_id", reqID, "order_id", ord.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
			return
		}

		cfg.Metrics.ObserveProcessed(ord.Currency)
		log.Infow("Order accepted", "request_id", reqID, "order_id", out.ID, "currency", ord.Currency)
		writeJSON(w, http.StatusCreated, orderResponseFrom(out))
	}
}
