package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"

	"biltiflow/pkg/idempotency"
	"biltiflow/pkg/logger"
	"biltiflow/pkg/order"
	"biltiflow/pkg/otel"
)

// ReplayedHeader marks a response served from the idempotency store.
const ReplayedHeader = "Idempotent-Replayed"

// Handler serves the billing API.
type Handler struct {
	repo    order.Repository
	idem    idempotency.Store
	idemTTL time.Duration
	log     *logger.Logger
}

// NewHandler creates a Handler. idem may be nil, in which case
// Idempotency-Key headers are ignored.
func NewHandler(repo order.Repository, idem idempotency.Store, idemTTL time.Duration, log *logger.Logger) *Handler {
	return &Handler{repo: repo, idem: idem, idemTTL: idemTTL, log: log}
}

// listOrders lists orders.
// @Summary List orders
// @Produce json
// @Success 200 {array} order.Bilti
// @Router /api/billing [get]
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrders")
	defer span.End()

	orders, err := h.repo.List(ctx)
	if err != nil {
		h.log.Error(ctx, "list orders", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.Int("orders.count", len(orders)))
	h.writeJSON(w, r, http.StatusOK, orders)
}

// createOrder stores a new order and assigns its id.
// @Summary Create order
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replays the first response for repeated requests"
// @Param order body order.Bilti true "Order"
// @Success 201 {object} order.Bilti
// @Failure 400
// @Failure 409
// @Router /api/billing [post]
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrder")
	defer span.End()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Warn(ctx, "read body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	key := r.Header.Get(idempotency.Header)
	if h.idem == nil {
		key = ""
	}
	hash := idempotency.HashBody(body)
	if key != "" {
		rec, ok, err := h.idem.Get(ctx, key)
		if err != nil {
			h.log.Error(ctx, "idempotency lookup", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if ok {
			if rec.BodyHash != hash {
				w.WriteHeader(http.StatusConflict)
				return
			}
			w.Header().Set(ReplayedHeader, "true")
			writeRaw(w, rec.Status, rec.Body)
			return
		}
	}

	o, err := order.Decode(bytes.NewReader(body))
	if err != nil {
		h.log.Debug(ctx, "bad order body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	created, err := h.repo.Create(ctx, o)
	if err != nil {
		h.log.Error(ctx, "create order", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.String("order.id", created.ID()))

	data, err := json.Marshal(created)
	if err != nil {
		h.log.Error(ctx, "encode order", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if key != "" {
		rec := idempotency.Record{BodyHash: hash, Status: http.StatusCreated, Body: data}
		if err := h.idem.Put(ctx, key, rec, h.idemTTL); err != nil {
			h.log.Warn(ctx, "idempotency save", "error", err, "order_id", created.ID())
		}
	}
	h.log.Info(ctx, "order created", "order_id", created.ID())
	writeRaw(w, http.StatusCreated, data)
}

// updateOrder merges the body into an existing order.
// @Summary Update order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body order.Bilti true "Fields to overwrite"
// @Success 200 {object} order.Bilti
// @Failure 400
// @Failure 404
// @Router /api/billing/{id} [put]
func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateOrder")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("order.id", id))

	patch, err := order.Decode(r.Body)
	if err != nil {
		h.log.Debug(ctx, "bad order body", "error", err, "order_id", id)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	updated, err := h.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.log.Error(ctx, "update order", "error", err, "order_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, r, http.StatusOK, updated)
}

// deleteOrder removes an order.
// @Summary Delete order
// @Param id path string true "Order ID"
// @Success 200
// @Failure 404
// @Router /api/billing/{id} [delete]
func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteOrder")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("order.id", id))

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.log.Error(ctx, "delete order", "error", err, "order_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.log.Info(ctx, "order deleted", "order_id", id)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.log.Error(r.Context(), "encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, data)
}

func writeRaw(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
