// Package api is the HTTP façade over the services: routing, payload
// decoding and error-to-status mapping. No business rules live here.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"demo/ecommerce/internal/metrics"
	"demo/ecommerce/internal/model"
	"demo/ecommerce/internal/service"
)

type Server struct {
	users    *service.UserService
	products *service.ProductService
	orders   *service.OrderService
	details  *service.OrderDetailService
	metrics  *metrics.ServerMetrics
}

// New builds the façade. m may be nil to disable instrumentation.
func New(users *service.UserService, products *service.ProductService, orders *service.OrderService, details *service.OrderDetailService, m *metrics.ServerMetrics) *Server {
	return &Server{users: users, products: products, orders: orders, details: details, metrics: m}
}

// Routes returns the API mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/users", s.handle("create_user", s.createUser))
	mux.HandleFunc("GET /api/v1/users/{userId}/orders", s.handle("user_orders", s.userOrders))

	mux.HandleFunc("POST /api/v1/products", s.handle("create_product", s.createProduct))
	mux.HandleFunc("GET /api/v1/products", s.handle("list_products", s.listProducts))
	mux.HandleFunc("GET /api/v1/products/{productId}", s.handle("get_product", s.getProduct))

	mux.HandleFunc("POST /api/v1/orders/user/{userId}", s.handle("create_order", s.createOrder))
	mux.HandleFunc("GET /api/v1/orders/{orderId}", s.handle("get_order", s.getOrder))
	mux.HandleFunc("GET /api/v1/orders/{orderId}/details", s.handle("order_details", s.orderDetails))
	mux.HandleFunc("PUT /api/v1/orders/update", s.handle("update_order", s.updateOrder))
	mux.HandleFunc("PUT /api/v1/orders/cancel/{orderId}", s.handle("cancel_order", s.cancelOrder))

	mux.HandleFunc("POST /api/v1/details", s.handle("create_detail", s.createDetail))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) handle(name string, h http.HandlerFunc) http.HandlerFunc {
	if s.metrics == nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		h(sw, r)
		s.metrics.Observe(name, sw.status, time.Since(start))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps service failures to HTTP statuses. NotFound and EmailExists
// surface their message; anything else stays opaque.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case model.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrEmailExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
