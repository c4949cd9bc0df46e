package api

import (
	"encoding/json"
	"net/http"

	"demo/ecommerce/internal/model"
	"demo/ecommerce/internal/validate"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if err := validate.CreateUser(req.Email, req.Password); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Hashing belongs to the auth collaborator; the credential is stored
	// opaquely here.
	u, err := s.users.Create(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) userOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if err := validate.ID("user_id", userID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	orders, err := s.users.OrdersByUser(r.Context(), userID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if err := validate.CreateProduct(req.Name, req.PriceCents); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := s.products.Create(r.Context(), req.Name, req.Description, req.PriceCents)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.ListAll(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	if err := validate.ID("product_id", productID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := s.products.GetByID(r.Context(), productID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if err := validate.ID("user_id", userID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o, err := s.orders.Create(r.Context(), userID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	if err := validate.ID("order_id", orderID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o, err := s.orders.GetByID(r.Context(), orderID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) orderDetails(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	if err := validate.ID("order_id", orderID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	details, err := s.details.ListByOrder(r.Context(), orderID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if details == nil {
		details = []model.OrderDetail{}
	}
	writeJSON(w, http.StatusOK, details)
}

type updateStatusRequest struct {
	OrderID string            `json:"order_id"`
	Status  model.OrderStatus `json:"status"`
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if err := validate.UpdateStatus(req.OrderID, req.Status); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o, err := s.orders.UpdateStatus(r.Context(), req.OrderID, req.Status)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	if err := validate.ID("order_id", orderID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o, err := s.orders.Cancel(r.Context(), orderID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

type createDetailRequest struct {
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) createDetail(w http.ResponseWriter, r *http.Request) {
	var req createDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if err := validate.CreateDetail(req.OrderID, req.ProductID, req.Quantity); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d, err := s.details.Create(r.Context(), req.OrderID, req.ProductID, req.Quantity)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}
