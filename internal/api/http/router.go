package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Customer-facing menu and cart.
	r.HandleFunc("/api/products", h.listProducts).Methods("GET")
	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{productId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{productId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")

	// Kitchen board.
	r.HandleFunc("/api/orders/open", h.listOpenOrders).Methods("GET")
	r.HandleFunc("/api/board", h.getBoard).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.transitionOrder).Methods("POST")
	r.HandleFunc("/api/orders/archive", h.archiveOrders).Methods("POST")

	// Administration.
	r.HandleFunc("/api/products", h.createProduct).Methods("POST")
	r.HandleFunc("/api/products/seed", h.seedProducts).Methods("POST")
	r.HandleFunc("/api/products/{id}", h.getProduct).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.updateProduct).Methods("PUT")
	r.HandleFunc("/api/products/{id}", h.deleteProduct).Methods("DELETE")

	r.HandleFunc("/api/tables", h.listTables).Methods("GET")
	r.HandleFunc("/api/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/tables/{id}", h.deleteTable).Methods("DELETE")
	r.HandleFunc("/api/tables/{id}/qrcode", h.generateTableQR).Methods("POST")
	r.HandleFunc("/api/tables/{id}/qrcode", h.getTableQR).Methods("GET")
	r.HandleFunc("/api/tables/{id}/close", h.closeTable).Methods("POST")

	// Reporting over archived orders.
	r.HandleFunc("/api/reports/summary", h.reportSummary).Methods("GET")
	r.HandleFunc("/api/reports/daily", h.reportDaily).Methods("GET")
	r.HandleFunc("/api/reports/top-products", h.reportTopProducts).Methods("GET")
}

// RegisterWS hooks the kitchen display feed onto the router.
func (h *Handler) RegisterWS(r *mux.Router, ws http.HandlerFunc) {
	r.HandleFunc("/ws/kitchen", ws).Methods("GET")
}
