package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"sabor-do-para/internal/board"
	"sabor-do-para/internal/cart"
	"sabor-do-para/internal/domain"
	"sabor-do-para/internal/service"
)

const sessionHeader = "X-Session-ID"

type Handler struct {
	Carts    *cart.Store
	Products service.ProductServiceInterface
	Tables   service.TableServiceInterface
	Orders   service.OrderServiceInterface
	Reports  service.ReportServiceInterface

	// QRBaseURL is prefixed onto generated table QR targets.
	QRBaseURL string
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps service sentinel errors onto the HTTP taxonomy:
// validation 400/422, not found 404, illegal transition 409, everything
// else a retryable 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidItem),
		errors.Is(err, service.ErrTotalMismatch),
		errors.Is(err, service.ErrMissingCustomerInfo),
		errors.Is(err, service.ErrProductName),
		errors.Is(err, service.ErrProductPrice),
		errors.Is(err, service.ErrTableNumber):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrOutsideServiceArea):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrTableNotFound),
		errors.Is(err, service.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "sabor-do-para",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// --- menu ---

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Products.Create(r.Context(), &p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, err := h.Products.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p.ID = id

	if err := h.Products.Update(r.Context(), &p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Products.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) seedProducts(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.Products.Seed(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"inserted": inserted})
}

// --- cart ---

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		http.Error(w, "missing "+sessionHeader+" header", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

type cartView struct {
	Items       []domain.CartItem `json:"items"`
	TotalItems  int               `json:"total_items"`
	TotalAmount float64           `json:"total_amount"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{
		Items:       c.Items(),
		TotalItems:  c.TotalItems(),
		TotalAmount: c.TotalAmount(),
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, viewOf(h.Carts.Get(session)))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var payload struct {
		ProductID   int      `json:"product_id"`
		Observation string   `json:"observation"`
		Extras      []string `json:"extras"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := h.Products.Get(r.Context(), payload.ProductID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	c := h.Carts.Get(session)
	if err := c.AddItem(product, payload.Observation, payload.Extras); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	productID, _ := strconv.Atoi(mux.Vars(r)["productId"])

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := h.Carts.Get(session)
	if err := c.UpdateQuantity(productID, payload.Quantity); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	productID, _ := strconv.Atoi(mux.Vars(r)["productId"])

	c := h.Carts.Get(session)
	c.RemoveItem(productID)
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	h.Carts.Get(session).Clear()
	w.WriteHeader(http.StatusNoContent)
}

// --- checkout ---

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var payload struct {
		TableID       int                  `json:"table_id"`
		Customer      *domain.CustomerInfo `json:"customer"`
		PaymentMethod string               `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := h.Carts.Get(session)
	order, err := h.Orders.Submit(r.Context(), service.SubmitRequest{
		Items:         c.Items(),
		Total:         c.TotalAmount(),
		TableID:       payload.TableID,
		Customer:      payload.Customer,
		PaymentMethod: payload.PaymentMethod,
	})
	if err != nil {
		// The cart survives a failed submission.
		writeServiceError(w, err)
		return
	}

	c.Clear()
	writeJSON(w, http.StatusCreated, order)
}

// --- kitchen ---

func (h *Handler) listOpenOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOpen(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOpen(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board.Partition(orders))
}

func (h *Handler) transitionOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Transition(r.Context(), id, payload.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) archiveOrders(w http.ResponseWriter, r *http.Request) {
	archived, stillOpen, err := h.Orders.ArchiveAllReady(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"archived":   archived,
		"still_open": stillOpen,
	})
}

func (h *Handler) closeTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	payload := struct {
		Status domain.OrderStatus `json:"status"`
	}{Status: domain.StatusDelivered}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	closed, err := h.Orders.CloseAllForTable(r.Context(), id, payload.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"closed": closed})
}

// --- tables ---

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Number string `json:"number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	table, err := h.Tables.Create(r.Context(), payload.Number)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Tables.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) generateTableQR(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	table, err := h.Tables.GenerateQR(r.Context(), id, h.QRBaseURL)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) getTableQR(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	table, err := h.Tables.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if len(table.QRCode) == 0 {
		table, err = h.Tables.GenerateQR(r.Context(), id, h.QRBaseURL)
		if err != nil {
			writeServiceError(w, err)
			return
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(table.QRCode)
}

// --- reports ---

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

func (h *Handler) reportSummary(w http.ResponseWriter, r *http.Request) {
	from := parseDate(r.URL.Query().Get("from"))
	to := parseDate(r.URL.Query().Get("to"))
	if to != nil {
		end := to.Add(24 * time.Hour)
		to = &end
	}

	report, err := h.Reports.Range(r.Context(), from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) reportDaily(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}

	totals, err := h.Reports.Daily(r.Context(), day)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *Handler) reportTopProducts(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	top, err := h.Reports.TopProducts(r.Context(), day, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}
