package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tastybites/internal/domain"
	"tastybites/internal/service"
)

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Attach the caller's identity when a session is present.
	if userID := h.optionalUserID(r); userID != 0 {
		order.UserID = &userID
	}

	if err := h.Orders.Place(r.Context(), &order); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder),
			errors.Is(err, service.ErrMissingCustomer),
			errors.Is(err, service.ErrMissingLocation),
			errors.Is(err, service.ErrBadQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to create order: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) trackOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.Track(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if order == nil {
		// Absence is a normal tracking outcome.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"found": false})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.AdvanceStatus(r.Context(), id, h.optionalUserID(r), payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidTransition):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	png, err := h.Orders.QRCode(id)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	session, ok := cartSession(w, r)
	if !ok {
		return
	}

	cart, err := h.Cart.Get(r.Context(), session)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeCart(w, cart)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	session, ok := cartSession(w, r)
	if !ok {
		return
	}

	var payload struct {
		ItemID int `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Cart.Add(r.Context(), session, payload.ItemID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrItemUnavailable) {
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeCart(w, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	session, ok := cartSession(w, r)
	if !ok {
		return
	}
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])

	cart, err := h.Cart.Remove(r.Context(), session, itemID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeCart(w, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	session, ok := cartSession(w, r)
	if !ok {
		return
	}
	if err := h.Cart.Clear(r.Context(), session); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	session, ok := cartSession(w, r)
	if !ok {
		return
	}

	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if userID := h.optionalUserID(r); userID != 0 {
		order.UserID = &userID
	}

	if err := h.Cart.Checkout(r.Context(), session, &order); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrMissingCustomer),
			errors.Is(err, service.ErrMissingLocation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var fb domain.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	fb.UserID = userIDFrom(r)

	if err := h.Feedback.Submit(r.Context(), &fb); err != nil {
		switch {
		case errors.Is(err, service.ErrRatingOutOfRange):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrDuplicateFeedback):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(fb)
}

func (h *Handler) feedbackForOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	fb, err := h.Feedback.ForOrder(orderID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if fb == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"found": false})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fb)
}

func (h *Handler) listFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.Feedback.ListAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feedback)
}

func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.Compute()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) sendStatusNotification(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email   string `json:"email"`
		OrderID int    `json:"orderId"`
		Status  string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Email == "" || payload.OrderID == 0 || payload.Status == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := h.Mailer.SendStatusEmail(r.Context(), payload.Email, payload.OrderID, payload.Status); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// cartSession resolves the cart key: the explicit session header first,
// falling back to the bearer token.
func cartSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	session := r.Header.Get("X-Session-Id")
	if session == "" {
		session = bearerToken(r)
	}
	if session == "" {
		http.Error(w, "Missing X-Session-Id header", http.StatusBadRequest)
		return "", false
	}
	return session, true
}

func writeCart(w http.ResponseWriter, cart *domain.Cart) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"entries": cart.Entries,
		"total":   cart.Total(),
	})
}
