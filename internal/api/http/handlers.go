package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tastybites/internal/domain"
	"tastybites/internal/notifier"
	"tastybites/internal/service"
)

type Handler struct {
	Menu      service.MenuServiceInterface
	Offers    service.OfferServiceInterface
	Branches  service.BranchServiceInterface
	Settings  service.SettingsServiceInterface
	Orders    service.OrderServiceInterface
	Cart      service.CartServiceInterface
	Feedback  service.FeedbackServiceInterface
	Analytics service.AnalyticsServiceInterface
	Auth      service.AuthServiceInterface
	Mailer    notifier.Mailer
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.requireAuth(h.logout)).Methods("POST")
	r.HandleFunc("/api/auth/me", h.requireAuth(h.me)).Methods("GET")
	r.HandleFunc("/api/profile", h.requireAuth(h.getProfile)).Methods("GET")
	r.HandleFunc("/api/profile", h.requireAuth(h.updateProfile)).Methods("PUT")

	r.HandleFunc("/api/branches", h.listBranches).Methods("GET")
	r.HandleFunc("/api/branches", h.requireAdmin(h.createBranch)).Methods("POST")
	r.HandleFunc("/api/branches/{id}", h.requireAdmin(h.updateBranch)).Methods("PUT")
	r.HandleFunc("/api/branches/{id}", h.requireAdmin(h.deleteBranch)).Methods("DELETE")

	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.requireAdmin(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.requireAdmin(h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.requireAdmin(h.deleteMenuItem)).Methods("DELETE")

	r.HandleFunc("/api/offers", h.listOffers).Methods("GET")
	r.HandleFunc("/api/offers", h.requireAdmin(h.createOffer)).Methods("POST")
	r.HandleFunc("/api/offers/{id}", h.requireAdmin(h.updateOffer)).Methods("PUT")
	r.HandleFunc("/api/offers/{id}", h.requireAdmin(h.deleteOffer)).Methods("DELETE")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.requireAdmin(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/orders/track/{id}", h.trackOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.orderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.requireAdmin(h.updateOrderStatus)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/feedback", h.feedbackForOrder).Methods("GET")

	r.HandleFunc("/api/feedback", h.requireAuth(h.submitFeedback)).Methods("POST")
	r.HandleFunc("/api/feedback", h.requireAdmin(h.listFeedback)).Methods("GET")

	r.HandleFunc("/api/analytics", h.requireAdmin(h.getAnalytics)).Methods("GET")

	r.HandleFunc("/api/settings/{key}", h.requireAdmin(h.getSetting)).Methods("GET")
	r.HandleFunc("/api/settings/{key}", h.requireAdmin(h.setSetting)).Methods("PUT")

	r.HandleFunc("/api/notifications/order-status", h.sendStatusNotification).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "tastybites",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) listBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.Branches.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(branches)
}

func (h *Handler) createBranch(w http.ResponseWriter, r *http.Request) {
	var branch domain.Branch
	if err := json.NewDecoder(r.Body).Decode(&branch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Branches.Create(&branch); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(branch)
}

func (h *Handler) updateBranch(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var branch domain.Branch
	if err := json.NewDecoder(r.Body).Decode(&branch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	branch.ID = id

	if err := h.Branches.Update(&branch); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(branch)
}

func (h *Handler) deleteBranch(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	rows, err := h.Branches.Delete(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Branch not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	var branchID *int
	if raw := r.URL.Query().Get("branch"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid branch id", http.StatusBadRequest)
			return
		}
		branchID = &id
	}

	items, err := h.Menu.List(branchID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	item, err := h.Menu.Get(id)
	if err != nil {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menu.Create(&item); err != nil {
		status := http.StatusInternalServerError
		if err == service.ErrInvalidPrice {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = id

	if err := h.Menu.Update(&item); err != nil {
		status := http.StatusInternalServerError
		if err == service.ErrInvalidPrice {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	rows, err := h.Menu.Delete(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Offers.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offers)
}

func (h *Handler) createOffer(w http.ResponseWriter, r *http.Request) {
	var offer domain.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Offers.Create(&offer); err != nil {
		status := http.StatusInternalServerError
		if err == service.ErrEmptyTitle {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(offer)
}

func (h *Handler) updateOffer(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var offer domain.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	offer.ID = id

	if err := h.Offers.Update(&offer); err != nil {
		status := http.StatusInternalServerError
		if err == service.ErrEmptyTitle {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offer)
}

func (h *Handler) deleteOffer(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	rows, err := h.Offers.Delete(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Offer not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	value, err := h.Settings.Get(key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.Setting{Key: key, Value: value})
}

func (h *Handler) setSetting(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var payload struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Settings.Set(key, payload.Value); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.Setting{Key: key, Value: payload.Value})
}
