package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
	"github.com/Deshmaneparas/food-delivery-sys/internal/service"
)

type Handler struct {
	Orders        service.OrderServiceInterface
	Subscriptions service.SubscriptionServiceInterface
	Catalog       service.CatalogServiceInterface
}

func NewHandler(orders service.OrderServiceInterface, subscriptions service.SubscriptionServiceInterface, catalog service.CatalogServiceInterface) *Handler {
	return &Handler{Orders: orders, Subscriptions: subscriptions, Catalog: catalog}
}

func (h *Handler) RegisterRoutes(r *mux.Router, verifier SessionVerifier) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/menu/{restaurantId}", h.restaurantMenu).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}/qrcode", h.orderQRCode).Methods("GET")

	authed := r.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(verifier))

	authed.HandleFunc("/api/orders/place", h.placeOrder).Methods("POST")
	authed.HandleFunc("/api/orders/update-status/{id}", h.updateOrderStatus).Methods("PUT")
	authed.HandleFunc("/api/orders/my-orders", h.myOrders).Methods("GET")
	authed.HandleFunc("/api/orders/restaurant-orders", h.restaurantOrders).Methods("GET")

	authed.HandleFunc("/api/subscriptions/subscribe", h.subscribe).Methods("POST")
	authed.HandleFunc("/api/subscriptions/my-subscriptions", h.mySubscriptions).Methods("GET")

	authed.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	authed.HandleFunc("/api/restaurants/my-restaurants", h.myRestaurants).Methods("GET")
	authed.HandleFunc("/api/menu", h.addMenuItem).Methods("POST")

	authed.HandleFunc("/api/superadmin/orders", h.allOrders).Methods("GET")
	authed.HandleFunc("/api/superadmin/orders/{userId:[0-9]+}", h.userOrders).Methods("GET")
	authed.HandleFunc("/api/superadmin/orders/{id:[0-9]+}", h.deleteOrder).Methods("DELETE")
	authed.HandleFunc("/api/superadmin/subscriptions/{userId:[0-9]+}", h.userSubscriptions).Methods("GET")
	authed.HandleFunc("/api/superadmin/subscriptions/{id:[0-9]+}", h.deleteSubscription).Methods("DELETE")
}

// --- request / response DTOs ---

type placeOrderRequest struct {
	RestaurantID int                     `json:"restaurant"`
	Items        []service.RequestedLine `json:"items"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type subscribeRequest struct {
	MenuItemID       int    `json:"menuItem"`
	SubscriptionType string `json:"subscriptionType"`
	StartDate        string `json:"startDate"`
	// Clients may send an endDate; the server always recomputes it.
	EndDate string `json:"endDate,omitempty"`
}

// orderView augments the stored order with its computed total. The total is
// derived from the frozen snapshot lines, never from the live catalog.
type orderView struct {
	domain.Order
	Total float64 `json:"total"`
}

func viewOrder(order domain.Order) orderView {
	return orderView{Order: order, Total: service.OrderTotal(&order)}
}

func viewOrders(orders []domain.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, viewOrder(order))
	}
	return views
}

// --- order handlers ---

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireRole(w, r, domain.RoleCustomer)
	if !ok {
		return
	}

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	order, err := h.Orders.Place(r.Context(), identity.ID, req.RestaurantID, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Order placed successfully",
		"order":   viewOrder(*order),
	})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireRole(w, r, domain.RoleRestaurantAdmin, domain.RoleSuperAdmin)
	if !ok {
		return
	}

	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	order, err := h.Orders.AdvanceStatus(r.Context(), orderID, req.Status, identity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"order": viewOrder(*order)})
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireRole(w, r, domain.RoleCustomer)
	if !ok {
		return
	}

	orders, err := h.Orders.ListForCustomer(r.Context(), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOrders(orders))
}

func (h *Handler) restaurantOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireRole(w, r, domain.RoleRestaurantAdmin)
	if !ok {
		return
	}

	orders, err := h.Orders.ListForRestaurantAdmin(r.Context(), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOrders(orders))
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	qrCode, err := h.Orders.QRCode(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(qrCode) == 0 {
		writeMessage(w, http.StatusNotFound, "no QR code for this order")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

// --- subscription handlers ---

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireRole(w, r, domain.RoleCustomer)
	if !ok {
		return
	}

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid startDate")
		return
	}

	sub, err := h.Subscriptions.Subscribe(r.Context(), identity.ID, req.MenuItemID, req.SubscriptionType, startDate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "Subscription added successfully",
		"subscription": sub,
	})
}

func (h *Handler) mySubscriptions(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireRole(w, r, domain.RoleCustomer)
	if !ok {
		return
	}

	subs, err := h.Subscriptions.ListForCustomer(r.Context(), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// --- catalog handlers ---

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireRole(w, r, domain.RoleRestaurantAdmin)
	if !ok {
		return
	}

	var restaurant domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.Catalog.CreateRestaurant(r.Context(), identity.ID, &restaurant); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, restaurant)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) myRestaurants(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireRole(w, r, domain.RoleRestaurantAdmin)
	if !ok {
		return
	}

	restaurants, err := h.Catalog.ListMyRestaurants(r.Context(), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireRole(w, r, domain.RoleRestaurantAdmin)
	if !ok {
		return
	}

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.Catalog.AddMenuItem(r.Context(), identity.ID, &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Menu Item Added Successfully",
		"menuItem": item,
	})
}

func (h *Handler) restaurantMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	items, err := h.Catalog.RestaurantMenu(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// --- super admin handlers ---

func (h *Handler) allOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRole(w, r, domain.RoleSuperAdmin); !ok {
		return
	}

	orders, err := h.Orders.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOrders(orders))
}

func (h *Handler) userOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRole(w, r, domain.RoleSuperAdmin); !ok {
		return
	}

	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])
	orders, err := h.Orders.ListForCustomer(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOrders(orders))
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRole(w, r, domain.RoleSuperAdmin); !ok {
		return
	}

	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Orders.Delete(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

func (h *Handler) userSubscriptions(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRole(w, r, domain.RoleSuperAdmin); !ok {
		return
	}

	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])
	subs, err := h.Subscriptions.ListForCustomer(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

func (h *Handler) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRole(w, r, domain.RoleSuperAdmin); !ok {
		return
	}

	subscriptionID, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Subscriptions.Delete(r.Context(), subscriptionID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Subscription deleted successfully"})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "food-delivery-sys",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// --- helpers ---

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		writeMessage(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, err.Error())
	}
}
