package shopapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"buyfish/models"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 2*time.Second), server
}

func orderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		UserID: "u1",
		CartItems: []models.CartItem{
			{ProductID: "p1", Title: "Salmon", Price: 12.5, Quantity: 2},
		},
		OrderStatus:     "pending",
		PaymentMethod:   "online",
		TotalAmount:     25,
		OrderDate:       "2025-01-02T03:04:05Z",
		OrderUpdateDate: "2025-01-02T03:04:05Z",
		CartID:          "u1",
	}
}

func TestBackendFailureReturnsAPIError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Product is out of stock",
		})
	}))
	defer server.Close()

	_, err := client.GetProducts(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "Product is out of stock" {
		t.Fatalf("message %q", apiErr.Message)
	}
}

func TestUndecodableBodyIsTransportError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	_, err := client.GetProducts(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("undecodable body must not become an APIError: %v", err)
	}
}

func TestCreateOrderRequiresApprovalURL(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer server.Close()

	_, err := client.CreateOrder(context.Background(), orderRequest())
	if err == nil {
		t.Fatal("expected error for missing approval URL")
	}
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	called := false
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	req := orderRequest()
	req.CartItems = nil
	if _, err := client.CreateOrder(context.Background(), req); err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Fatal("invalid request must not reach the backend")
	}
}

func TestCreateOrderSendsBearerlessJSON(t *testing.T) {
	var gotContentType string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":     true,
			"approvalURL": "https://pay.example/approve/1",
		})
	}))
	defer server.Close()

	approvalURL, err := client.CreateOrder(context.Background(), orderRequest())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if approvalURL != "https://pay.example/approve/1" {
		t.Fatalf("approvalURL %q", approvalURL)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type %q", gotContentType)
	}
}

func TestCheckAuthSendsBearerToken(t *testing.T) {
	var gotAuth string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"user":    map[string]string{"id": "u1", "userName": "ida", "email": "ida@example.com"},
		})
	}))
	defer server.Close()

	user, err := client.CheckAuth(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("CheckAuth: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("authorization header %q", gotAuth)
	}
	if user.ID != "u1" || user.UserName != "ida" {
		t.Fatalf("user %+v", user)
	}
}

func TestLoginFallsBackToTopLevelCredentials(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"token":   "tok-9",
			"user":    map[string]string{"id": "u9", "userName": "nils", "email": "nils@example.com"},
		})
	}))
	defer server.Close()

	creds, err := client.Login(context.Background(), models.LoginRequest{Email: "nils@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if creds.Token != "tok-9" || creds.User.ID != "u9" {
		t.Fatalf("credentials %+v", creds)
	}
}

func TestLoginWithoutTokenFails(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer server.Close()

	if _, err := client.Login(context.Background(), models.LoginRequest{Email: "x@example.com", Password: "pw"}); err == nil {
		t.Fatal("expected error for auth response without credentials")
	}
}

func TestCapturePaymentDecodesRefreshedCredentials(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"token":   "tok-fresh",
			"user":    map[string]string{"id": "u1", "userName": "ida", "email": "ida@example.com"},
		})
	}))
	defer server.Close()

	result, err := client.CapturePayment(context.Background(), "tok-old", "pay-1", "payer-1", "ord-1")
	if err != nil {
		t.Fatalf("CapturePayment: %v", err)
	}
	if result.Token != "tok-fresh" {
		t.Fatalf("token %q", result.Token)
	}
	if result.User == nil || result.User.ID != "u1" {
		t.Fatalf("user %+v", result.User)
	}
}
