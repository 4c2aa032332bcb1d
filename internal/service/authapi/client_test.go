package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func newClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second), srv
}

func TestLoginNestedUserShape(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["email"] != "user@example.com" || body["password"] != "correct" {
			t.Fatalf("unexpected request body: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"id":1,"email":"user@example.com","name":"사용자"},"token":"abc123"}`))
	})
	client, _ := newClient(t, r)

	creds, err := client.Login(context.Background(), "user@example.com", "correct")
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if creds.Token != "abc123" {
		t.Fatalf("unexpected token: %q", creds.Token)
	}
	if creds.User.ID != "1" || creds.User.Email != "user@example.com" || creds.User.Name != "사용자" {
		t.Fatalf("unexpected user: %+v", creds.User)
	}
}

func TestLoginFlatShapeWithAccessToken(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"id":"u-42","email":"a@b.com","name":"홍길동","accessToken":"tok-42"}`))
	})
	client, _ := newClient(t, r)

	creds, err := client.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if creds.Token != "tok-42" || creds.User.ID != "u-42" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestLoginRejectionCarriesMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"잘못된 비밀번호입니다."}`))
	})
	client, _ := newClient(t, r)

	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "잘못된 비밀번호입니다." {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestLoginTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(url, time.Second)
	_, err := client.Login(context.Background(), "a@b.com", "pw")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if _, ok := err.(*APIError); ok {
		t.Fatal("transport failure must not be an APIError")
	}
}

func TestVerifyOTP(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/email/otp/verify", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"data":{"verificationToken":"vtok"}}`))
	})
	client, _ := newClient(t, r)

	token, err := client.VerifyOTP(context.Background(), "a@b.com", "123456")
	if err != nil {
		t.Fatalf("VerifyOTP err: %v", err)
	}
	if token != "vtok" {
		t.Fatalf("unexpected verification token: %q", token)
	}
}

func TestVerifyOTPMissingToken(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/email/otp/verify", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	})
	client, _ := newClient(t, r)

	if _, err := client.VerifyOTP(context.Background(), "a@b.com", "123456"); err == nil {
		t.Fatal("expected error for missing verification token")
	}
}

func TestRequestOTPAcceptsEmptyAck(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/email/otp/request", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	client, _ := newClient(t, r)

	if err := client.RequestOTP(context.Background(), "a@b.com"); err != nil {
		t.Fatalf("RequestOTP err: %v", err)
	}
}

func TestSignupSendsVerificationToken(t *testing.T) {
	var got map[string]string
	r := chi.NewRouter()
	r.Post("/api/auth/signup", func(w http.ResponseWriter, req *http.Request) {
		if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":7,"token":"xyz"}`))
	})
	client, _ := newClient(t, r)

	creds, err := client.Signup(context.Background(), SignupRequest{
		Email:             "a@b.com",
		Password:          "pw",
		Name:              "홍길동",
		VerificationToken: "vtok",
	})
	if err != nil {
		t.Fatalf("Signup err: %v", err)
	}
	if got["emailVerificationToken"] != "vtok" {
		t.Fatalf("verification token not sent: %v", got)
	}
	if creds.User.ID != "7" || creds.Token != "xyz" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}
