package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachinkumar2222/Productr/domain"
	"github.com/sachinkumar2222/Productr/internal/mocks"
)

func newAuthRouter(otpSvc domain.OTPService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandlers(otpSvc)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/verify-otp", h.VerifyOTP)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlers_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		otpSvc := mocks.NewMockOTPService()
		var gotRecipient string
		otpSvc.IssueCodeFunc = func(ctx context.Context, rawRecipient string) error {
			gotRecipient = rawRecipient
			return nil
		}

		w := postJSON(t, newAuthRouter(otpSvc), "/api/auth/login", `{"email":"a@x.com"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "a@x.com", gotRecipient)
	})

	t.Run("phone number is used when email is absent", func(t *testing.T) {
		otpSvc := mocks.NewMockOTPService()
		var gotRecipient string
		otpSvc.IssueCodeFunc = func(ctx context.Context, rawRecipient string) error {
			gotRecipient = rawRecipient
			return nil
		}

		w := postJSON(t, newAuthRouter(otpSvc), "/api/auth/login", `{"phoneNumber":"+1234567890"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "+1234567890", gotRecipient)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"missing recipient", domain.ErrValidation, http.StatusBadRequest},
			{"cooldown", fmt.Errorf("%w: wait 42 seconds", domain.ErrResendCooldown), http.StatusTooManyRequests},
			{"delivery failed", domain.ErrDeliveryFailed, http.StatusBadGateway},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				otpSvc := mocks.NewMockOTPService()
				otpSvc.IssueCodeFunc = func(ctx context.Context, rawRecipient string) error { return tt.err }

				w := postJSON(t, newAuthRouter(otpSvc), "/api/auth/login", `{"email":"a@x.com"}`)
				assert.Equal(t, tt.wantStatus, w.Code)
			})
		}
	})
}

func TestAuthHandlers_VerifyOTP(t *testing.T) {
	t.Run("success returns token and public identity fields", func(t *testing.T) {
		otpSvc := mocks.NewMockOTPService()
		otpSvc.VerifyCodeFunc = func(ctx context.Context, rawRecipient, code string) (*domain.AuthResult, error) {
			require.Equal(t, "a@x.com", rawRecipient)
			require.Equal(t, "123456", code)
			return &domain.AuthResult{
				Identity: &domain.Identity{ID: "id-1", Email: "a@x.com", Role: "user"},
				Token:    "signed-token",
			}, nil
		}

		w := postJSON(t, newAuthRouter(otpSvc), "/api/auth/verify-otp", `{"email":"a@x.com","otp":"123456"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success bool   `json:"success"`
			Token   string `json:"token"`
			User    struct {
				ID    string `json:"_id"`
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "signed-token", body.Token)
		assert.Equal(t, "id-1", body.User.ID)
		assert.Equal(t, "user", body.User.Role)
	})

	t.Run("phone identity carries its phone number", func(t *testing.T) {
		otpSvc := mocks.NewMockOTPService()
		otpSvc.VerifyCodeFunc = func(ctx context.Context, rawRecipient, code string) (*domain.AuthResult, error) {
			return &domain.AuthResult{
				Identity: &domain.Identity{ID: "id-2", Phone: "+1234567890", Role: "user"},
				Token:    "signed-token",
			}, nil
		}

		w := postJSON(t, newAuthRouter(otpSvc), "/api/auth/verify-otp", `{"phoneNumber":"+1234567890","otp":"123456"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			User struct {
				ID    string `json:"_id"`
				Phone string `json:"phoneNumber"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "id-2", body.User.ID)
		assert.Equal(t, "+1234567890", body.User.Phone)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"unknown user", domain.ErrIdentityNotFound, http.StatusBadRequest},
			{"invalid or expired", domain.ErrCodeInvalidOrExpired, http.StatusBadRequest},
			{"missing fields", domain.ErrValidation, http.StatusBadRequest},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				otpSvc := mocks.NewMockOTPService()
				otpSvc.VerifyCodeFunc = func(ctx context.Context, rawRecipient, code string) (*domain.AuthResult, error) {
					return nil, tt.err
				}

				w := postJSON(t, newAuthRouter(otpSvc), "/api/auth/verify-otp", `{"email":"a@x.com","otp":"000000"}`)
				assert.Equal(t, tt.wantStatus, w.Code)
			})
		}
	})
}
