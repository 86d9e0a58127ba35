package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sachinkumar2222/Productr/domain"
)

// AuthHandlers handles the OTP authentication HTTP requests.
type AuthHandlers struct {
	otpSvc domain.OTPService
}

// NewAuthHandlers creates new auth handlers.
func NewAuthHandlers(otpSvc domain.OTPService) *AuthHandlers {
	return &AuthHandlers{otpSvc: otpSvc}
}

// LoginRequest carries either an email or a phone number.
type LoginRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// VerifyOTPRequest carries the recipient plus the submitted code.
type VerifyOTPRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	OTP         string `json:"otp"`
}

func (r LoginRequest) recipient() string {
	if r.Email != "" {
		return r.Email
	}
	return r.PhoneNumber
}

func (r VerifyOTPRequest) recipient() string {
	if r.Email != "" {
		return r.Email
	}
	return r.PhoneNumber
}

// Login handles a code request.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.otpSvc.IssueCode(c.Request.Context(), req.recipient()); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide email or phone number"})
		case errors.Is(err, domain.ErrResendCooldown):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrDeliveryFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send OTP"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue OTP"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent successfully"})
}

// VerifyOTP handles code submission and returns a session token.
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.otpSvc.VerifyCode(c.Request.Context(), req.recipient(), req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		case errors.Is(err, domain.ErrIdentityNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrCodeInvalidOrExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"_id":         result.Identity.ID,
			"email":       result.Identity.Email,
			"phoneNumber": result.Identity.Phone,
			"role":        result.Identity.Role,
		},
		"token": result.Token,
	})
}
