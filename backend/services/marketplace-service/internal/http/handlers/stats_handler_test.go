package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chargeshare/backend/services/marketplace-service/internal/http/middleware"
	"chargeshare/backend/services/marketplace-service/internal/models"
	"chargeshare/backend/services/marketplace-service/internal/token"
)

func TestEarningsRequiresOwnerRole(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	handler := NewStatsHandler(nil)
	protected := middleware.Session(tokens)(http.HandlerFunc(handler.Earnings))

	signed, err := tokens.Generate(7, models.RoleUser)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/owners/me/earnings", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d for a driver token", rec.Code, http.StatusForbidden)
	}
}

func TestEarningsRequiresSession(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	handler := NewStatsHandler(nil)
	protected := middleware.Session(tokens)(http.HandlerFunc(handler.Earnings))

	req := httptest.NewRequest(http.MethodGet, "/owners/me/earnings", nil)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d without a token", rec.Code, http.StatusUnauthorized)
	}
}
