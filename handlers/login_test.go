// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ballotbox/auth"
	"ballotbox/models"
	"ballotbox/testutil"
)

func TestLogin(t *testing.T) {
	board, cfg := newTestBoard(t)
	handler := NewAuthHandler(board, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		wantToken      bool
	}{
		{
			name:           "valid credentials",
			requestBody:    models.LoginRequest{SSN: "VOT01", Password: testutil.TestPassword},
			expectedStatus: http.StatusOK,
			wantToken:      true,
		},
		{
			name:           "wrong password",
			requestBody:    models.LoginRequest{SSN: "VOT01", Password: "wrong"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown person",
			requestBody:    models.LoginRequest{SSN: "NOBODY", Password: testutil.TestPassword},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "disabled person",
			requestBody:    models.LoginRequest{SSN: "OFF01", Password: testutil.TestPassword},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing password",
			requestBody:    models.LoginRequest{SSN: "VOT01"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing ssn",
			requestBody:    models.LoginRequest{Password: testutil.TestPassword},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/login", tt.requestBody, nil)
			w := httptest.NewRecorder()
			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.wantToken {
				var resp models.LoginResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Token == "" {
					t.Error("Expected a non-empty token")
				}
				lr := tt.requestBody.(models.LoginRequest)
				if err := auth.ValidateToken(lr.SSN, resp.Token, cfg.TokenSalt); err != nil {
					t.Errorf("Expected token to validate: %v", err)
				}
			}
		})
	}
}

func TestLoginInvalidJSON(t *testing.T) {
	board, cfg := newTestBoard(t)
	handler := NewAuthHandler(board, cfg)

	req := httptest.NewRequest("POST", "/login", nil)
	w := httptest.NewRecorder()
	handler.Login(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
