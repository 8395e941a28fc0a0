package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/user-auth-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"username":"bob123","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob123", "secret1").
					Return(int64(1), nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{
				"message":  "User registered successfully",
				"userId":   float64(1),
				"username": "bob123",
			},
		},
		{
			name: "validation failure",
			body: `{"username":"ab","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "ab", "secret1").
					Return(int64(0), fmt.Errorf("%w: username must be between 3 and 50 characters", services.ErrValidation))
			},
			expectedCode: 400,
			expectedBody: map[string]any{
				"error": "validation failed: username must be between 3 and 50 characters",
			},
		},
		{
			name: "username already exists",
			body: `{"username":"alice","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret1").
					Return(int64(0), services.ErrUsernameTaken)
			},
			expectedCode: 409,
			expectedBody: map[string]any{"error": "Username already exists"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob123","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob123", "secret1").
					Return(int64(0), errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestRegisterHandler_DebugExposesInternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	origDebug := Debug
	Debug = true
	defer func() { Debug = origDebug }()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "bob123", "secret1").
		Return(int64(0), errors.New("database failure"))

	handler := NewRegisterHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(`{"username":"bob123","password":"secret1"}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 500, rr.Code)
	assert.Contains(t, rr.Body.String(), "database failure")
}
