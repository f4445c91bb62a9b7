package addRoom

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomBooker/internal/booking"
	"roomBooker/internal/http-server/handlers/room/addRoom/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddRoomHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.RoomAdder)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"name":"Boardroom"}`,
			mockSetup: func(m *mocks.RoomAdder) {
				m.On("AddRoom", mock.Anything, models.Room{Name: "Boardroom"}).Return(4, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","id":4}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{"name":`,
			mockSetup:      func(m *mocks.RoomAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing name",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.RoomAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Name is a required field"}`,
		},
		{
			name:        "Duplicate name",
			requestBody: `{"name":"Room 1"}`,
			mockSetup: func(m *mocks.RoomAdder) {
				m.On("AddRoom", mock.Anything, models.Room{Name: "Room 1"}).Return(0, booking.ErrRoomExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"room already exists"}`,
		},
		{
			name:        "Blank name",
			requestBody: `{"name":"  "}`,
			mockSetup: func(m *mocks.RoomAdder) {
				m.On("AddRoom", mock.Anything, models.Room{Name: "  "}).Return(0, booking.ErrInvalidName)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"name cannot be empty"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"name":"Boardroom"}`,
			mockSetup: func(m *mocks.RoomAdder) {
				m.On("AddRoom", mock.Anything, models.Room{Name: "Boardroom"}).Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add room"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockAdder := mocks.NewRoomAdder(t)
			tc.mockSetup(mockAdder)

			req, err := http.NewRequest(http.MethodPost, "/room", bytes.NewReader([]byte(tc.requestBody)))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, mockAdder).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
