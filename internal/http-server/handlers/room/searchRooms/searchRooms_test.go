package searchRooms

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomBooker/internal/booking"
	"roomBooker/internal/http-server/handlers/room/searchRooms/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchRoomsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.RoomSearcher)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Success",
			query: "?searchName=room",
			mockSetup: func(m *mocks.RoomSearcher) {
				m.On("SearchRooms", mock.Anything, "room").
					Return([]models.Room{{ID: 1, Name: "Room 1"}, {ID: 2, Name: "Boardroom"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","rooms":[{"id":1,"name":"Room 1"},{"id":2,"name":"Boardroom"}]}`,
		},
		{
			name:  "No matches",
			query: "?searchName=attic",
			mockSetup: func(m *mocks.RoomSearcher) {
				m.On("SearchRooms", mock.Anything, "attic").Return([]models.Room{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","rooms":[]}`,
		},
		{
			name:  "Empty search name",
			query: "?searchName=",
			mockSetup: func(m *mocks.RoomSearcher) {
				m.On("SearchRooms", mock.Anything, "").Return(nil, booking.ErrEmptySearch)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"search name cannot be empty"}`,
		},
		{
			name:  "Internal server error",
			query: "?searchName=room",
			mockSetup: func(m *mocks.RoomSearcher) {
				m.On("SearchRooms", mock.Anything, "room").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to search rooms"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSearcher := mocks.NewRoomSearcher(t)
			tc.mockSetup(mockSearcher)

			req, err := http.NewRequest(http.MethodGet, "/room/search"+tc.query, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, mockSearcher).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
