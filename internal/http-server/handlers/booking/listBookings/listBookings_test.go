package listBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roomBooker/internal/booking"
	"roomBooker/internal/http-server/handlers/booking/listBookings/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleBookings() []models.Booking {
	start := time.Date(2021, time.January, 1, 10, 0, 0, 0, time.UTC)
	return []models.Booking{
		{ID: 1, PersonID: 1, RoomID: 1, StartTime: start, EndTime: start.Add(time.Hour)},
		{ID: 2, PersonID: 1, RoomID: 2, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour)},
	}
}

func TestNewForPerson(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		personID       string
		mockSetup      func(m *mocks.PersonBookingsLister)
		expectedStatus int
		expectedBody   string
		expectedCount  int
	}{
		{
			name:     "Success",
			personID: "1",
			mockSetup: func(m *mocks.PersonBookingsLister) {
				m.On("PersonBookings", mock.Anything, 1).Return(sampleBookings(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:     "No bookings",
			personID: "3",
			mockSetup: func(m *mocks.PersonBookingsLister) {
				m.On("PersonBookings", mock.Anything, 3).Return([]models.Booking{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","bookings":[]}`,
		},
		{
			name:           "Invalid person ID format",
			personID:       "abc",
			mockSetup:      func(m *mocks.PersonBookingsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid person id format"}`,
		},
		{
			name:     "Person not found",
			personID: "99",
			mockSetup: func(m *mocks.PersonBookingsLister) {
				m.On("PersonBookings", mock.Anything, 99).Return(nil, booking.ErrPersonNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"person not found"}`,
		},
		{
			name:     "Internal server error",
			personID: "2",
			mockSetup: func(m *mocks.PersonBookingsLister) {
				m.On("PersonBookings", mock.Anything, 2).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewPersonBookingsLister(t)
			tc.mockSetup(mockLister)

			router := chi.NewRouter()
			router.Get("/person/{id}/bookings", NewForPerson(logger, mockLister))

			req, err := http.NewRequest(http.MethodGet, "/person/"+tc.personID+"/bookings", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
				return
			}

			var resp Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "OK", resp.Status)
			assert.Len(t, resp.Bookings, tc.expectedCount)
		})
	}
}

func TestNewForRoom(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		roomID         string
		mockSetup      func(m *mocks.RoomBookingsLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			roomID: "1",
			mockSetup: func(m *mocks.RoomBookingsLister) {
				m.On("RoomBookings", mock.Anything, 1).Return(sampleBookings()[:1], nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","bookings":[{"id":1,"person_id":1,"room_id":1,` +
				`"start_time":"2021-01-01T10:00:00Z","end_time":"2021-01-01T11:00:00Z"}]}`,
		},
		{
			name:           "Invalid room ID format",
			roomID:         "abc",
			mockSetup:      func(m *mocks.RoomBookingsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid room id format"}`,
		},
		{
			name:   "Room not found",
			roomID: "99",
			mockSetup: func(m *mocks.RoomBookingsLister) {
				m.On("RoomBookings", mock.Anything, 99).Return(nil, booking.ErrRoomNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"room not found"}`,
		},
		{
			name:   "Internal server error",
			roomID: "2",
			mockSetup: func(m *mocks.RoomBookingsLister) {
				m.On("RoomBookings", mock.Anything, 2).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewRoomBookingsLister(t)
			tc.mockSetup(mockLister)

			router := chi.NewRouter()
			router.Get("/room/{id}/bookings", NewForRoom(logger, mockLister))

			req, err := http.NewRequest(http.MethodGet, "/room/"+tc.roomID+"/bookings", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
