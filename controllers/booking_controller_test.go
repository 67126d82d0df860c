package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evbooking/errors"
	"evbooking/models"

	"github.com/gin-gonic/gin"
)

// stubBookingService trả về kết quả cấu hình sẵn cho controller test
type stubBookingService struct {
	booking *models.Booking
	err     error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, userID, roomID uint) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) GetBookingByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) UpdateBooking(ctx context.Context, bookingID, roomID, userID uint) (*models.Booking, error) {
	return s.booking, s.err
}

func newTestRouter(svc *stubBookingService, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	if authed {
		router.Use(func(c *gin.Context) {
			c.Set("userID", uint(1))
			c.Next()
		})
	}

	ctrl := NewBookingController(svc)
	router.POST("/booking", ctrl.CreateBooking)
	router.GET("/booking", ctrl.GetBooking)
	router.PUT("/booking/:bookingId", ctrl.UpdateBooking)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBookingUnauthenticated(t *testing.T) {
	router := newTestRouter(&stubBookingService{}, false)

	w := doRequest(router, http.MethodPost, "/booking", `{"roomId": 10}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestCreateBookingMissingRoomID(t *testing.T) {
	router := newTestRouter(&stubBookingService{}, true)

	w := doRequest(router, http.MethodPost, "/booking", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreateBookingForbidden(t *testing.T) {
	svc := &stubBookingService{err: errors.NewCannotBook("Phòng đã hết chỗ")}
	router := newTestRouter(svc, true)

	w := doRequest(router, http.MethodPost, "/booking", `{"roomId": 10}`)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestCreateBookingRoomNotFound(t *testing.T) {
	svc := &stubBookingService{err: errors.NewNotFound("Không tìm thấy phòng")}
	router := newTestRouter(svc, true)

	w := doRequest(router, http.MethodPost, "/booking", `{"roomId": 999999}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	svc := &stubBookingService{booking: &models.Booking{ID: 1, UserID: 1, RoomID: 10}}
	router := newTestRouter(svc, true)

	w := doRequest(router, http.MethodPost, "/booking", `{"roomId": 10}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			RoomID uint `json:"roomId"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.RoomID != 10 {
		t.Errorf("expected roomId 10 in response, got %d", resp.Data.RoomID)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	svc := &stubBookingService{err: errors.NewNotFound("User chưa có booking")}
	router := newTestRouter(svc, true)

	w := doRequest(router, http.MethodGet, "/booking", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGetBookingSuccess(t *testing.T) {
	svc := &stubBookingService{booking: &models.Booking{
		ID:     7,
		UserID: 1,
		RoomID: 10,
		Room:   models.Room{ID: 10, HotelID: 2, Name: "101", Capacity: 3},
	}}
	router := newTestRouter(svc, true)

	w := doRequest(router, http.MethodGet, "/booking", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			ID   uint `json:"id"`
			Room struct {
				ID uint `json:"id"`
			} `json:"Room"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.ID != 7 {
		t.Errorf("expected booking id 7, got %d", resp.Data.ID)
	}
	if resp.Data.Room.ID != 10 {
		t.Errorf("expected room id 10, got %d", resp.Data.Room.ID)
	}
}

func TestUpdateBookingInvalidParam(t *testing.T) {
	router := newTestRouter(&stubBookingService{}, true)

	w := doRequest(router, http.MethodPut, "/booking/abc", `{"roomId": 10}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUpdateBookingMissingRoomID(t *testing.T) {
	router := newTestRouter(&stubBookingService{}, true)

	w := doRequest(router, http.MethodPut, "/booking/1", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUpdateBookingSuccess(t *testing.T) {
	svc := &stubBookingService{booking: &models.Booking{ID: 1, UserID: 1, RoomID: 20}}
	router := newTestRouter(svc, true)

	w := doRequest(router, http.MethodPut, "/booking/1", `{"roomId": 20}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			RoomID uint `json:"roomId"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.RoomID != 20 {
		t.Errorf("expected roomId 20, got %d", resp.Data.RoomID)
	}
}
