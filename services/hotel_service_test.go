package services

import (
	"testing"

	"evbooking/models"

	"github.com/lib/pq"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Khách Sạn Hoà Bình ", "khach san hoa binh"},
		{"GRAND Hotel", "grand hotel"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeInput(tt.in); got != tt.want {
			t.Errorf("normalizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("hotel", "hotel"); got != 1.0 {
		t.Errorf("expected similarity 1.0 for identical strings, got %f", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("expected similarity 1.0 for empty strings, got %f", got)
	}
	if got := calculateSimilarity("hotel", "hotal"); got <= 0.7 {
		t.Errorf("expected similarity > 0.7 for near match, got %f", got)
	}
	if got := calculateSimilarity("hotel", "xyz"); got > 0.5 {
		t.Errorf("expected low similarity for unrelated strings, got %f", got)
	}
}

func TestRankHotelsAccentInsensitive(t *testing.T) {
	hotels := []models.Hotel{
		{ID: 1, Name: "Grand Palace"},
		{ID: 2, Name: "Khách Sạn Hoà Bình"},
		{ID: 3, Name: "Sea View Resort"},
	}

	// Từ khóa không dấu vẫn phải tìm ra khách sạn có dấu
	ranked := rankHotels("khach san hoa binh", hotels)
	if len(ranked) == 0 {
		t.Fatal("expected at least one match")
	}
	if ranked[0].ID != 2 {
		t.Errorf("expected hotel 2 ranked first, got %d", ranked[0].ID)
	}
}

func TestRankHotelsNoMatch(t *testing.T) {
	hotels := []models.Hotel{
		{ID: 1, Name: "Grand Palace"},
	}

	// Không khớp gì thì loại khỏi kết quả, không trả về với điểm 0
	ranked := rankHotels("zzzzzzzz", hotels)
	if len(ranked) != 0 {
		t.Errorf("expected no matches, got %d", len(ranked))
	}
}

func TestRankHotelsByAmenity(t *testing.T) {
	hotels := []models.Hotel{
		{ID: 1, Name: "Grand Palace", Amenities: pq.StringArray{"parking"}},
		{ID: 2, Name: "Sea View Resort", Amenities: pq.StringArray{"pool", "spa"}},
	}

	ranked := rankHotels("pool", hotels)
	if len(ranked) == 0 {
		t.Fatal("expected at least one match")
	}
	if ranked[0].ID != 2 {
		t.Errorf("expected hotel 2 ranked first by amenity, got %d", ranked[0].ID)
	}
}
