package services

import (
	"context"
	goerrors "errors"
	"sort"
	"strings"
	"sync"
	"time"

	"evbooking/dto"
	"evbooking/errors"
	"evbooking/models"
	"evbooking/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// HotelService đọc danh sách khách sạn và phòng, chỉ phục vụ tra cứu
type HotelService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type HotelServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewHotelService(opts HotelServiceOptions) *HotelService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &HotelService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// GetHotels trả về danh sách khách sạn, có phân trang; query != "" thì
// xếp theo độ phù hợp với từ khóa
func (s *HotelService) GetHotels(ctx context.Context, query string, page, limit int) ([]dto.HotelResponse, int, error) {
	hotels, err := s.loadHotels(ctx)
	if err != nil {
		return nil, 0, errors.NewDBError(err)
	}

	if query != "" {
		hotels = rankHotels(query, hotels)
	}

	total := len(hotels)

	// Phân trang
	if page > 0 && limit > 0 {
		start := (page - 1) * limit
		end := start + limit
		if start >= total {
			hotels = []models.Hotel{}
		} else {
			if end > total {
				end = total
			}
			hotels = hotels[start:end]
		}
	}

	result := make([]dto.HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		result = append(result, toHotelResponse(h, false))
	}
	return result, total, nil
}

// GetHotelByID trả về khách sạn kèm danh sách phòng
func (s *HotelService) GetHotelByID(ctx context.Context, hotelID uint) (*dto.HotelResponse, error) {
	var hotel models.Hotel
	err := s.db.WithContext(ctx).Preload("Rooms").First(&hotel, hotelID).Error
	if goerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewNotFound("Không tìm thấy khách sạn")
	}
	if err != nil {
		return nil, errors.NewDBError(err)
	}

	resp := toHotelResponse(hotel, true)
	return &resp, nil
}

// WarmCache nạp lại danh sách khách sạn vào Redis, được gọi từ cron job
func (s *HotelService) WarmCache(ctx context.Context) error {
	var hotels []models.Hotel
	if err := s.db.WithContext(ctx).Find(&hotels).Error; err != nil {
		return err
	}
	if s.rdb == nil {
		return nil
	}
	if err := SetToRedis(ctx, s.rdb, HotelsCacheKey, hotels, 24*time.Hour); err != nil {
		return err
	}
	s.logger.Info("Đã nạp %d khách sạn vào cache", len(hotels))
	return nil
}

func (s *HotelService) loadHotels(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel

	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, HotelsCacheKey, &hotels); err == nil && len(hotels) > 0 {
			return hotels, nil
		}
	}

	if err := s.db.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, HotelsCacheKey, hotels, 10*time.Minute); err != nil {
			s.logger.Error("Lỗi khi lưu danh sách khách sạn vào Redis: %v", err)
		}
	}
	return hotels, nil
}

func toHotelResponse(hotel models.Hotel, withRooms bool) dto.HotelResponse {
	resp := dto.HotelResponse{
		ID:        hotel.ID,
		Name:      hotel.Name,
		Image:     hotel.Image,
		Amenities: hotel.Amenities,
	}
	if withRooms {
		rooms := make([]dto.BookingRoomResponse, 0, len(hotel.Rooms))
		for _, r := range hotel.Rooms {
			rooms = append(rooms, dto.BookingRoomResponse{
				ID:       r.ID,
				HotelID:  r.HotelID,
				Name:     r.Name,
				Capacity: r.Capacity,
			})
		}
		resp.Rooms = rooms
	}
	return resp
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	similarity := 1.0 - float64(distance)/maxLen
	return similarity
}

// Tính điểm phù hợp của một khách sạn với từ khóa
func scoreHotel(query string, hotel models.Hotel, cmName *closestmatch.ClosestMatch) int {
	normalizedName := normalizeInput(hotel.Name)
	score := 0

	if strings.Contains(normalizedName, query) {
		score += 20
	}
	if cmName.Closest(query) == normalizedName {
		score += 13
	}

	similarity := calculateSimilarity(query, normalizedName)
	if similarity > 0.7 {
		score += 10
	}

	// Cộng điểm theo tiện ích khớp với từ khóa
	maxAmenityScore := 12
	amenityScore := 0
	for _, amenity := range hotel.Amenities {
		normalizedAmenity := normalizeInput(amenity)
		if calculateSimilarity(query, normalizedAmenity) > 0.7 || strings.Contains(query, normalizedAmenity) {
			amenityScore += 4
			if amenityScore >= maxAmenityScore {
				break
			}
		}
	}
	score += amenityScore

	return score
}

// rankHotels lọc và xếp hạng khách sạn theo điểm phù hợp
func rankHotels(query string, hotels []models.Hotel) []models.Hotel {
	normalizedQuery := normalizeInput(query)

	names := make([]string, 0, len(hotels))
	for _, h := range hotels {
		names = append(names, normalizeInput(h.Name))
	}
	cmName := createMatcher(names)

	type scoredHotel struct {
		hotel models.Hotel
		score int
	}

	scoreCh := make(chan scoredHotel, len(hotels))
	var wg sync.WaitGroup

	for _, hotel := range hotels {
		wg.Add(1)
		go func(hotel models.Hotel) {
			defer wg.Done()
			score := scoreHotel(normalizedQuery, hotel, cmName)
			scoreCh <- scoredHotel{hotel: hotel, score: score}
		}(hotel)
	}

	wg.Wait()
	close(scoreCh)

	var scored []scoredHotel
	for sh := range scoreCh {
		if sh.score > 0 {
			scored = append(scored, sh)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]models.Hotel, 0, len(scored))
	for _, sh := range scored {
		result = append(result, sh.hotel)
	}
	return result
}
