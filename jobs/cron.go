package jobs

import (
	"context"
	"log"
	"time"

	"evbooking/utils"

	"github.com/robfig/cron/v3"
)

// HotelCacheWarmer định nghĩa interface cho việc nạp lại cache khách sạn
type HotelCacheWarmer interface {
	WarmCache(ctx context.Context) error
}

var hotelCacheWarmer HotelCacheWarmer

// SetHotelCacheWarmer thiết lập implementation cho HotelCacheWarmer
func SetHotelCacheWarmer(warmer HotelCacheWarmer) {
	hotelCacheWarmer = warmer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày: nạp lại cache danh sách khách sạn
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		utils.LogInfo("Đang nạp lại cache khách sạn lúc: %v", now)
		if hotelCacheWarmer == nil {
			utils.LogError("Lỗi: HotelCacheWarmer chưa được thiết lập")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := hotelCacheWarmer.WarmCache(ctx); err != nil {
			utils.LogError("Lỗi khi nạp lại cache khách sạn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
