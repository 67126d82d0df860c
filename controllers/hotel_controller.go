package controllers

import (
	"strconv"

	"evbooking/response"
	"evbooking/services"
	"evbooking/validator"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	service *services.HotelService
}

func NewHotelController(service *services.HotelService) *HotelController {
	return &HotelController{service: service}
}

// GetHotels danh sách khách sạn, hỗ trợ tìm theo tên và phân trang
func (ctrl *HotelController) GetHotels(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	name := c.Query("name")

	hotels, total, err := ctrl.service.GetHotels(c.Request.Context(), name, page, limit)
	if err != nil {
		handleBookingError(c, err)
		return
	}

	response.SuccessWithPagination(c, hotels, page, limit, total)
}

// GetHotelDetail chi tiết khách sạn kèm danh sách phòng
func (ctrl *HotelController) GetHotelDetail(c *gin.Context) {
	hotelID, err := validator.ParseIDParam(c.Param("hotelId"))
	if err != nil {
		response.BadRequest(c, "hotelId không hợp lệ")
		return
	}

	hotel, err := ctrl.service.GetHotelByID(c.Request.Context(), hotelID)
	if err != nil {
		handleBookingError(c, err)
		return
	}

	response.Success(c, hotel)
}
