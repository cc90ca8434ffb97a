package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`      // Дата в формате YYYY-MM-DD
	TimeRange string `json:"timeRange"` // Диапазон в формате HH:MM-HH:MM
	CreatedAt string `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований владельца
type BookingListResponse struct {
	BookingLink string            `json:"bookingLink"`
	Bookings    []BookingResponse `json:"bookings"`
	Total       int               `json:"total"`
}

// FromDomainBooking конвертирует domain бронирование в response модель
func FromDomainBooking(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        booking.ID,
		Date:      booking.Date.Format(domain.DateFormat),
		TimeRange: booking.TimeRange().String(),
		CreatedAt: booking.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookings конвертирует слайс бронирований, сохраняя порядок
// репозитория (дата и время начала по возрастанию)
func FromDomainBookings(bookingLink string, bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		BookingLink: bookingLink,
		Bookings:    make([]BookingResponse, 0, len(bookings)),
		Total:       len(bookings),
	}

	for _, booking := range bookings {
		resp.Bookings = append(resp.Bookings, FromDomainBooking(booking))
	}

	return resp
}
