package models

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`      // Дата в формате YYYY-MM-DD
	StartTime string `json:"startTime"` // Начало в формате HH:MM
	EndTime   string `json:"endTime"`   // Конец в формате HH:MM
}

// DaySlotsResponse слоты одного дня
type DaySlotsResponse struct {
	Date  string         `json:"date"` // Дата в формате YYYY-MM-DD
	Slots []SlotResponse `json:"slots"`
}

// SlotListResponse ответ со списком предстоящих слотов, сгруппированных по датам
type SlotListResponse struct {
	BookingLink string             `json:"bookingLink"`
	Days        []DaySlotsResponse `json:"days"`
	Total       int                `json:"total"`
}

// FromDomainSlot конвертирует domain слот в response модель
func FromDomainSlot(slot *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:        slot.ID,
		Date:      slot.Date.Format(domain.DateFormat),
		StartTime: slot.StartTime.String(),
		EndTime:   slot.EndTime.String(),
	}
}

// FromDomainSlots группирует слоты по датам, сохраняя порядок репозитория
// (даты по возрастанию, внутри дня - по времени начала)
func FromDomainSlots(bookingLink string, slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		BookingLink: bookingLink,
		Days:        []DaySlotsResponse{},
		Total:       len(slots),
	}

	var current *DaySlotsResponse
	for _, slot := range slots {
		date := slot.Date.Format(domain.DateFormat)
		if current == nil || current.Date != date {
			resp.Days = append(resp.Days, DaySlotsResponse{Date: date, Slots: []SlotResponse{}})
			current = &resp.Days[len(resp.Days)-1]
		}
		current.Slots = append(current.Slots, FromDomainSlot(slot))
	}

	return resp
}
