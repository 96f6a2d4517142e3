package models

import "time"

// HomepageSetting is one entry of the append-only settings history. The
// current settings are the newest row; ID breaks created_at ties so
// "current" stays deterministic.
type HomepageSetting struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	MarqueeText string    `json:"marquee_text"`
	ShowMarquee bool      `json:"show_marquee"`
	PopupText   string    `json:"popup_text"`
	ShowPopup   bool      `json:"show_popup"`
	CreatedAt   time.Time `json:"created_at"`
}
