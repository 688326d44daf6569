package dto

// UnreadCountResponse reports the calling user's unread notifications
type UnreadCountResponse struct {
	Unread int64 `json:"unread" example:"4"`
}
