package models

type NotificationType string

const (
	NotificationEmail NotificationType = "EMAIL"
	NotificationSMS   NotificationType = "SMS"
	NotificationPush  NotificationType = "PUSH"
	NotificationInApp NotificationType = "IN_APP"
)

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "PENDING"
	NotificationSent    NotificationStatus = "SENT"
	NotificationFailed  NotificationStatus = "FAILED"
)

type Notification struct {
	ID        int64              `json:"id"`
	Type      NotificationType   `json:"type"`
	Recipient string             `json:"recipient"`
	Message   string             `json:"message"`
	EventData string             `json:"eventData,omitempty"`
	Status    NotificationStatus `json:"status"`
	CreatedAt string             `json:"createdAt"`
	SentAt    string             `json:"sentAt,omitempty"`
}

// NotificationPreferences holds per-client channel and category switches.
// QuietHoursStart and QuietHoursEnd are "HH:MM".
type NotificationPreferences struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
	InApp bool `json:"inApp"`

	Transactions bool `json:"transactions"`
	Security     bool `json:"security"`
	Marketing    bool `json:"marketing"`
	Updates      bool `json:"updates"`

	TransactionThreshold float64 `json:"transactionThreshold"`
	QuietHoursEnabled    bool    `json:"quietHoursEnabled"`
	QuietHoursStart      string  `json:"quietHoursStart"`
	QuietHoursEnd        string  `json:"quietHoursEnd"`
}
