package models

// NotificationKind classifies the single user-visible message.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is the outcome of the most recent operation. Each operation
// overwrites it; there is no queue.
type Notification struct {
	Kind NotificationKind
	Text string
}

func SuccessNotification(text string) *Notification {
	return &Notification{Kind: NotificationSuccess, Text: text}
}

func ErrorNotification(text string) *Notification {
	return &Notification{Kind: NotificationError, Text: text}
}
