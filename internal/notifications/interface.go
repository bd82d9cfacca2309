package notifications

// Notifier delivers out-of-band alerts about generated signals.
type Notifier interface {
	SendAlert(level, message string) error
}

// NopNotifier discards alerts; used when no notification channel is
// configured.
type NopNotifier struct{}

func (NopNotifier) SendAlert(level, message string) error { return nil }
