package services

// Analytics receives business events. utils.PosthogClientWrapper implements it.
type Analytics interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}
