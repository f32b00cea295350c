package ledger

// Event identifies which collection changed.
type Event int

const (
	EventAccounts Event = iota
	EventTransactions
	EventNotifications
)

// String returns the collection name for logging.
func (e Event) String() string {
	switch e {
	case EventAccounts:
		return "accounts"
	case EventTransactions:
		return "transactions"
	case EventNotifications:
		return "notifications"
	default:
		return "unknown"
	}
}

// Subscribe registers fn to run after the matching collection changes.
// Mutations emit only after they have persisted, so a subscriber sees
// committed state. With no subscribers, changes are silent; that is the
// normal mode for one-shot commands.
func (s *Service) Subscribe(fn func(Event)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Service) emit(events ...Event) {
	for _, fn := range s.subscribers {
		for _, ev := range events {
			fn(ev)
		}
	}
}
