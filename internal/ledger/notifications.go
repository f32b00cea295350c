package ledger

import (
	"github.com/passbook-dev/passbook/internal/model"
	"github.com/passbook-dev/passbook/internal/reltime"
)

func nextNotificationID(notes []model.Notification) int {
	next := 1
	for _, n := range notes {
		if n.ID >= next {
			next = n.ID + 1
		}
	}
	return next
}

// AddNotification assigns an id and timestamp to candidate, inserts it
// at the front, and persists. Read stays as supplied; the zero value is
// unread. Returns the stored notification.
func (s *Service) AddNotification(candidate model.Notification) (model.Notification, error) {
	now := s.now()
	candidate.ID = nextNotificationID(s.notifications)
	candidate.Timestamp = now.UnixMilli()
	candidate.Time = reltime.String(now, now)
	s.notifications = append([]model.Notification{candidate}, s.notifications...)

	if err := s.Persist(); err != nil {
		return model.Notification{}, err
	}
	s.emit(EventNotifications)
	return candidate, nil
}

// UnreadNotificationCount returns how many notifications are unread.
func (s *Service) UnreadNotificationCount() int {
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkNotificationRead marks the first notification with the given id
// as read. It persists even when no notification matches.
func (s *Service) MarkNotificationRead(id int) error {
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			break
		}
	}
	if err := s.Persist(); err != nil {
		return err
	}
	s.emit(EventNotifications)
	return nil
}

// MarkAllNotificationsRead marks every notification as read.
func (s *Service) MarkAllNotificationsRead() error {
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	if err := s.Persist(); err != nil {
		return err
	}
	s.emit(EventNotifications)
	return nil
}
