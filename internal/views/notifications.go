package views

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/passbook-dev/passbook/internal/model"
)

// NotificationsView renders notifications, newest first, with unread
// entries highlighted.
type NotificationsView struct{}

// NewNotificationsView returns a notifications view.
func NewNotificationsView() *NotificationsView {
	return &NotificationsView{}
}

// Render prints the notifications and the unread count.
func (v *NotificationsView) Render(notes []model.Notification, unread int) error {
	data := pterm.TableData{{"ID", "", "Title", "Detail", "When"}}
	for _, n := range notes {
		marker := " "
		title := n.Title
		if !n.Read {
			marker = pterm.Cyan("●")
			title = pterm.Bold.Sprint(n.Title)
		}
		data = append(data, []string{strconv.Itoa(n.ID), marker, title, n.Subtitle, n.Time})
	}

	pterm.DefaultSection.Println("Notifications")
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	if unread > 0 {
		pterm.Info.Printf("%d unread\n", unread)
	} else {
		pterm.Info.Println("All caught up")
	}
	return nil
}
