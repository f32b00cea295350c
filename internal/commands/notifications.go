package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/views"
)

func newNotificationsCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotificationsList(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.AddCommand(newNotificationsReadCommand(), newNotificationsReadAllCommand())

	return cmd
}

func runNotificationsList(dir string) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}
	e.svc.RefreshTimestamps()
	return views.NewNotificationsView().Render(e.svc.Notifications(), e.svc.UnreadNotificationCount())
}

func newNotificationsReadCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "read <id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid notification id %q: %w", args[0], err)
			}

			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			if err := e.svc.MarkNotificationRead(id); err != nil {
				return err
			}
			e.recordMutation("notifications.read", fmt.Sprintf("id %d", id))
			return views.NewNotificationsView().Render(e.svc.Notifications(), e.svc.UnreadNotificationCount())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func newNotificationsReadAllCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			if err := e.svc.MarkAllNotificationsRead(); err != nil {
				return err
			}
			e.recordMutation("notifications.read-all", "")
			return views.NewNotificationsView().Render(e.svc.Notifications(), e.svc.UnreadNotificationCount())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}
