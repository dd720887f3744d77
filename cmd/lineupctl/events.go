package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	eventsCmd := &cobra.Command{Use: "events", Short: "Event operations"}

	// create
	var uid, username, name, description string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"event": map[string]string{
					"uid": uid, "username": username, "name": name, "description": description,
				},
			}
			resp, err := apiClient().R().SetBody(payload).Post("/api/events")
			if err != nil {
				return err
			}
			if err := checkStatus(resp); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	createCmd.Flags().StringVarP(&uid, "uid", "u", "", "Creator UID (required)")
	createCmd.Flags().StringVarP(&username, "username", "n", "", "Creator username (required)")
	createCmd.Flags().StringVar(&name, "name", "", "Event name (required)")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "Event description (required)")
	_ = createCmd.MarkFlagRequired("uid")
	_ = createCmd.MarkFlagRequired("username")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("description")
	eventsCmd.AddCommand(createCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get EVENT_ID",
		Short: "Get event by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient().R().Get("/api/events/" + args[0])
			if err != nil {
				return err
			}
			if err := checkStatus(resp); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	eventsCmd.AddCommand(getCmd)

	// join / leave
	var eventID string
	joinCmd := &cobra.Command{
		Use:   "join UID",
		Short: "Join the line for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient().R().
				SetQueryParam("event", eventID).
				Post("/api/users/" + args[0] + "/events/join")
			if err != nil {
				return err
			}
			if err := checkStatus(resp); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	joinCmd.Flags().StringVarP(&eventID, "event", "e", "", "Event ID (required)")
	_ = joinCmd.MarkFlagRequired("event")
	eventsCmd.AddCommand(joinCmd)

	leaveCmd := &cobra.Command{
		Use:   "leave UID",
		Short: "Leave the line for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient().R().
				SetQueryParam("event", eventID).
				Post("/api/users/" + args[0] + "/events/leave")
			if err != nil {
				return err
			}
			if err := checkStatus(resp); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	leaveCmd.Flags().StringVarP(&eventID, "event", "e", "", "Event ID (required)")
	_ = leaveCmd.MarkFlagRequired("event")
	eventsCmd.AddCommand(leaveCmd)

	rootCmd.AddCommand(eventsCmd)
}
