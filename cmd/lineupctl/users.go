package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	usersCmd := &cobra.Command{Use: "users", Short: "User operations"}

	// create
	var uid, username, icon string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"info": map[string]string{"uid": uid, "username": username, "icon": icon},
			}
			resp, err := apiClient().R().SetBody(payload).Post("/api/users")
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
	createCmd.Flags().StringVarP(&uid, "uid", "u", "", "User ID (required)")
	createCmd.Flags().StringVarP(&username, "username", "n", "", "Username (required)")
	createCmd.Flags().StringVarP(&icon, "icon", "i", "", "Icon token (required)")
	_ = createCmd.MarkFlagRequired("uid")
	_ = createCmd.MarkFlagRequired("username")
	_ = createCmd.MarkFlagRequired("icon")
	usersCmd.AddCommand(createCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get UID",
		Short: "Get user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient().R().Get("/api/users/" + args[0])
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
	usersCmd.AddCommand(getCmd)

	// friends
	friendsCmd := &cobra.Command{
		Use:   "friends UID",
		Short: "List a user's friends, ranked by shared interest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient().R().Get("/api/users/" + args[0] + "/friends")
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
	usersCmd.AddCommand(friendsCmd)

	rootCmd.AddCommand(usersCmd)
}
