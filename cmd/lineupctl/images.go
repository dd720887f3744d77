package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	imagesCmd := &cobra.Command{Use: "images", Short: "Image catalog operations"}

	seedCmd := &cobra.Command{
		Use:   "seed URL...",
		Short: "Ingest one or more images into the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, url := range args {
				resp, err := apiClient().R().
					SetBody(map[string]string{"url": url}).
					Post("/api/images")
				if err != nil {
					return err
				}
				if err := checkStatus(resp); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(os.Stdout, resp.String())
			}
			return nil
		},
	}
	imagesCmd.AddCommand(seedCmd)

	rootCmd.AddCommand(imagesCmd)
}
