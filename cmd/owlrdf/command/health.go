package command

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

const defaultAddress = "http://localhost:64211"

func NewHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health [address]",
		Short: "Health check of a running HTTP server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := defaultAddress
			if len(args) == 1 {
				address = args[0]
			}
			resp, err := http.Get(address + "/health")
			if err != nil {
				return err
			}
			resp.Body.Close()
			if resp.StatusCode/100 != 2 {
				return fmt.Errorf("unhealthy: %s", resp.Status)
			}
			return nil
		},
	}
}
