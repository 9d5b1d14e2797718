package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"anonapi/internal/app"
)

func newServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Manage the configured job servers",
	}
	cmd.AddCommand(newServerListCommand())
	cmd.AddCommand(newServerActivateCommand())
	cmd.AddCommand(newServerStatusCommand())
	return cmd
}

func newServerListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.ServerList(cmd.Context())
			if err != nil {
				return err
			}
			for _, server := range result.Servers {
				marker := "  "
				if server.Name == result.Active {
					marker = "* "
				}
				fmt.Printf("%s%-10s %s\n", marker, server.Name, server.URL)
			}
			return nil
		},
	}
}

func newServerActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate NAME",
		Short: "Make a server the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.ServerActivate(cmd.Context(), app.ServerActivateRequest{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("active server: %s (%s)\n", result.Server.Name, result.Server.URL)
			return nil
		},
	}
}

func newServerStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.ServerStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("active server: %s (%s)\n", result.Server.Name, result.Server.URL)
			return nil
		},
	}
}
