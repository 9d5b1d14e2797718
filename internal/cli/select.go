package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"anonapi/internal/app"
)

func newSelectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select files for a single anonymization job",
	}
	cmd.AddCommand(newSelectStatusCommand())
	cmd.AddCommand(newSelectAddCommand())
	cmd.AddCommand(newSelectDeleteCommand())
	cmd.AddCommand(newSelectEditCommand())
	return cmd
}

func newSelectStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the selection in the working directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.SelectStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("selection containing %d files\ndescription: %s\n",
				result.FileCount, result.Description)
			return nil
		},
	}
}

func newSelectAddCommand() *cobra.Command {
	opts := app.SelectAddRequest{}
	cmd := &cobra.Command{
		Use:   "add PATTERN",
		Short: "Add all files matching a pattern to the selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			opts.Pattern = args[0]
			result, err := service.SelectAdd(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Printf("selection now contains %d files\n", result.Total)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Recurse, "recurse", true, "Recurse into directories")
	cmd.Flags().BoolVar(&opts.CheckDicom, "check-dicom", false, "Only include files that are DICOM")
	cmd.Flags().StringSliceVarP(&opts.ExcludePatterns, "exclude-pattern", "e", nil,
		"Exclude any file name matching this pattern")
	return cmd
}

func newSelectDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the selection in the working directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.SelectDelete(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("removed %s\n", result.Path)
			return nil
		},
	}
}

func newSelectEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the selection in the OS default editor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.SelectEdit(cmd.Context())
			if err != nil {
				return err
			}
			if !result.Launched {
				fmt.Println("no selection defined in the working directory")
				return nil
			}
			fmt.Printf("opened %s\n", result.Path)
			return nil
		},
	}
}
