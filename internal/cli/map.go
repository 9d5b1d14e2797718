package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"anonapi/internal/app"
)

func newMapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map original data to anonymized name, id and description",
	}
	cmd.AddCommand(newMapStatusCommand())
	cmd.AddCommand(newMapInitCommand())
	cmd.AddCommand(newMapDeleteCommand())
	cmd.AddCommand(newMapEditCommand())
	cmd.AddCommand(newMapAddStudyFolderCommand())
	cmd.AddCommand(newMapAddSelectionCommand())
	return cmd
}

func newMapStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the mapping in the working directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.MapStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(result.Display)
			return nil
		},
	}
}

func newMapInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Save a default mapping in the working directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.MapInit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("initialised example mapping in %s\n", result.Path)
			return nil
		},
	}
}

func newMapDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the mapping in the working directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.MapDelete(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("removed %s\n", result.Path)
			return nil
		},
	}
}

func newMapEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the mapping in the OS default editor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.MapEdit(cmd.Context())
			if err != nil {
				return err
			}
			if !result.Launched {
				fmt.Println("no mapping defined in the working directory")
				return nil
			}
			fmt.Printf("opened %s\n", result.Path)
			return nil
		},
	}
}

func newMapAddStudyFolderCommand() *cobra.Command {
	checkDicom := true
	cmd := &cobra.Command{
		Use:   "add-study-folder PATH",
		Short: "Add all DICOM files in a folder to the mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.AddStudyFolder(cmd.Context(), app.AddStudyFolderRequest{
				Path:       args[0],
				CheckDicom: checkDicom,
			})
			if err != nil {
				return err
			}
			fmt.Printf("found %d files, %d DICOM; added '%s' to mapping\n",
				result.FileCount, result.DicomCount, result.Path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&checkDicom, "check-dicom", true, "Only include files that are DICOM")
	return cmd
}

func newMapAddSelectionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-selection FILE",
		Short: "Add a file selection to the mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.AddSelection(cmd.Context(), app.AddSelectionRequest{Path: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("added '%s' to mapping\n", result.Identifier)
			return nil
		},
	}
}
