package cli

import (
	"fmt"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"anonapi/internal/app"
)

func newBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Manage the batch of job ids in the working directory",
	}
	cmd.AddCommand(newBatchStatusCommand())
	cmd.AddCommand(newBatchInitCommand())
	cmd.AddCommand(newBatchDeleteCommand())
	cmd.AddCommand(newBatchAddCommand())
	return cmd
}

func newBatchStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the status of every job in the batch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.BatchStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("batch on %s, %d jobs\n", result.ServerURL, len(result.Jobs))
			for _, job := range result.Jobs {
				line := fmt.Sprintf("  %d\t%s", job.ID, job.Status)
				if job.Error != "" {
					line += "\t" + job.Error
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newBatchInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty batch for the active server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.BatchInit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("created batch for %s in %s\n", result.Server, result.Path)
			return nil
		},
	}
}

func newBatchDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the batch in the working directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.BatchDelete(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("removed %s\n", result.Path)
			return nil
		},
	}
}

func newBatchAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add ID...",
		Short: "Add job ids to the batch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 0, len(args))
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return errbuilder.New().
						WithCode(errbuilder.CodeInvalidArgument).
						WithMsg(fmt.Sprintf("'%s' is not a job id", arg))
				}
				ids = append(ids, id)
			}
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.BatchAdd(cmd.Context(), app.BatchAddRequest{IDs: ids})
			if err != nil {
				return err
			}
			fmt.Printf("batch now contains %d job ids\n", len(result.IDs))
			return nil
		},
	}
}
