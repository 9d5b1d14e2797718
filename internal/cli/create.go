package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"anonapi/internal/app"
)

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create jobs on the active server",
	}
	cmd.AddCommand(newCreateFromMappingCommand())
	cmd.AddCommand(newCreateSetDefaultsCommand())
	cmd.AddCommand(newCreateShowDefaultsCommand())
	return cmd
}

func newCreateFromMappingCommand() *cobra.Command {
	yes := false
	cmd := &cobra.Command{
		Use:   "from-mapping",
		Short: "Create one job per row of the mapping in the working directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			plan, err := service.CreatePlan(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("this will create %d jobs on %s (%s), for project '%s', writing data to '%s'\n",
				plan.RowCount, plan.ServerName, plan.ServerURL, plan.Project, plan.Destination)
			if !yes && !confirm("are you sure?") {
				fmt.Println("cancelled")
				return nil
			}

			result, err := service.CreateFromMapping(cmd.Context())
			if err != nil {
				return err
			}
			var rowErr error
			for _, row := range result.Results {
				if row.Err != nil {
					rowErr = row.Err
					fmt.Printf("row %d: %s\n", row.Row, errorMessage(row.Err))
					continue
				}
				fmt.Printf("row %d: created job %d\n", row.Row, row.JobID)
			}
			fmt.Printf("created %d jobs: %v\n", len(result.CreatedIDs), result.CreatedIDs)
			if result.BatchMessage != "" {
				fmt.Println(result.BatchMessage)
			} else if result.BatchSaved {
				fmt.Println("saved job ids in batch in working directory")
			}
			// The created prefix is recorded either way; a failing row
			// still fails the command.
			return rowErr
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func newCreateSetDefaultsCommand() *cobra.Command {
	opts := app.SetDefaultsRequest{}
	cmd := &cobra.Command{
		Use:   "set-defaults",
		Short: "Set the project and destination used when creating jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.SetDefaults(opts)
			if err != nil {
				return err
			}
			fmt.Printf("default project: %s\ndefault destination: %s\n",
				result.Project, result.DestinationPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Project, "project", "", "Default project name")
	cmd.Flags().StringVar(&opts.DestinationPath, "destination", "", "Default job destination directory")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("destination")
	return cmd
}

func newCreateShowDefaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show-defaults",
		Short: "Show the project and destination used when creating jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd)
			if err != nil {
				return err
			}
			result, err := service.ShowDefaults()
			if err != nil {
				return err
			}
			fmt.Printf("default project: %s\ndefault destination: %s\n",
				result.Project, result.DestinationPath)
			return nil
		},
	}
}

func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
