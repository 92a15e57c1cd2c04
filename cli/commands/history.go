package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// creates and returns the "history" command
func historyCmd(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lists releases recorded by this tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			releases, err := props.History.GetAll()

			if err != nil {
				return err
			}

			if len(releases) == 0 {
				cmd.Println("no releases recorded")
				return nil
			}

			for _, r := range releases {
				cmd.Println(fmt.Sprintf(
					"%s  %-10s  %-12s  %s",
					r.CreatedAt.Format("2006-01-02 15:04"),
					r.Tag,
					r.Type,
					r.Branch,
				))
			}

			return nil
		},
	}

	return cmd
}
