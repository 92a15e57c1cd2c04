package commands

import (
	"fmt"

	app_info "github.com/opsline/cutover/internal/app-info"
	"github.com/spf13/cobra"
)

// version prints the version of cutover itself, not of the project
// being released
func version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cutover version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", app_info.NAME, app_info.VERSION)
		},
	}
}
