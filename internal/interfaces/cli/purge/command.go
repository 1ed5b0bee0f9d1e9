// Package purge implements the CLI command that removes all mirrored data.
package purge

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"eveuniverse/internal/interfaces/cli/bootstrap"
)

var (
	env string
	yes bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete all mirrored universe data",
		Long:  `Remove every mirrored row from the database. Data can be loaded again at any time.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if !yes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to purge without confirmation; pass --yes")
		}
		fmt.Print("This deletes all mirrored universe data. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	app, err := bootstrap.Setup(cmd.Context(), env)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Engine.PurgeAll(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("All universe data deleted")
	return nil
}
