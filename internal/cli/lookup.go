package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phpshell/protoreg/application/help"
	"github.com/phpshell/protoreg/hostfuncs"
	"github.com/spf13/cobra"
)

// ErrNotFound is returned when a looked-up key is not registered.
var ErrNotFound = errors.New("prototype not found")

func (a *app) newLookupCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup <key>",
		Short: "Print the prototype for a function or method",
		Example: `  protohelp lookup mysqli_connect
  protohelp lookup 'PDO::query' --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			key := args[0]

			if asJSON {
				resp := hostfuncs.PerformPrototypeLookup(reg, hostfuncs.PrototypeLookupRequest{Key: key})
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(resp); err != nil {
					return fmt.Errorf("encoding response: %w", err)
				}
				if !resp.Found {
					return ErrNotFound
				}
				return nil
			}

			renderer, err := help.NewRenderer(reg)
			if err != nil {
				return err
			}
			text, ok, err := renderer.Render(key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			if !ok {
				return ErrNotFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}
