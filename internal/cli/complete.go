package cli

import (
	"fmt"

	"github.com/phpshell/protoreg/hostfuncs"
	"github.com/spf13/cobra"
)

func (a *app) newCompleteCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "complete <prefix>",
		Short: "List keys starting with a prefix",
		Example: `  protohelp complete 'PDO::'
  protohelp complete mysqli_ --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			resp := hostfuncs.PerformPrototypeComplete(reg, hostfuncs.PrototypeCompleteRequest{
				Prefix: args[0],
				Limit:  limit,
			})
			for _, key := range resp.Keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			if resp.Truncated {
				a.logger.Warn("completion truncated", "prefix", args[0], "limit", len(resp.Keys))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", hostfuncs.DefaultCompleteLimit, "maximum number of keys to print")
	return cmd
}
