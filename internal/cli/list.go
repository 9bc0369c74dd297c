package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/phpshell/protoreg/domain/entities"
	"github.com/spf13/cobra"
)

func (a *app) newListCommand() *cobra.Command {
	var (
		owner  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered prototypes",
		Long:  `List every registered prototype in key order, optionally only the methods of one owner type.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			var entries []entities.Prototype
			for _, p := range reg.Prototypes() {
				if owner != "" && p.Owner() != owner {
					continue
				}
				entries = append(entries, p)
			}

			if asJSON {
				if entries == nil {
					entries = []entities.Prototype{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tRETURN\tPARAMS")
			for _, p := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Key, dash(p.Return), dash(p.Params))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "only list methods of this owner type, e.g. PDO")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
