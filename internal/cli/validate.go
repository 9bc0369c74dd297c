package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phpshell/protoreg/domain/entities"
	domainerrors "github.com/phpshell/protoreg/domain/errors"
	"github.com/phpshell/protoreg/infrastructure/source"
	"github.com/phpshell/protoreg/registry"
	"github.com/spf13/cobra"
)

// validateReport is the --json form of one file's result.
type validateReport struct {
	Error      *entities.ErrorDetail `json:"error,omitempty"`
	File       string                `json:"file"`
	Format     string                `json:"format,omitempty"`
	Prototypes int                   `json:"prototypes"`
	Valid      bool                  `json:"valid"`
}

func (a *app) newValidateCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check prototype table files before shipping them as overlays",
		Long: `Validate loads each table file the way an overlay is loaded: format version,
schema (JSON only), record rules and duplicate keys within the file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]validateReport, 0, len(args))
			failed := 0
			for _, path := range args {
				report := a.validateFile(cmd, path, asJSON)
				if !report.Valid {
					failed++
				}
				reports = append(reports, report)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

func (a *app) validateFile(cmd *cobra.Command, path string, asJSON bool) validateReport {
	report := validateReport{File: path}

	table, err := source.NewFileSource(path).Load(cmd.Context())
	if err == nil {
		_, err = registry.New(cmd.Context(),
			registry.WithPrototypes(path, table.Prototypes...),
			registry.WithLogger(a.logger),
		)
	}
	if err != nil {
		a.logger.Debug("table rejected", "file", path, "error", err)
		report.Error = domainerrors.ToErrorDetail(err)
		if !asJSON {
			printIssues(cmd, path, err)
		}
		return report
	}

	report.Valid = true
	report.Format = table.Format
	report.Prototypes = table.Len()
	if !asJSON {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d prototypes, format %s)\n", path, table.Len(), table.Format)
	}
	return report
}

func printIssues(cmd *cobra.Command, path string, err error) {
	var verr *domainerrors.ValidationError
	if !errors.As(err, &verr) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d issue(s)\n", path, len(verr.Issues))
	for _, issue := range verr.Issues {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", issue.Field, issue.Message)
	}
}
