package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mrsinham/screenforge/internal/document"
	"github.com/mrsinham/screenforge/internal/spreadsheet"
	"github.com/mrsinham/screenforge/internal/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [file.docx]",
		Short: "Print the text of a Word document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.log.Warn("No file selected")
				return nil
			}
			path := args[0]
			a.log.WithField("path", path).Infof("Selected file: %s", path)

			text, err := document.ExtractText(path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newTableCmd(a *app) *cobra.Command {
	var id, from, sheet string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Save rows from a spreadsheet or YAML file as a Word table",
		Example: `  screenforge table --id 1234567890 --from patients.xlsx --sheet Sheet1
  screenforge table --id 1234567890 --from rows.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from == "" {
				return errors.New("--from is required")
			}
			rows, err := a.loadRows(from, sheet)
			if err != nil {
				return err
			}

			w, err := a.cfg.NewWriter(a.log)
			if err != nil {
				return err
			}
			path, err := w.SaveTable(id, rows)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Document saved as %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Identifier used to name the output file")
	cmd.Flags().StringVar(&from, "from", "", "Rows source: .xlsx/.xlsm workbook or YAML list of rows")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name (default: active sheet)")
	return cmd
}

// loadRows reads table rows from a workbook or a YAML file, chosen by extension.
func (a *app) loadRows(path, sheet string) ([]table.Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return spreadsheet.ReadRows(path, spreadsheet.WithSheet(sheet), spreadsheet.WithLogger(a.log))
	default:
		return table.LoadYAML(path)
	}
}

func newReadColumnCmd(a *app) *cobra.Command {
	var (
		column, startRow int
		sheet            string
	)

	cmd := &cobra.Command{
		Use:   "read-column [file.xlsx]",
		Short: "Log every value of a spreadsheet column and print how many were read",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.log.Warn("No Excel file selected")
				return nil
			}
			path := args[0]
			a.log.WithField("path", path).Infof("Processing Excel file: %s", path)

			count := 0
			for _, err := range spreadsheet.ReadColumn(path, column, startRow,
				spreadsheet.WithSheet(sheet), spreadsheet.WithLogger(a.log)) {
				if err != nil {
					return err
				}
				count++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Read %d values\n", count)
			return nil
		},
	}

	cmd.Flags().IntVar(&column, "column", 1, "Column number, starting at 1")
	cmd.Flags().IntVar(&startRow, "start-row", 2, "First row to read, starting at 1")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name (default: active sheet)")
	return cmd
}

func newFillCmd(a *app) *cobra.Command {
	var infos []string

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Save one placeholder document per template information line",
		Example: `  screenforge fill --info "Протокол A" --info "Протокол B"`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(infos) == 0 || lo.Contains(infos, "") {
				a.log.Warn("Incomplete template information")
				return nil
			}

			w, err := a.cfg.NewWriter(a.log)
			if err != nil {
				return err
			}
			for i, info := range infos {
				n := i + 1
				a.log.Infof("Filling template %d with: %s", n, info)
				path, err := w.SaveNamed(fmt.Sprintf("template_%d_filled.docx", n),
					fmt.Sprintf("Template %d filled with: %s", n, info))
				if err != nil {
					return err
				}
				a.log.Infof("Saved Template %d as '%s'", n, path)
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&infos, "info", nil, "Information for the next template (repeatable)")
	return cmd
}
