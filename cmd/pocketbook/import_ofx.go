package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/common"
	"pocketbook/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	var (
		category string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Read bank or credit card statements in OFX format and record
their transactions: debits become expenses in the given category, and
credits become incomes with the transaction description as the source.

Glob patterns are expanded, so a whole download directory works:

  pocketbook import-ofx ~/Downloads/*.qfx --category Imported`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandGlobs(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no files matched %v", args)
			}

			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			parser := ofx.NewParser()
			var entries []ofx.Entry
			for _, file := range files {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", file, err)
				}
				parsed, err := parser.ParseFile(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("failed to parse %s: %w", file, err)
				}
				slog.Debug("Parsed statement file", "file", file, "transactions", len(parsed))
				entries = append(entries, parsed...)
			}

			if dryRun {
				for _, e := range entries {
					kind := "income "
					if e.Debit {
						kind = "expense"
					}
					fmt.Printf("%s  %s  %10.2f  %s\n", kind, e.Date.Format("2006-01-02"), e.Amount, e.Description)
				}
				fmt.Println(cli.FormatTitle(fmt.Sprintf("Dry run: %d transactions across %d files", len(entries), len(files))))
				return nil
			}

			bar := progressbar.NewOptions(len(entries),
				progressbar.OptionSetDescription("Importing transactions"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			var imported, skipped int
			for _, e := range entries {
				var err error
				if e.Debit {
					_, err = l.CreateExpense(cmd.Context(), category, e.Amount, e.Date, e.Description)
				} else {
					_, err = l.CreateIncome(cmd.Context(), e.Description, e.Amount, e.Date, e.Description)
				}
				if err != nil {
					common.LogError(err, "skipping transaction", common.Fields{"description": e.Description})
					skipped++
				} else {
					imported++
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			msg := fmt.Sprintf("Imported %d transactions", imported)
			if skipped > 0 {
				msg += fmt.Sprintf(" (%d skipped)", skipped)
			}
			fmt.Println(cli.FormatSuccess(msg))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "Imported", "category for imported expenses")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and show transactions without recording them")

	return cmd
}

// expandGlobs resolves each argument as a glob pattern, passing through
// arguments that match nothing so missing files surface as open errors.
func expandGlobs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			files = append(files, arg)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
