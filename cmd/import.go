package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/chainpay-labs/paybot/internal/payroll"
	"github.com/chainpay-labs/paybot/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import [glob]",
	Short: "Import payroll data from JSON files",
	Long: `Imports employees and payments from JSON files matching a glob pattern
(supports ** for recursive matching). Each file holds an object with
optional "employees" and "payments" arrays. Records with IDs update
existing rows; records without IDs are inserted.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

// importFile is the on-disk format accepted by the import command.
type importFile struct {
	Employees []payroll.Employee `json:"employees"`
	Payments  []payroll.Payment  `json:"payments"`
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, database, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	matches, err := doublestar.FilepathGlob(args[0])
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", args[0], err)
	}
	if len(matches) == 0 {
		fmt.Printf("No files match %q.\n", args[0])
		return nil
	}

	bar := progressbar.NewOptions(len(matches),
		progressbar.OptionSetDescription("Importing payroll data"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var employees, payments int
	for _, path := range matches {
		bar.Describe(path)

		e, p, err := importOne(ctx, st, path)
		if err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		employees += e
		payments += p

		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Printf("Imported %d employee(s) and %d payment(s) from %d file(s).\n", employees, payments, len(matches))
	return nil
}

func importOne(ctx context.Context, st *store.Store, path string) (int, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}

	var f importFile
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, 0, fmt.Errorf("parsing JSON: %w", err)
	}

	for _, e := range f.Employees {
		if e.Name == "" {
			return 0, 0, fmt.Errorf("employee without a name")
		}
		if _, err := st.SaveEmployee(ctx, e); err != nil {
			return 0, 0, err
		}
	}
	for _, p := range f.Payments {
		if _, err := st.SavePayment(ctx, p); err != nil {
			return 0, 0, err
		}
	}

	return len(f.Employees), len(f.Payments), nil
}
