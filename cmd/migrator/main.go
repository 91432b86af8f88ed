package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"db_table_schema_mutator/internal/config"
	"db_table_schema_mutator/internal/console"
	"db_table_schema_mutator/internal/db"
	"db_table_schema_mutator/internal/logging"
	"db_table_schema_mutator/internal/migrate"
	"db_table_schema_mutator/internal/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "exists":
		err = existsCmd(args)
	case "drop":
		err = dropCmd(args)
	case "truncate":
		err = truncateCmd(args)
	case "rename":
		err = renameCmd(args)
	case "raw":
		err = rawCmd(args)
	case "demo":
		err = demoCmd(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %s\n", cmd)
		usage()
		os.Exit(1)
	}
	if err != nil {
		console.PrintError(os.Stderr, console.ErrorReport{
			Header:  "migrator error",
			Message: err.Error(),
			Path:    cmd,
		})
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`migrator commands:
  exists    - check whether a table is present in the catalog
  drop      - drop a table if it exists
  truncate  - truncate a table
  rename    - rename a table
  raw       - run an arbitrary statement with bound parameters
  demo      - run a sample migration building a demo table

Config comes from the environment (a .env file is honored):
  MUTATOR_DB_ENGINE   postgres or mysql (default postgres)
  MUTATOR_DB_DSN      connection string
  MUTATOR_LOG_LEVEL   debug|info|warn|error (default info)
  MUTATOR_LOG_FORMAT  json or text (default json)

Flags are command specific; run "<cmd> -h" for details.`)
}

func existsCmd(args []string) error {
	fs := flagSet("exists")
	table := fs.String("table", "", "table name")
	dryRun := fs.Bool("dry-run", false, "log statements instead of executing them")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *table == "" {
		return fmt.Errorf("--table is required")
	}

	return withMutator(*table, *dryRun, func(ctx context.Context, m *schema.Mutator) error {
		ok, err := m.Exists(ctx)
		if err != nil {
			return err
		}
		if ok {
			console.Print(os.Stdout, label("table exists:", "green"), console.Segment{Text: *table})
		} else {
			console.Print(os.Stdout, label("table not found:", "yellow"), console.Segment{Text: *table})
		}
		return nil
	})
}

func dropCmd(args []string) error {
	fs := flagSet("drop")
	table := fs.String("table", "", "table name")
	dryRun := fs.Bool("dry-run", false, "log statements instead of executing them")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *table == "" {
		return fmt.Errorf("--table is required")
	}

	return withMutator(*table, *dryRun, func(ctx context.Context, m *schema.Mutator) error {
		if err := m.Drop(ctx); err != nil {
			return err
		}
		console.Print(os.Stdout, label("dropped:", "green"), console.Segment{Text: *table})
		return nil
	})
}

func truncateCmd(args []string) error {
	fs := flagSet("truncate")
	table := fs.String("table", "", "table name")
	dryRun := fs.Bool("dry-run", false, "log statements instead of executing them")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *table == "" {
		return fmt.Errorf("--table is required")
	}

	return withMutator(*table, *dryRun, func(ctx context.Context, m *schema.Mutator) error {
		if err := m.Truncate(ctx); err != nil {
			return err
		}
		console.Print(os.Stdout, label("truncated:", "green"), console.Segment{Text: *table})
		return nil
	})
}

func renameCmd(args []string) error {
	fs := flagSet("rename")
	table := fs.String("table", "", "current table name")
	to := fs.String("to", "", "new table name")
	dryRun := fs.Bool("dry-run", false, "log statements instead of executing them")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *table == "" || *to == "" {
		return fmt.Errorf("--table and --to are required")
	}

	return withMutator(*table, *dryRun, func(ctx context.Context, m *schema.Mutator) error {
		if err := m.Rename(ctx, *to); err != nil {
			return err
		}
		console.Print(os.Stdout, label("renamed:", "green"),
			console.Segment{Text: *table + " -> " + *to})
		return nil
	})
}

func rawCmd(args []string) error {
	fs := flagSet("raw")
	dryRun := fs.Bool("dry-run", false, "log statements instead of executing them")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: raw [flags] <query> [param ...]")
	}
	query := rest[0]
	params := make([]any, 0, len(rest)-1)
	for _, p := range rest[1:] {
		params = append(params, p)
	}

	return withMutator("", *dryRun, func(ctx context.Context, m *schema.Mutator) error {
		res, err := m.Raw(ctx, query, params...)
		if err != nil {
			return err
		}
		for _, row := range res.Rows {
			fmt.Printf("%v\n", row)
		}
		console.Print(os.Stdout, label("ok", "green"),
			console.Segment{Text: fmt.Sprintf("(%d rows)", len(res.Rows))})
		return nil
	})
}

// demoCmd builds a sample table through the migration runner, then checks it
// back through the catalog. Handy against a scratch database or --dry-run.
func demoCmd(args []string) error {
	fs := flagSet("demo")
	table := fs.String("table", "mutator_demo", "table name to build")
	dryRun := fs.Bool("dry-run", false, "log statements instead of executing them")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	exec, err := openExecutor(cfg, *dryRun, logger)
	if err != nil {
		return err
	}
	defer exec.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	m := schema.NewMutator(exec, *table, []schema.Field{
		{Name: "id", Types: []string{"SERIAL", "PRIMARY KEY"}},
		{Name: "name", Types: []string{"VARCHAR(255)", "NOT NULL"}},
		{Name: "created_at", Types: []string{"TIMESTAMPTZ", "NOT NULL", "DEFAULT now()"}},
	})

	runner := migrate.NewRunner(logger)
	err = runner.Run(ctx, m, func(ctx context.Context, m *schema.Mutator) error {
		if err := m.Create(ctx); err != nil {
			return err
		}
		return m.AddColumn(ctx, "note", []string{"TEXT"})
	})
	if err != nil {
		return err
	}

	console.Print(os.Stdout, label("demo migration applied:", "green"),
		console.Segment{Text: m.Table(), Styles: []string{"bold"}})
	return nil
}

// label is shorthand for a colored label segment.
func label(text, color string) console.Segment {
	return console.Segment{Text: text, Color: color}
}

func withMutator(table string, dryRun bool, fn func(ctx context.Context, m *schema.Mutator) error) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	exec, err := openExecutor(cfg, dryRun, logger)
	if err != nil {
		return err
	}
	defer exec.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return fn(ctx, schema.NewMutator(exec, table, nil))
}

func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logging.NewLogger(cfg.LogLevel, cfg.LogFormat), nil
}

func openExecutor(cfg config.Config, dryRun bool, logger *slog.Logger) (db.Conn, error) {
	if dryRun {
		return db.NewDryRun(logger), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return db.Open(ctx, cfg.DB)
}

func flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	return fs
}
