package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"registro/internal/cli"
	"registro/internal/codec"
	"registro/internal/config"
	"registro/internal/core"
	"registro/internal/ledger"
	applog "registro/internal/log"
	"registro/internal/report"
	"registro/internal/services"
)

func main() {
	cfg, logger := cli.Bootstrap()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	store := ledger.New()
	svc := services.NewBookService(store).WithCategories(cfg.Categories)

	command, args := os.Args[1], os.Args[2:]
	if err := run(context.Background(), svc, cfg, command, args); err != nil {
		logger.Error("Command failed", applog.FieldCommand, command, applog.FieldError, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, svc *services.BookService, cfg *config.Config, command string, args []string) error {
	// Every ledger command starts from the data file and writes it back when
	// it mutated anything. The file is the only persistence there is.
	load := func() error {
		if err := codec.EnsureFile(cfg.DataFile); err != nil {
			return err
		}
		_, err := svc.LoadFromFile(ctx, cfg.DataFile)
		return err
	}
	save := func() error {
		return svc.SaveToFile(ctx, cfg.DataFile, nil)
	}

	switch command {
	case "init":
		return codec.EnsureFile(cfg.DataFile)

	case "add":
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		date := fs.String("date", "", "transaction date (empty means today)")
		name := fs.String("name", "", "transaction name")
		category := fs.String("category", "", "category")
		amount := fs.String("amount", "", "amount")
		fs.Parse(args)
		if err := load(); err != nil {
			return err
		}
		if _, err := svc.AddRecord(ctx, *date, *name, *category, *amount); err != nil {
			return err
		}
		return save()

	case "income":
		fs := flag.NewFlagSet("income", flag.ExitOnError)
		amount := fs.String("amount", "", "income amount")
		fs.Parse(args)
		if err := load(); err != nil {
			return err
		}
		if _, err := svc.AddIncome(ctx, *amount); err != nil {
			return err
		}
		return save()

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		date := fs.String("date", "", "transaction date")
		name := fs.String("name", "", "transaction name")
		category := fs.String("category", "", "category")
		amount := fs.String("amount", "", "amount")
		fs.Parse(args)
		match, err := buildMatch(*date, *name, *category, *amount)
		if err != nil {
			return err
		}
		if err := load(); err != nil {
			return err
		}
		if err := svc.DeleteRecord(ctx, match); err != nil {
			return err
		}
		return save()

	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		q := queryFlags(fs)
		fs.Parse(args)
		if err := load(); err != nil {
			return err
		}
		return printRecords(svc.ApplyFilter(ctx, *q))

	case "totals":
		if err := load(); err != nil {
			return err
		}
		t := svc.ComputeTotals(ctx)
		fmt.Printf("Income:  %s\n", core.FormatAmount(t.Income))
		fmt.Printf("Expense: %s\n", core.FormatAmount(t.Expense))
		fmt.Printf("Balance: %s\n", core.FormatAmount(t.Balance))
		return nil

	case "breakdown":
		fs := flag.NewFlagSet("breakdown", flag.ExitOnError)
		q := queryFlags(fs)
		fs.Parse(args)
		if err := load(); err != nil {
			return err
		}
		records := svc.Snapshot(ctx)
		if q.Month != 0 || q.Year != 0 || q.Category != "" {
			records = svc.ApplyFilter(ctx, *q)
		}
		for _, ca := range svc.ComputeCategoryBreakdown(ctx, records) {
			fmt.Printf("%s\t%s\n", ca.Name, core.FormatAmount(ca.Amount))
		}
		return nil

	case "trend":
		if err := load(); err != nil {
			return err
		}
		for _, ma := range svc.ComputeMonthlyTrend(ctx) {
			fmt.Printf("%s\t%s\n", ma.Month, core.FormatAmount(ma.Amount))
		}
		return nil

	case "goal":
		fs := flag.NewFlagSet("goal", flag.ExitOnError)
		amount := fs.String("amount", "", "savings goal amount")
		fs.Parse(args)
		if err := load(); err != nil {
			return err
		}
		if err := svc.SetGoal(ctx, *amount); err != nil {
			return err
		}
		progress, err := svc.GoalProgress(ctx)
		if errors.Is(err, core.ErrNoGoal) {
			fmt.Println("Goal: not set")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Progress: %s%%\n", progress.StringFixed(1))
		return nil

	case "import":
		fs := flag.NewFlagSet("import", flag.ExitOnError)
		path := fs.String("file", "", "file to import (replaces the ledger)")
		fs.Parse(args)
		if *path == "" {
			return fmt.Errorf("import: -file is required")
		}
		n, err := svc.LoadFromFile(ctx, *path)
		if err != nil {
			return err
		}
		if err := save(); err != nil {
			return err
		}
		fmt.Printf("Imported %d records\n", n)
		return nil

	case "export":
		fs := flag.NewFlagSet("export", flag.ExitOnError)
		path := fs.String("file", "", "destination file")
		q := queryFlags(fs)
		fs.Parse(args)
		if *path == "" {
			return fmt.Errorf("export: -file is required")
		}
		if err := load(); err != nil {
			return err
		}
		var view []core.Record
		if q.Month != 0 || q.Year != 0 || q.Category != "" {
			view = svc.ApplyFilter(ctx, *q)
		}
		return svc.SaveToFile(ctx, *path, view)

	case "categories":
		for _, c := range svc.Categories() {
			fmt.Println(c)
		}
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func queryFlags(fs *flag.FlagSet) *report.Query {
	q := &report.Query{}
	fs.IntVar(&q.Month, "month", 0, "month filter 1-12 (0 means all)")
	fs.IntVar(&q.Year, "year", 0, "year filter (0 means all)")
	fs.StringVar(&q.Category, "category", "", "category substring filter")
	return q
}

func buildMatch(date, name, category, amount string) (core.Record, error) {
	iso, err := core.NormalizeDate(date)
	if err != nil {
		return core.Record{}, err
	}
	amt, err := core.ParseAmount(amount)
	if err != nil {
		return core.Record{}, err
	}
	return core.Record{Date: iso, Name: name, Category: category, Amount: amt}, nil
}

func printRecords(records []core.Record) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tNAME\tCATEGORY\tAMOUNT")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Date, r.Name, r.Category, core.FormatAmount(r.Amount))
	}
	return w.Flush()
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: registro <command> [flags]

commands:
  init        create the data file with a header row
  add         add a transaction (-date -name -category -amount)
  income      add an income entry dated today (-amount)
  delete      delete the first matching transaction (-date -name -category -amount)
  list        list transactions (-month -year -category)
  totals      show income, expense and balance
  breakdown   show per-category sums (-month -year -category)
  trend       show monthly expense totals
  goal        set the savings goal and show progress (-amount)
  import      replace the ledger from a file (-file)
  export      write the ledger, optionally filtered, to a file (-file -month -year -category)
  categories  list the category choices`)
}
