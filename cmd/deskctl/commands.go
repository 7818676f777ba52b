package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	api_types "pmsdesk/api-types"
	"pmsdesk/internal/app"
	"pmsdesk/internal/category"
	"pmsdesk/internal/config"
	"pmsdesk/internal/resolver"

	"github.com/google/subcommands"
)

func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

type stageCmd struct {
	category  string
	qcode     string
	file      string
	date      string
	startDate string
	endDate   string
}

func (*stageCmd) Name() string     { return "stage" }
func (*stageCmd) Synopsis() string { return "upload a csv into the staging table of a category" }
func (*stageCmd) Usage() string {
	return `deskctl stage -category <category> -qcode <qcode> -file <path.csv> [-date YYYY-MM-DD] [-start YYYY-MM-DD -end YYYY-MM-DD]

  Replaces the staged rows of the account with the rows of the file and
  prints the per-row outcome.
`
}

func (s *stageCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.category, "category", "", "master-sheet, equity-holding or mutual-fund-holding")
	f.StringVar(&s.qcode, "qcode", "", "account code")
	f.StringVar(&s.file, "file", "", "csv file to upload")
	f.StringVar(&s.date, "date", "", "holding date, required for holdings")
	f.StringVar(&s.startDate, "start", "", "only stage rows on or after this date")
	f.StringVar(&s.endDate, "end", "", "only stage rows on or before this date")
}

func (s *stageCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := category.Parse(s.category)
	if err != nil {
		return fail(err)
	}
	f, err := os.Open(s.file)
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	a, err := app.New(*configPath)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	resp, err := a.Resolver().Upload(ctx, c, api_types.UploadRequest{
		Qcode:     s.qcode,
		Date:      s.date,
		StartDate: s.startDate,
		EndDate:   s.endDate,
	}, resolver.UploadedFile{Name: filepath.Base(s.file), Reader: f})
	if err != nil {
		return fail(err)
	}
	return printJSON(resp)
}

type syncCmd struct {
	category string
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "promote staged rows to production" }
func (*syncCmd) Usage() string {
	return `deskctl sync -category <category> <qcode> [<qcode>...]

  Replaces each account's production rows with its staged rows. Accounts are
  processed one at a time and a failure on one does not stop the rest.
`
}

func (s *syncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.category, "category", "", "master-sheet, equity-holding or mutual-fund-holding")
}

func (s *syncCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := category.Parse(s.category)
	if err != nil {
		return fail(err)
	}
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	a, err := app.New(*configPath)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	resp, err := a.Resolver().Sync(ctx, c, api_types.SyncRequest{Qcodes: f.Args()})
	if err != nil {
		return fail(err)
	}
	status := printJSON(resp)
	if resp.Summary.Failed > 0 {
		return subcommands.ExitFailure
	}
	return status
}

type historyCmd struct {
	category string
	qcode    string
	limit    int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show recent sync log entries" }
func (*historyCmd) Usage() string {
	return `deskctl history -category <category> [-qcode <qcode>] [-limit n]
`
}

func (h *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&h.category, "category", "", "master-sheet, equity-holding or mutual-fund-holding")
	f.StringVar(&h.qcode, "qcode", "", "only show this account")
	f.IntVar(&h.limit, "limit", 0, "number of log rows, defaults to the configured history limit")
}

func (h *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := category.Parse(h.category)
	if err != nil {
		return fail(err)
	}

	a, err := app.New(*configPath)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	resp, err := a.Resolver().SyncHistory(ctx, c, api_types.SyncHistoryRequest{Qcode: h.qcode, Limit: h.limit})
	if err != nil {
		return fail(err)
	}
	return printJSON(resp)
}

type twrrCmd struct {
	transactions string
	aum          string
	account      string
}

func (*twrrCmd) Name() string     { return "twrr" }
func (*twrrCmd) Synopsis() string { return "compute a time-weighted NAV series from custodian exports" }
func (*twrrCmd) Usage() string {
	return `deskctl twrr -transactions <file> -aum <file> -account <code>

  Files may be csv, xlsx or xls. Nothing is read from or written to the
  database.
`
}

func (t *twrrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.transactions, "transactions", "", "transaction export")
	f.StringVar(&t.aum, "aum", "", "daily AUM export")
	f.StringVar(&t.account, "account", "", "account code")
}

func (t *twrrCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txns, err := os.Open(t.transactions)
	if err != nil {
		return fail(err)
	}
	defer txns.Close()
	aum, err := os.Open(t.aum)
	if err != nil {
		return fail(err)
	}
	defer aum.Close()

	logger := config.NewLogger("warn")
	logger.SetOutput(os.Stderr)
	r := resolver.NewResolver(nil, nil, nil, logger)
	resp, err := r.TwrrUpload(
		ctx,
		api_types.TwrrUploadRequest{AccountCode: t.account},
		resolver.UploadedFile{Name: filepath.Base(t.transactions), Reader: txns},
		resolver.UploadedFile{Name: filepath.Base(t.aum), Reader: aum},
	)
	if err != nil {
		return fail(err)
	}
	return printJSON(resp)
}
