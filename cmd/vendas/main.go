package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"vendas/internal/cli"
	"vendas/internal/config"
	"vendas/internal/core"
	"vendas/internal/export"
	applog "vendas/internal/log"
	"vendas/internal/report"
	"vendas/internal/sales"
)

const usage = `usage: vendas <command> [args]

commands:
  report                                         print the general report
  seller <name>                                  print one seller's report
  product <name>                                 print one product's report
  monthly                                        print totals per month
  export                                         write every configured export
  add <product> <seller> <qty> <price> <date>    register a sale, then print the general report
`

func main() {
	// Load .env file for local runs
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, stop := cli.SignalContext()
	defer stop()

	store, err := cli.InitStore(ctx, logger, cfg)
	if err != nil {
		logger.Error("Failed to load sales", applog.FieldError, err)
		os.Exit(1)
	}

	app := &app{store: store, cfg: cfg, logger: logger, out: os.Stdout}
	if err := app.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Error("Command failed", applog.FieldError, err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

type app struct {
	store  sales.Store
	cfg    *config.Config
	logger *applog.Logger
	out    io.Writer
}

func (a *app) reports() *report.Service {
	return report.NewService(a.store, a.cfg.RankingLimit, a.logger)
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "report":
		return a.general(ctx)
	case "seller":
		if len(rest) != 1 {
			return errUsage
		}
		return a.seller(ctx, rest[0])
	case "product":
		if len(rest) != 1 {
			return errUsage
		}
		r, err := a.reports().Product(ctx, rest[0])
		if err != nil {
			return err
		}
		return report.WriteProductText(a.out, r)
	case "monthly":
		r, err := a.reports().Monthly(ctx)
		if err != nil {
			return err
		}
		return report.WriteMonthlyText(a.out, r)
	case "export":
		return a.export(ctx)
	case "add":
		if len(rest) != 5 {
			return errUsage
		}
		if err := a.add(ctx, rest); err != nil {
			return err
		}
		return a.general(ctx)
	default:
		return errUsage
	}
}

func (a *app) general(ctx context.Context) error {
	r, err := a.reports().General(ctx)
	if err != nil {
		return err
	}
	return report.WriteText(a.out, r)
}

func (a *app) seller(ctx context.Context, query string) error {
	svc := a.reports()
	name, err := svc.ResolveSeller(ctx, query)
	if err != nil {
		return err
	}
	r, err := svc.Seller(ctx, name)
	if err != nil {
		return err
	}
	return report.WriteSellerText(a.out, r)
}

func (a *app) add(ctx context.Context, args []string) error {
	qty, err := strconv.Atoi(args[2])
	if err != nil {
		return &core.ValidationError{Field: "quantity", Reason: "must be an integer"}
	}
	price, err := core.ParseDecimal(args[3])
	if err != nil {
		return err
	}
	sale, err := a.store.Register(ctx, core.SaleInput{
		Product:   args[0],
		Seller:    args[1],
		Quantity:  qty,
		UnitPrice: price,
		Date:      args[4],
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Venda #%d registrada: %s\n\n", sale.ID, core.FormatCurrency(sale.TotalValue))
	return nil
}

func (a *app) export(ctx context.Context) error {
	exportCfg, err := export.FromAppConfig(a.cfg)
	if err != nil {
		return err
	}
	set, err := export.NewFactory(a.logger).CreateSinks(ctx, exportCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := set.Cleanup(); err != nil {
			a.logger.Warn("Failed to close export sinks", applog.FieldError, err)
		}
	}()

	all, err := a.store.All(ctx)
	if err != nil {
		return fmt.Errorf("load sales: %w", err)
	}
	r, err := report.General(all, a.cfg.RankingLimit)
	if err != nil {
		return err
	}

	results, err := export.Run(ctx, set.Sinks, export.Snapshot{Sales: all, Report: r})
	if err != nil {
		return err
	}
	for _, res := range results {
		a.logger.Info("Report exported",
			applog.FieldOperation, applog.OpExport,
			applog.FieldFormat, res.Format.String(),
			applog.FieldPath, res.Location)
		fmt.Fprintf(a.out, "%s: %s\n", res.Format, res.Location)
	}
	return nil
}
