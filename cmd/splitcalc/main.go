// Command splitcalc splits a shared expense among debtors and converts every
// share to the currency they settle in.
//
//	splitcalc -total 100.00 -from USD -to EUR -rate 0.92 -fee-bps 150 -debtors alice,bob,carol
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tripsync/money"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.LookupEnv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "splitcalc:", err)
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, cfg)
	if err := run(cfg, os.Stdout, logger); err != nil {
		level.Error(logger).Log("msg", "split failed", "kind", money.KindOf(err), "err", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, cfg Config) log.Logger {
	w = log.NewSyncWriter(w)
	var logger log.Logger
	if cfg.LogFormat == "json" {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}
	logger = level.NewFilter(logger, levelOption(cfg.LogLevel))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger
}

func levelOption(l string) level.Option {
	switch l {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// report is the JSON form of a split.
type report struct {
	Source      money.Currency `json:"source"`
	Target      money.Currency `json:"target"`
	Rate        string         `json:"rate"`
	Policy      string         `json:"policy"`
	Shares      []money.Share  `json:"shares"`
	SourceTotal int64          `json:"sourceTotal"`
	TargetTotal int64          `json:"targetTotal"`
}

func run(cfg Config, stdout io.Writer, logger log.Logger) error {
	total, err := money.ParseAmount(cfg.Source, cfg.Total)
	if err != nil {
		return err
	}

	rateValue := cfg.Rate
	if cfg.FeeBps != 0 {
		rateValue, err = money.DeriveFeeAdjustedRateScale(cfg.Rate, cfg.FeeBps, cfg.RateScale)
		if err != nil {
			return err
		}
		level.Debug(logger).Log("msg", "fee applied", "market_rate", cfg.Rate, "fee_bps", cfg.FeeBps, "rate", rateValue)
	}
	rate, err := money.ParseExchRate(cfg.Source, cfg.Target, rateValue)
	if err != nil {
		return err
	}

	splitter := NewLoggingSplitter(log.With(logger, "component", "split", "policy", cfg.Policy), newSplitter(cfg.Policy))
	shares, err := splitter.Split(total, cfg.Debtors, rate)
	if err != nil {
		return err
	}

	if cfg.Output == outputJSON {
		return writeJSON(stdout, cfg.Policy, rateValue, rate, shares)
	}
	return writeTable(stdout, rate, shares)
}

func writeJSON(w io.Writer, policy, rateValue string, rate money.ExchangeRate, shares []money.Share) error {
	source, target := money.Totals(shares)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report{
		Source:      rate.Base(),
		Target:      rate.Quote(),
		Rate:        rateValue,
		Policy:      policy,
		Shares:      shares,
		SourceTotal: source,
		TargetTotal: target,
	})
}

func writeTable(w io.Writer, rate money.ExchangeRate, shares []money.Share) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "DEBTOR\t%v\t%v\t\n", rate.Base(), rate.Quote())
	for _, s := range shares {
		if err := writeRow(tw, s.DebtorID, s.SourceMinorUnits, s.TargetMinorUnits, rate); err != nil {
			return err
		}
	}
	source, target := money.Totals(shares)
	if err := writeRow(tw, "TOTAL", source, target, rate); err != nil {
		return err
	}
	return tw.Flush()
}

func writeRow(w io.Writer, name string, source, target int64, rate money.ExchangeRate) error {
	src, err := money.FormatMinorUnits(source, rate.Base().Code())
	if err != nil {
		return err
	}
	tgt, err := money.FormatMinorUnits(target, rate.Quote().Code())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%v\t%v\t%v\t\n", name, src, tgt)
	return err
}
