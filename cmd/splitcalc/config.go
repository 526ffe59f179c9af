package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	policyIndependent = "independent"
	policyReconciled  = "reconciled"

	outputTable = "table"
	outputJSON  = "json"
)

// Config holds the settings of a single split calculation.
type Config struct {
	LogLevel  string
	LogFormat string
	RateScale int
	Policy    string
	Output    string

	Total   string
	Source  string
	Target  string
	Rate    string
	FeeBps  int64
	Debtors []string
}

// lookupFunc is the signature of os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// parseConfig reads defaults from the environment and overrides them with
// command line flags.
func parseConfig(args []string, lookup lookupFunc, stderr io.Writer) (Config, error) {
	rateScale, err := strconv.Atoi(getEnv(lookup, "SPLITCALC_RATE_SCALE", "6"))
	if err != nil {
		return Config{}, fmt.Errorf("SPLITCALC_RATE_SCALE: %w", err)
	}

	cfg := Config{}
	var debtors string
	fs := flag.NewFlagSet("splitcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.LogLevel, "log-level", getEnv(lookup, "SPLITCALC_LOG_LEVEL", "info"), "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", getEnv(lookup, "SPLITCALC_LOG_FORMAT", "logfmt"), "log format: logfmt or json")
	fs.IntVar(&cfg.RateScale, "rate-scale", rateScale, "digits after the decimal point of fee-adjusted rates")
	fs.StringVar(&cfg.Policy, "policy", getEnv(lookup, "SPLITCALC_POLICY", policyIndependent), "rounding policy: independent or reconciled")
	fs.StringVar(&cfg.Output, "output", getEnv(lookup, "SPLITCALC_OUTPUT", outputTable), "output format: table or json")
	fs.StringVar(&cfg.Total, "total", "", "expense total in major units of the source currency, e.g. 100.00")
	fs.StringVar(&cfg.Source, "from", "", "source currency code, e.g. USD")
	fs.StringVar(&cfg.Target, "to", "", "target currency code, e.g. EUR")
	fs.StringVar(&cfg.Rate, "rate", "", "market rate: units of the target currency per unit of the source currency")
	fs.Int64Var(&cfg.FeeBps, "fee-bps", 0, "fee in basis points added to the market rate")
	fs.StringVar(&debtors, "debtors", "", "comma-separated debtor IDs in remainder priority order")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Debtors = splitList(debtors)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "logfmt", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	switch c.Policy {
	case policyIndependent, policyReconciled:
	default:
		return fmt.Errorf("unknown policy %q", c.Policy)
	}
	switch c.Output {
	case outputTable, outputJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	if c.Total == "" {
		return fmt.Errorf("-total is required")
	}
	if c.Source == "" || c.Target == "" {
		return fmt.Errorf("-from and -to are required")
	}
	if c.Rate == "" {
		return fmt.Errorf("-rate is required")
	}
	return nil
}

func getEnv(lookup lookupFunc, key, defaultVal string) string {
	if value, exists := lookup(key); exists {
		return value
	}
	return defaultVal
}

// splitList splits a comma-separated list, dropping blank items.
func splitList(s string) []string {
	var res []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}
