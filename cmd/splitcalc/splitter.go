package main

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tripsync/money"
)

// Splitter divides an expense among debtors and converts the shares.
type Splitter interface {
	Split(total money.Amount, debtorIDs []string, rate money.ExchangeRate) ([]money.Share, error)
}

// SplitterFunc adapts a function such as money.Split to a Splitter.
type SplitterFunc func(total money.Amount, debtorIDs []string, rate money.ExchangeRate) ([]money.Share, error)

func (f SplitterFunc) Split(total money.Amount, debtorIDs []string, rate money.ExchangeRate) ([]money.Share, error) {
	return f(total, debtorIDs, rate)
}

// newSplitter returns the splitter implementing the rounding policy.
func newSplitter(policy string) Splitter {
	if policy == policyReconciled {
		return SplitterFunc(money.SplitReconciled)
	}
	return SplitterFunc(money.Split)
}

// loggingSplitter decorates a Splitter with logging
type loggingSplitter struct {
	logger log.Logger
	next   Splitter
}

// NewLoggingSplitter returns a new instance of a logging Splitter
func NewLoggingSplitter(logger log.Logger, s Splitter) Splitter {
	return &loggingSplitter{
		next:   s,
		logger: logger,
	}
}

func (s *loggingSplitter) Split(total money.Amount, debtorIDs []string, rate money.ExchangeRate) (shares []money.Share, err error) {
	defer func(begin time.Time) {
		source, target := money.Totals(shares)
		logger := level.Info(s.logger)
		if err != nil {
			logger = level.Error(s.logger)
		}
		logger.Log(
			"method", "split",
			"total", total,
			"debtors", len(debtorIDs),
			"rate", rate,
			"source_total", source,
			"target_total", target,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Split(total, debtorIDs, rate)
}
