package batch

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nordkapp-group/categorize-cli/internal/categorize"
)

// Record pairs an input company with its categorization result.
type Record struct {
	Company Company
	Result  categorize.Result
}

// CategorizeFunc produces a result for one company name. It must be safe for
// concurrent use and must not fail; lookup problems surface as Not Found
// results.
type CategorizeFunc func(ctx context.Context, name string) categorize.Result

// Process categorizes companies concurrently over a bounded pool. Results
// come back in input order regardless of completion order, and a single
// company never aborts the batch. Process stops early only when the context
// is cancelled, returning the records completed so far.
func Process(ctx context.Context, companies []Company, concurrency int, fn CategorizeFunc) []Record {
	if concurrency < 1 {
		concurrency = 1
	}

	records := make([]Record, len(companies))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, company := range companies {
		i, company := i, company
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			result := fn(gctx, company.Name)
			records[i] = Record{Company: company, Result: result}

			n := done.Add(1)
			log := zap.L().With(
				zap.Int64("done", n),
				zap.Int("total", len(companies)),
				zap.String("company", company.Name),
				zap.String("category", result.Category),
			)
			if result.SelectedCompany != "" && result.SelectedCompany != company.Name {
				log = log.With(zap.String("selected", result.SelectedCompany))
			}
			log.Info("categorized")
			return nil
		})
	}

	_ = g.Wait()

	if ctx.Err() != nil {
		// Drop slots that never ran.
		completed := records[:0]
		for _, r := range records {
			if r.Company.Name != "" {
				completed = append(completed, r)
			}
		}
		return completed
	}
	return records
}
