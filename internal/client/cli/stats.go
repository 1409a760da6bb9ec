package cli

import (
	"context"

	"github.com/dmitrijs2005/ufood/internal/metrics"
)

// Stats prints the API call metrics collected since start.
func (a *App) Stats(_ context.Context, _ []string) error {
	return metrics.WriteSummary(a.out, a.metrics)
}
