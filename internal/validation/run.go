package validation

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/harvest-validator/internal/types"
)

// CheckOutcome is the result of running one record check. Exactly one of
// Report and Err is set.
type CheckOutcome struct {
	Rule     types.Rule
	Report   *types.ViolationReport
	Err      error
	Duration time.Duration
}

// MeasurementCheck is a record check bound to a Validator.
type MeasurementCheck struct {
	Rule types.Rule
	Run  func(*Validator) (types.ViolationReport, error)
}

// MeasurementChecks lists the record checks in reporting order.
var MeasurementChecks = []MeasurementCheck{
	{Rule: types.RuleMultipleMeasurements, Run: (*Validator).ValidateMultipleMeasurements},
	{Rule: types.RuleDryWeightSD, Run: (*Validator).ValidateDryWeightDeviations},
	{Rule: types.RuleWetWeight, Run: (*Validator).ValidateWeights},
	{Rule: types.RuleFarmDistance, Run: (*Validator).ValidateFarmDistances},
}

// RunMeasurementChecks runs every record check against the snapshot and
// returns one outcome per check in MeasurementChecks order. A failing check
// never stops the others. When parallel is true the checks run concurrently;
// they share no mutable state.
func (v *Validator) RunMeasurementChecks(ctx context.Context, parallel bool) []CheckOutcome {
	outcomes := make([]CheckOutcome, len(MeasurementChecks))

	run := func(ctx context.Context, i int) {
		check := MeasurementChecks[i]
		outcomes[i].Rule = check.Rule
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			return
		}

		start := time.Now()
		report, err := check.Run(v)
		outcomes[i].Duration = time.Since(start)
		if err != nil {
			outcomes[i].Err = err
			return
		}
		outcomes[i].Report = &report
	}

	if !parallel {
		for i := range MeasurementChecks {
			run(ctx, i)
		}
		return outcomes
	}

	// Each goroutine owns one slot of outcomes; errors are recorded there
	// rather than returned so the group never cancels siblings.
	g, gCtx := errgroup.WithContext(ctx)
	for i := range MeasurementChecks {
		g.Go(func() error {
			run(gCtx, i)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
