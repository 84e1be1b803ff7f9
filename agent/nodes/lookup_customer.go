package orchestratornode

import (
	"context"
	"time"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

func LookupCustomer(
	ctx context.Context,
	in GraphInput,
	directory contractx.CustomerDirectory,
	nowFn func() time.Time,
) (*GraphState, error) {
	started := nowFn()
	if err := checkpoint(ctx, NodeLookupCustomer); err != nil {
		return nil, err
	}

	customer, err := directory.Get(ctx, in.Query.CustomerID)
	if err != nil {
		return nil, err
	}

	return &GraphState{
		Query:    in.Query,
		Customer: customer,
		Region:   contractx.NormalizeRegion(customer.Region),
		Started:  started,
		Consent:  contractx.ConsentNotApplicable,
		emit:     in.Emit,
		now:      nowFn,
	}, nil
}
