package instantanswer

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/instantanswer/mock_querier.go -package=mock_instantanswer

// Querier issues one Instant Answer query per call.
type Querier interface {
	Query(ctx context.Context, q string, opts QueryOptions) (Response, error)
}
