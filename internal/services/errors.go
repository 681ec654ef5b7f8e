package services

import (
	"context"
	"errors"

	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
)

// readError tags a failed list read as a storage error unless it already carries a code.
func readError(op string, err error) error {
	if err == nil {
		return nil
	}
	if domainagg.CodeOf(err) != "" {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return domainagg.NewError(domainagg.CodeStorage, op, "read cancelled", err)
	}
	return domainagg.Wrap(domainagg.CodeStorage, op, err)
}

func normalizeFanout(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
