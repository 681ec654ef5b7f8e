package aggregates

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/platform/ctxutil"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

const tracerName = "github.com/yungbote/nutriplan-backend/internal/data/aggregates"

type BaseDeps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Runner TxRunner
	Hooks  Hooks
}

func (d BaseDeps) withDefaults() BaseDeps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB)
	}
	if d.Hooks == nil {
		d.Hooks = noopHooks{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return d
}

// executeWrite runs fn in one transaction and maps its failure onto an aggregate error code.
// Storage failures are logged here; every other code is an expected outcome.
func executeWrite(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	start := time.Now()
	deps = deps.withDefaults()
	op = strings.TrimSpace(op)
	if op == "" {
		op = "aggregate.write"
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	err := deps.Runner.InTx(ctx, fn)
	mapped := MapError(op, err)

	status := "success"
	if mapped != nil {
		status = aggregateErrorStatus(mapped)
		span.SetStatus(codes.Error, status)
		span.RecordError(mapped)
		switch domainagg.CodeOf(mapped) {
		case domainagg.CodeDuplicateName, domainagg.CodeInUse:
			deps.Hooks.IncConflict(op)
		case domainagg.CodeStorage:
			fields := append([]interface{}{"op", op, "error", err}, ctxutil.LogFields(ctx)...)
			deps.Log.Error("aggregate write failed", fields...)
		}
	}
	span.SetAttributes(attribute.String("aggregate.status", status))
	deps.Hooks.ObserveOperation(op, status, time.Since(start))
	return mapped
}

// rejectWrite records an operation that failed before a transaction was opened.
func rejectWrite(deps BaseDeps, op string, err error) error {
	deps = deps.withDefaults()
	mapped := MapError(op, err)
	deps.Hooks.ObserveOperation(op, aggregateErrorStatus(mapped), 0)
	return mapped
}

func aggregateErrorStatus(err error) string {
	if err == nil {
		return "success"
	}
	code := strings.TrimSpace(string(domainagg.CodeOf(err)))
	if code == "" {
		code = strings.TrimSpace(string(domainagg.CodeOf(MapError("aggregate.status", err))))
	}
	if code == "" {
		return "failure"
	}
	return code
}
