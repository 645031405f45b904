package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/pkg/database"
	"github.com/vendrahq/vendra/pkg/schedule"
	"github.com/vendrahq/vendra/pkg/services"
	"github.com/vendrahq/vendra/pkg/validation"
)

// DefaultExecTimeout bounds a single tool execution. Tools are DB-bound;
// anything slower should surface TIMEOUT to the model rather than stall
// the whole turn.
const DefaultExecTimeout = 3 * time.Second

// DefaultDeadlockRetries is how many times a tool whose transaction lost a
// deadlock or serialization race is rerun before the failure goes to the
// model.
const DefaultDeadlockRetries = 3

// retryBackoff is the base pause before a deadlock rerun; it grows
// linearly with the attempt number.
const retryBackoff = 50 * time.Millisecond

// Registry holds the full tool set and dispatches calls by name. It is
// built once at startup and safe for concurrent use afterwards.
type Registry struct {
	client       *ent.Client
	users        *services.UserService
	catalog      *services.CatalogService
	carts        *services.CartService
	orders       *services.OrderService
	reservations *services.ReservationService
	sessions     *services.SessionService
	tickets      *services.TicketService
	validator    *validation.Validator
	scheduler    *schedule.Scheduler

	tools map[string]*Tool
	names []string

	// ExecTimeout bounds each executor run. Zero disables the bound.
	ExecTimeout time.Duration

	// MaxRetries is the deadlock rerun cap per tool call. Zero disables
	// reruns.
	MaxRetries int
}

// NewRegistry wires the tool set over a database client. Schemas are
// compiled here; a malformed schema is a programming error and fails fast.
func NewRegistry(client *ent.Client) (*Registry, error) {
	r := &Registry{
		client:       client,
		users:        services.NewUserService(client),
		catalog:      services.NewCatalogService(client),
		carts:        services.NewCartService(client),
		orders:       services.NewOrderService(client),
		reservations: services.NewReservationService(client),
		sessions:     services.NewSessionService(client),
		tickets:      services.NewTicketService(client),
		validator:    validation.New(client),
		scheduler:    schedule.NewScheduler(client),
		tools:        make(map[string]*Tool),
		ExecTimeout:  DefaultExecTimeout,
		MaxRetries:   DefaultDeadlockRetries,
	}

	groups := [][]*Tool{
		r.catalogTools(),
		r.cartTools(),
		r.orderTools(),
		r.reservationTools(),
		r.supportTools(),
		r.validationTools(),
	}
	for _, group := range groups {
		for _, t := range group {
			if err := r.register(t); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func (r *Registry) register(t *Tool) error {
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("duplicate tool %q", t.Name)
	}
	schema, err := compileSchema(t.Name, t.Parameters)
	if err != nil {
		return fmt.Errorf("tool %q: %w", t.Name, err)
	}
	t.schema = schema
	r.tools[t.Name] = t
	r.names = append(r.names, t.Name)
	return nil
}

func compileSchema(name string, raw json.RawMessage) (*jsonschema.Schema, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	resource := name + ".json"
	if err := c.AddResource(resource, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := c.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// Catalog returns the declarations of every tool the tenant is eligible
// for, in registration order. This is what the turn hands to the model.
func (r *Registry) Catalog(ctx context.Context, tc *Context) ([]Declaration, error) {
	decls := make([]Declaration, 0, len(r.names))
	for _, name := range r.names {
		t := r.tools[name]
		if t.Eligible != nil {
			eligible, err := t.Eligible(ctx, tc)
			if err != nil {
				return nil, fmt.Errorf("eligibility for %q: %w", name, err)
			}
			if !eligible {
				continue
			}
		}
		decls = append(decls, Declaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		})
	}
	return decls, nil
}

// Execute runs one tool call. Every failure mode is folded into the result
// envelope so the model always gets something it can react to: unknown
// names, schema violations, ineligible tools, missing validator runs, and
// executor errors all come back as coded failures, never Go errors.
func (r *Registry) Execute(ctx context.Context, tc *Context, turn *TurnState, name string, args map[string]interface{}) *Result {
	t, found := r.tools[name]
	if !found {
		return fail(CodeUnknownTool, "no tool named %q", name)
	}

	// Ineligible tools are absent from the catalog, but the executor
	// guards again in case the model hallucinates the name.
	if t.Eligible != nil {
		eligible, err := t.Eligible(ctx, tc)
		if err != nil {
			return failErr(err)
		}
		if !eligible {
			return fail(CodeAddonInactive, "%s is not available for this business", name)
		}
	}

	if args == nil {
		args = map[string]interface{}{}
	}
	if err := t.schema.Validate(args); err != nil {
		return fail(CodeInvalidToolArgs, "invalid arguments for %s: %v", name, err)
	}

	if t.Requires != nil {
		if key := t.Requires(args); key != "" && !turn.has(key) {
			return fail(CodePreconditionMissing, "run %s before %s", validatorOf(key), name)
		}
	}

	res := r.runOnce(ctx, t, tc, args)
	for attempt := 1; attempt <= r.MaxRetries; attempt++ {
		if res.cause == nil || !database.IsRetryableTxError(res.cause) {
			break
		}
		slog.Warn("tool transaction lost a deadlock race, retrying",
			"tool", name, "attempt", attempt)
		select {
		case <-time.After(time.Duration(attempt) * retryBackoff):
		case <-ctx.Done():
			return res
		}
		res = r.runOnce(ctx, t, tc, args)
	}

	if res.Success && res.verdictValid && t.Records != nil && turn != nil {
		turn.mark(t.Records(args))
	}
	return res
}

// runOnce executes the tool under its own deadline. Mutating tools run a
// single transaction, so a failed run leaves nothing behind and is safe to
// repeat.
func (r *Registry) runOnce(ctx context.Context, t *Tool, tc *Context, args map[string]interface{}) *Result {
	if r.ExecTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.ExecTimeout)
		defer cancel()
	}
	return t.Run(ctx, tc, args)
}

// validatorOf strips the per-target suffix from a turn-state key, leaving
// the validator tool name for the error message.
func validatorOf(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i]
		}
	}
	return key
}
