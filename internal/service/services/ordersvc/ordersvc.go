package ordersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/productsapp/orders-svc/internal/dal/interfaces/iorderitemrepo"
	"github.com/productsapp/orders-svc/internal/dal/interfaces/iorderrepo"
	"github.com/productsapp/orders-svc/internal/dal/interfaces/ioutboxrepo"
	"github.com/productsapp/orders-svc/internal/dal/interfaces/iproductvalidator"
	"github.com/productsapp/orders-svc/internal/dal/postgres"
	"github.com/productsapp/orders-svc/internal/dal/uow"
	"github.com/productsapp/orders-svc/internal/service/errs"
	"github.com/productsapp/orders-svc/internal/service/models/event"
	"github.com/productsapp/orders-svc/internal/service/models/order"
	"github.com/productsapp/orders-svc/internal/service/models/orderitem"
	"github.com/productsapp/orders-svc/internal/service/models/outbox"
	"github.com/productsapp/orders-svc/internal/service/models/status"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
)

// OrderService is a service for managing orders. It orchestrates the creation
// workflow (remote validation, assembly, one atomic write) and owns the status
// lifecycle and listing contract.
type OrderService struct {
	pgClient   *postgres.Client
	validator  iproductvalidator.IProductValidator
	uowFactory func() unitOfWork
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
	OutboxRepository() ioutboxrepo.IOutboxRepository
}

func (s *OrderService) newUOW() unitOfWork {
	if s.uowFactory != nil {
		return s.uowFactory()
	}

	return uow.NewUnitOfWork(s.pgClient)
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// WithProductValidator sets the products service client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductValidator(validator iproductvalidator.IProductValidator) option {
	return func(s *OrderService) {
		s.validator = validator
	}
}

// errCheckLogs is what callers see when the creation workflow fails. The full
// failure detail goes to the operator logs, never across the service boundary.
func errCheckLogs() *errs.Error {
	return errs.New(http.StatusBadRequest, "Check logs")
}

// Create runs the order creation workflow: validate the referenced products
// against the products service, assemble totals and price snapshots, persist
// the order, its items and an order.created event in one transaction, then
// re-merge product names into the persisted rows for the response.
func (s *OrderService) Create(
	ctx context.Context,
	items []orderitem.OrderItem,
) (*order.Order, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.Create")
	defer span.End()

	products, err := s.validator.Validate(ctx, productIDs(items))
	if err != nil {
		slog.Error("Product validation failed", "error", err)

		return nil, errCheckLogs()
	}

	assembled, err := assemble(items, products)
	if err != nil {
		slog.Error("Order assembly failed", "error", err)

		return nil, errCheckLogs()
	}

	now := time.Now()
	ord := order.Order{
		ID:               uuid.NewString(),
		Status:           status.StatusPending,
		TotalAmountCents: assembled.TotalAmountCents,
		TotalItems:       assembled.TotalItems,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		slog.Error("Failed to begin order transaction", "error", err)

		return nil, errCheckLogs()
	}
	defer func() {
		if err := work.Rollback(ctx); err != nil {
			slog.Error("Failed to roll back order transaction", "error", err)
		}
	}()

	inserted, err := work.OrderRepository().Insert(ctx, ord)
	if err != nil {
		slog.Error("Failed to insert order", "error", err)

		return nil, errCheckLogs()
	}

	for i := range assembled.Items {
		assembled.Items[i].OrderID = inserted.ID
		assembled.Items[i].CreatedAt = now
		assembled.Items[i].UpdatedAt = now
	}

	insertedItems, err := work.OrderItemRepository().BulkInsert(ctx, assembled.Items)
	if err != nil {
		slog.Error("Failed to insert order items", "error", err, "order_id", inserted.ID)

		return nil, errCheckLogs()
	}

	if err := s.enqueueEvent(ctx, work, event.NewOrderCreated(inserted)); err != nil {
		slog.Error("Failed to enqueue order.created event", "error", err, "order_id", inserted.ID)

		return nil, errCheckLogs()
	}

	if err := work.Commit(ctx); err != nil {
		slog.Error("Failed to commit order transaction", "error", err, "order_id", inserted.ID)

		return nil, errCheckLogs()
	}

	// Persisted rows carry only the product id and price snapshot; names come
	// from the already fetched product list.
	inserted.OrderItems, err = mergeNames(insertedItems, products)
	if err != nil {
		slog.Error("Failed to merge product names", "error", err, "order_id", inserted.ID)

		return nil, errCheckLogs()
	}

	return &inserted, nil
}

// FindOne loads an order with its items and resolves current product names
// through the products service. Names track the catalog as it is now; prices
// stay the snapshots taken at creation. That asymmetry mirrors the original
// behavior and is kept on purpose, pending product-owner confirmation.
func (s *OrderService) FindOne(ctx context.Context, id string) (*order.Order, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.FindOne")
	defer span.End()

	work := s.newUOW()

	ord, items, err := s.loadOrder(ctx, work, id)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		ord.OrderItems = []orderitem.OrderItem{}

		return ord, nil
	}

	products, err := s.validator.Validate(ctx, productIDs(items))
	if err != nil {
		return nil, err
	}

	ord.OrderItems, err = mergeNames(items, products)
	if err != nil {
		return nil, err
	}

	return ord, nil
}

// FindAll returns one page of orders with listing metadata. Page and limit
// default to 1 and 10; a page past the end yields empty data, not an error.
func (s *OrderService) FindAll(
	ctx context.Context,
	query order.PageQuery,
) (*order.Page, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.FindAll")
	defer span.End()

	query = query.Normalized()

	work := s.newUOW()

	total, err := work.OrderRepository().Count(ctx, query.Status)
	if err != nil {
		return nil, err
	}

	rows, err := work.OrderRepository().Query(ctx, &order.QueryOrdersModel{
		Status: query.Status,
		Limit:  query.Limit,
		Offset: query.Offset(),
	})
	if err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []order.Order{}
	}

	return &order.Page{
		Data: rows,
		Meta: order.NewPageMeta(query.Page, query.Limit, total),
	}, nil
}

// ChangeStatus moves an order to a new status. Setting the status it already
// has is an idempotent no-op with no write. The transition graph is otherwise
// unrestricted; the likely intended lifecycle (PENDING→PAID→DELIVERED, with
// CANCELLED reachable from the non-terminal states) is deliberately not
// enforced until confirmed as a requirement.
func (s *OrderService) ChangeStatus(
	ctx context.Context,
	id string,
	newStatus status.Status,
) (*order.Order, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.ChangeStatus")
	defer span.End()

	work := s.newUOW()

	ord, items, err := s.loadOrder(ctx, work, id)
	if err != nil {
		return nil, err
	}

	if ord.Status == newStatus {
		ord.OrderItems = items

		return ord, nil
	}

	oldStatus := ord.Status

	if err := work.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin status transaction: %w", err)
	}
	defer func() {
		if err := work.Rollback(ctx); err != nil {
			slog.Error("Failed to roll back status transaction", "error", err)
		}
	}()

	updated, err := work.OrderRepository().UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NotFoundf("Order with id %s not found", id)
	}

	if err := s.enqueueEvent(ctx, work, event.NewOrderStatusChanged(*updated, oldStatus)); err != nil {
		return nil, fmt.Errorf("failed to enqueue order.status_changed event: %w", err)
	}

	if err := work.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit status transaction: %w", err)
	}

	updated.OrderItems = items

	return updated, nil
}

// loadOrder fetches an order and its items, with NotFound as a hard error.
func (s *OrderService) loadOrder(
	ctx context.Context,
	work unitOfWork,
	id string,
) (*order.Order, []orderitem.OrderItem, error) {
	ord, err := work.OrderRepository().GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if ord == nil {
		return nil, nil, errs.NotFoundf("Order with id %s not found", id)
	}

	items, err := work.OrderItemRepository().QueryByOrderIDs(ctx, []string{id})
	if err != nil {
		return nil, nil, err
	}

	return ord, items, nil
}

// enqueueEvent writes a domain event into the outbox inside the ambient
// transaction; the outbox worker delivers it to RabbitMQ later.
func (s *OrderService) enqueueEvent(
	ctx context.Context,
	work unitOfWork,
	e event.OrderEvent,
) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	queueName := viper.GetString("rabbitmq.events.queue")
	if queueName == "" {
		queueName = "orders.events"
	}

	maxRetries := viper.GetInt("rabbitmq.outbox.max_retries")
	if maxRetries == 0 {
		maxRetries = 5
	}

	now := time.Now()

	return work.OutboxRepository().Insert(ctx, outbox.Message{
		QueueName:   queueName,
		RoutingKey:  queueName,
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  maxRetries,
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	})
}
