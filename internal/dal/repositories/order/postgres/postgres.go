package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/productsapp/orders-svc/internal/service/models/order"
	"github.com/productsapp/orders-svc/internal/service/models/orderitem"
	"github.com/productsapp/orders-svc/internal/service/models/status"
)

// OrderDal represents the order data access layer model.
type OrderDal struct {
	Id               string    `db:"id"`
	Status           string    `db:"status"`
	TotalAmountCents int64     `db:"total_amount_cents"`
	TotalItems       int       `db:"total_items"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// ToModel converts OrderDal to the service layer Order model.
func (o *OrderDal) ToModel() (*order.Order, error) {
	st, err := status.ParseStatus(o.Status)
	if err != nil {
		return nil, err
	}

	return &order.Order{
		ID:               o.Id,
		Status:           st,
		TotalAmountCents: o.TotalAmountCents,
		TotalItems:       o.TotalItems,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		OrderItems:       []orderitem.OrderItem{}, // Will be populated separately
	}, nil
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn GenericConn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var orderColumns = []string{
	"id",
	"status",
	"total_amount_cents",
	"total_items",
	"created_at",
	"updated_at",
}

// Insert persists a single order row and returns it with database-assigned
// fields populated. The id is generated here when the caller left it empty.
func (r *PostgresOrderRepository) Insert(
	ctx context.Context,
	o order.Order,
) (order.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	sql, args, err := r.sb.
		Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID,
			o.Status.String(),
			o.TotalAmountCents,
			o.TotalItems,
			pgtype.Timestamptz{Time: o.CreatedAt, Valid: true},
			pgtype.Timestamptz{Time: o.UpdatedAt, Valid: true},
		).
		Suffix("RETURNING " + columnList(orderColumns)).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	inserted, err := r.scanOrder(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	return *inserted, nil
}

// GetByID retrieves a single order by id; it returns nil when no row matches.
func (r *PostgresOrderRepository) GetByID(
	ctx context.Context,
	id string,
) (*order.Order, error) {
	sql, args, err := r.sb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	ord, err := r.scanOrder(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return ord, nil
}

// Query retrieves order rows based on filter criteria, newest first.
func (r *PostgresOrderRepository) Query(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	query := r.sb.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC", "id")

	if filter.Status != nil {
		query = query.Where(sq.Eq{"status": filter.Status.String()})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		ord, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ord)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Count returns the number of orders matching the status filter.
func (r *PostgresOrderRepository) Count(
	ctx context.Context,
	st *status.Status,
) (int, error) {
	query := r.sb.Select("COUNT(*)").From("orders")
	if st != nil {
		query = query.Where(sq.Eq{"status": st.String()})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

// UpdateStatus persists the new status and returns the updated row, or nil
// when the order does not exist.
func (r *PostgresOrderRepository) UpdateStatus(
	ctx context.Context,
	id string,
	st status.Status,
) (*order.Order, error) {
	sql, args, err := r.sb.
		Update("orders").
		Set("status", st.String()).
		Set("updated_at", pgtype.Timestamptz{Time: time.Now(), Valid: true}).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList(orderColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	ord, err := r.scanOrder(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return ord, nil
}

func (r *PostgresOrderRepository) scanOrder(row pgx.Row) (*order.Order, error) {
	var dal OrderDal
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&dal.Id,
		&dal.Status,
		&dal.TotalAmountCents,
		&dal.TotalItems,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	dal.CreatedAt = createdAt.Time
	dal.UpdatedAt = updatedAt.Time

	model, err := dal.ToModel()
	if err != nil {
		return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
	}

	return model, nil
}

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}
