package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/opencompanybot/registration-service/internal/entities"
	"github.com/opencompanybot/registration-service/pkg/trm"
)

const uniqueViolation = "23505"

var orderColumns = []string{
	"order_id", "status", "amount", "currency", "network", "description",
	"payment_reference", "payment_address", "company_payload", "company_result",
	"created_at", "updated_at", "version",
}

type postgresRepo struct {
	db        *sqlx.DB
	txManager trm.Manager
	qb        sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB, txManager trm.Manager) *postgresRepo {
	return &postgresRepo{
		db:        db,
		txManager: txManager,
		qb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	payload, err := marshalPayload(o.CompanyPayload)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to marshal company payload: %w", err)
	}

	now := time.Now().UTC()
	o.Status = entities.StatusPending
	o.CreatedAt = now
	o.UpdatedAt = now
	o.Version = 1

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.OrderID, string(o.Status), o.Amount, o.Currency, o.Network,
			nullString(o.Description), nullString(o.PaymentReference),
			nullString(o.PaymentAddress), payload, nil,
			o.CreatedAt, o.UpdatedAt, o.Version,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return entities.Order{}, entities.ErrOrderExists
		}
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getBy(ctx, sq.Eq{"order_id": orderID})
}

func (r *postgresRepo) GetByPaymentReference(ctx context.Context, ref string) (entities.Order, error) {
	return r.getBy(ctx, sq.Eq{"payment_reference": ref})
}

func (r *postgresRepo) getBy(ctx context.Context, pred sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(pred).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(row)
}

// CompareAndUpdate is the sole mutation path. It re-reads the order inside a
// transaction, applies mutate, and writes back only if the stored version
// still equals expectedVersion. A concurrent writer surfaces as
// entities.ErrVersionConflict and the caller re-reads and retries.
func (r *postgresRepo) CompareAndUpdate(
	ctx context.Context,
	orderID string,
	expectedVersion int64,
	mutate func(*entities.Order) error,
) (entities.Order, error) {
	var updated entities.Order

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := r.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Version != expectedVersion {
			return entities.ErrVersionConflict
		}

		if err := mutate(&order); err != nil {
			return err
		}

		result, err := marshalResult(order.CompanyResult)
		if err != nil {
			return fmt.Errorf("failed to marshal company result: %w", err)
		}

		order.UpdatedAt = time.Now().UTC()
		order.Version = expectedVersion + 1

		query, args := r.qb.Update("orders").
			Set("status", string(order.Status)).
			Set("company_result", result).
			Set("updated_at", order.UpdatedAt).
			Set("version", order.Version).
			Where(sq.Eq{"order_id": orderID, "version": expectedVersion}).
			MustSql()

		res, err := r.execContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return entities.ErrVersionConflict
		}

		updated = order
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

func (r *postgresRepo) ListExpired(ctx context.Context, olderThan time.Time, limit int) ([]entities.Order, error) {
	return r.listInStatus(ctx, entities.StatusPending, "created_at", olderThan, limit)
}

func (r *postgresRepo) ListStuckPaid(ctx context.Context, olderThan time.Time, limit int) ([]entities.Order, error) {
	return r.listInStatus(ctx, entities.StatusPaid, "updated_at", olderThan, limit)
}

func (r *postgresRepo) listInStatus(
	ctx context.Context,
	status entities.Status,
	tsColumn string,
	olderThan time.Time,
	limit int,
) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": string(status)}).
		Where(sq.Lt{tsColumn: olderThan}).
		OrderBy(tsColumn + " ASC").
		Limit(uint64(limit)).
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select %s orders: %w", status, err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		order, err := OrderToEntity(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
