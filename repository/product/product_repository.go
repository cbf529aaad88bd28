package product

import (
	"context"

	"github.com/campuscloset/marketplace/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	GetCheckoutProductsTx(ctx context.Context, tx *sqlx.Tx, productIDs []uint64) (map[uint64]model.CheckoutProduct, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const getCheckoutProducts = `SELECT id, vendor_id, name, price, active FROM product WHERE id IN (?)`

// GetCheckoutProductsTx loads the products a cart references inside the
// materialization transaction, so the prices frozen onto line items are the
// ones current at purchase time.
func (r *SQL) GetCheckoutProductsTx(ctx context.Context, tx *sqlx.Tx, productIDs []uint64) (map[uint64]model.CheckoutProduct, error) {
	query, args, err := sqlx.In(getCheckoutProducts, productIDs)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryxContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[uint64]model.CheckoutProduct, len(productIDs))
	for rows.Next() {
		var p model.CheckoutProduct
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		products[p.ID] = p
	}
	return products, rows.Err()
}
