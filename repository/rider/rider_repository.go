package rider

import (
	"context"
	"database/sql"

	"github.com/campuscloset/marketplace/model"
	"github.com/jmoiron/sqlx"
)

type RiderRepository interface {
	GetByID(ctx context.Context, riderID uint64) (*model.RiderEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewRiderRepository(conn *sqlx.DB) RiderRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetByID(ctx context.Context, riderID uint64) (*model.RiderEntity, error) {
	var rider model.RiderEntity
	row := r.conn.QueryRowxContext(ctx, "SELECT id, name, phone, active FROM rider WHERE id = ?", riderID)
	if err := row.StructScan(&rider); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rider, nil
}
