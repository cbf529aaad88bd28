package user

import (
	"context"
	"database/sql"

	"github.com/campuscloset/marketplace/model"
	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Create(ctx context.Context, user *model.UserEntity) (*model.UserEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const userColumns = "id, name, email, phone, password_hash, role, vendor_id, created_at, updated_at"

func (r *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := "SELECT " + userColumns + " FROM user WHERE "
	var arg interface{}
	switch {
	case filter.ID != 0:
		query += "id = ?"
		arg = filter.ID
	case filter.Email != "":
		query += "email = ?"
		arg = filter.Email
	case filter.Phone != "":
		query += "phone = ?"
		arg = filter.Phone
	default:
		return nil, nil
	}

	var user model.UserEntity
	if err := r.conn.QueryRowxContext(ctx, query, arg).StructScan(&user); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *SQL) Create(ctx context.Context, user *model.UserEntity) (*model.UserEntity, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO user (name, email, phone, password_hash, role) VALUES (?, ?, ?, ?, ?)",
		user.Name, user.Email, user.Phone, user.PasswordHash, user.Role)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	user.ID = uint64(id)
	return user, nil
}
