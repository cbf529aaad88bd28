package model

type RiderEntity struct {
	ID     uint64 `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Phone  string `db:"phone" json:"phone"`
	Active bool   `db:"active" json:"active"`
}
