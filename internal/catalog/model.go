package catalog

import "time"

type Console struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Hour is one selectable session length. The catalog is kept in ascending
// hour_value order but entries need not be contiguous (0.5, 1, 1.5, 3, ...).
type Hour struct {
	ID        int     `db:"id" json:"id"`
	HourValue float64 `db:"hour_value" json:"hour_value"`
	Label     string  `db:"label" json:"label"`
	Status    string  `db:"status" json:"status"`
}

type PlayerCount struct {
	ID          int    `db:"id" json:"id"`
	PlayerCount int    `db:"player_count" json:"player_count"`
	Status      string `db:"status" json:"status"`
}

// Rate prices one console + player-count combination: Price rupees buy Hours
// hours, which pro-rates linearly for any actual duration.
type Rate struct {
	ID      int     `db:"id" json:"id"`
	Console string  `db:"console" json:"console"`
	Players int     `db:"players" json:"players"`
	Hours   float64 `db:"hours" json:"hours"`
	Price   float64 `db:"price" json:"price"`
	Status  string  `db:"status" json:"status"`
}

type MenuItem struct {
	ID       int     `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Category string  `db:"category" json:"category"`
	Price    float64 `db:"price" json:"price"`
	Status   string  `db:"status" json:"status"`
}

type CreateConsoleRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status"`
}

type CreateHourRequest struct {
	HourValue float64 `json:"hour_value" binding:"required,gt=0"`
	Label     string  `json:"label" binding:"required"`
}

type CreatePlayerCountRequest struct {
	PlayerCount int `json:"player_count" binding:"required,min=1"`
}

type CreateRateRequest struct {
	Console string  `json:"console" binding:"required"`
	Players int     `json:"players" binding:"required,min=1"`
	Hours   float64 `json:"hours" binding:"required,gt=0"`
	Price   float64 `json:"price" binding:"required,gt=0"`
}

type CreateMenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}
