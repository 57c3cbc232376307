package models

// Item is a single sampled household. A nil field is encoded as JSON null and means the source value was not a number.
type Item struct {
	Income    *float64 `json:"income"`
	PctChange *float64 `json:"pct_change"`
	NetChange *float64 `json:"net_change"`
}

// Sample preserves the order of the input rows.
type Sample []Item
