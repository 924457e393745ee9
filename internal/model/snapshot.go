package model

import "time"

// PortfolioSnapshot is one materialized month-end net-worth value for a
// user, pre-computed by the snapshot job so the history endpoint does
// not have to replay every transaction on each request.
type PortfolioSnapshot struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Label        string    `json:"label"` // "MM/YYYY" display label
	SnapshotDate time.Time `json:"snapshotDate"`
	Value        float64   `json:"value"`
	GeneratedAt  time.Time `json:"generatedAt"`
}
