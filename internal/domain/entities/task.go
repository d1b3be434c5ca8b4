package entities

import "time"

// TaskStatus mirrors the task service's status field for the states this
// engine reads or writes. The task service owns the full lifecycle; the
// auction engine only flips a task between the biddable state and the
// auctioning/assigned states.

type TaskStatus string

const (
	// TaskStatusOpen is the single biddable state an auction can be
	// created against.
	TaskStatusOpen TaskStatus = "open"
	// TaskStatusAuctioning marks a task bound to an active auction.
	TaskStatusAuctioning TaskStatus = "auctioning"
	// TaskStatusAssigned marks a task handed to the winning bidder.
	TaskStatusAssigned TaskStatus = "assigned"
)

// Task is the external unit of work an auction sells fulfillment rights
// to. It is referenced, not owned: the record lives in the task service's
// table and this engine mutates only Status, UnderAuction, AssignedTo and
// AgreedPrice, always inside the same transaction as the auction change.
type Task struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	Status       TaskStatus `json:"status"`
	UnderAuction bool       `json:"under_auction"`
	AssignedTo   string     `json:"assigned_to,omitempty"`
	AgreedPrice  float64    `json:"agreed_price,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Biddable reports whether an auction may be created for the task.
func (t Task) Biddable() bool {
	return t.Status == TaskStatusOpen && !t.UnderAuction
}
