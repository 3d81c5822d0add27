package domain

type EntityKind string

const (
	EntityReport EntityKind = "report"
	EntityAlert  EntityKind = "alert"

	// EntityFeedback never appears in change events; it exists for the
	// activity-window queries behind the cooldown checks.
	EntityFeedback EntityKind = "feedback"
)

type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

// ChangeEvent announces one successful mutation. Events are delivered to
// the subscribers registered at publish time and then discarded; there is
// no buffering or replay.
type ChangeEvent struct {
	Entity EntityKind `json:"entity"`
	Change ChangeKind `json:"change"`
	Report *Report    `json:"report,omitempty"`
	Alert  *Alert     `json:"alert,omitempty"`
}

func ReportEvent(change ChangeKind, r *Report) ChangeEvent {
	return ChangeEvent{Entity: EntityReport, Change: change, Report: r}
}

func AlertEvent(change ChangeKind, a *Alert) ChangeEvent {
	return ChangeEvent{Entity: EntityAlert, Change: change, Alert: a}
}
