package signal

// Priority flags how urgently a signal should be surfaced.
type Priority string

const (
	PriorityUrgent Priority = "elevated-urgent"
	PriorityHot    Priority = "elevated-hot"
	PriorityWatch  Priority = "informational-watch"
	PriorityNormal Priority = "normal"
)

var priorityLabels = map[Priority]string{
	PriorityUrgent: "⚡ URGENT",
	PriorityHot:    "🔥 HOT",
	PriorityWatch:  "👀 WATCH",
	PriorityNormal: "",
}

// Label returns the badge text for a priority. Normal returns the empty
// string, which suppresses the badge entirely.
func (p Priority) Label() string {
	return priorityLabels[p]
}

// Valid reports whether p is one of the defined priority levels.
func (p Priority) Valid() bool {
	_, ok := priorityLabels[p]
	return ok
}

// Priorities returns every defined priority level in severity order.
func Priorities() []Priority {
	return []Priority{PriorityUrgent, PriorityHot, PriorityWatch, PriorityNormal}
}
