package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// firstResponseHours is the support target per priority, shown to admins.
var firstResponseHours = map[Priority]int{
	PriorityLow:    72,
	PriorityMedium: 24,
	PriorityHigh:   8,
	PriorityUrgent: 2,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	_, ok := firstResponseHours[p]
	return ok
}

func (p Priority) FirstResponseHours() int {
	if h, ok := firstResponseHours[p]; ok {
		return h
	}
	return firstResponseHours[PriorityLow]
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
