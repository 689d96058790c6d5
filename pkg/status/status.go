// Package status provides a small tagged status value with exactly three
// cases: active, inactive, and pending with a free-form detail string.
package status

type kind int

const (
	kindActive kind = iota
	kindInactive
	kindPending
)

// Status is one of three cases at a time. The zero value is the active case.
// Values are immutable once constructed; use the constructors below.
type Status struct {
	kind   kind
	detail string
}

// Active returns the active status.
func Active() Status {
	return Status{kind: kindActive}
}

// Inactive returns the inactive status.
func Inactive() Status {
	return Status{kind: kindInactive}
}

// Pending returns a pending status carrying a detail string, typically the
// reason or follow-up hint. The detail may be empty.
func Pending(detail string) Status {
	return Status{kind: kindPending, detail: detail}
}

// Label returns the fixed text label for the status: "active", "inactive"
// or "pending". The pending detail never influences the label.
func (s Status) Label() string {
	switch s.kind {
	case kindInactive:
		return "inactive"
	case kindPending:
		return "pending"
	default:
		return "active"
	}
}

// Detail returns the carried detail and true for a pending status,
// or empty string and false for the other cases.
func (s Status) Detail() (string, bool) {
	if s.kind != kindPending {
		return "", false
	}
	return s.detail, true
}
