package task

// Filter selects tasks for listing. The zero value matches every task.
type Filter struct {
	status Status
}

// All matches every task.
func All() Filter { return Filter{} }

// WithStatus matches tasks whose status equals s.
func WithStatus(s Status) Filter { return Filter{status: s} }

// Status returns the status the filter matches and whether it filters at all.
func (f Filter) Status() (Status, bool) {
	return f.status, f.status != ""
}

// Match reports whether t passes the filter.
func (f Filter) Match(t Task) bool {
	return f.status == "" || t.Status == f.status
}

func (f Filter) String() string {
	if f.status == "" {
		return "all"
	}
	return string(f.status)
}
