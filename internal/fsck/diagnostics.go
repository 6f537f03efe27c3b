package fsck

// Entry is a recorded finding together with its rendered line.
type Entry struct {
	Finding Finding
	Message string
}

// Diagnostics collects findings in first-occurrence order. Findings that
// render to a line already recorded are dropped.
type Diagnostics struct {
	seen    map[string]struct{}
	entries []Entry
}

// NewDiagnostics returns an empty collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{seen: make(map[string]struct{})}
}

// Add records f and reports whether it was new.
func (d *Diagnostics) Add(f Finding) bool {
	msg := f.Render()
	if _, ok := d.seen[msg]; ok {
		return false
	}
	d.seen[msg] = struct{}{}
	d.entries = append(d.entries, Entry{Finding: f, Message: msg})
	return true
}

// Len returns the number of unique findings.
func (d *Diagnostics) Len() int {
	return len(d.entries)
}

// Entries returns the recorded findings in order.
func (d *Diagnostics) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Messages returns the rendered lines in order.
func (d *Diagnostics) Messages() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Message
	}
	return out
}
