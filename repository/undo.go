package repository

// undo restores caller-owned entities after a rolled-back transaction, so
// keys and back-references assigned inside it do not outlive the rows.
type undo struct {
	restores []func()
}

// snapshot records the current value of v; run puts it back.
func snapshot[V any](u *undo, v *V) {
	if v == nil {
		return
	}
	saved := *v
	u.restores = append(u.restores, func() { *v = saved })
}

// run restores in reverse order so the oldest snapshot of a value wins.
func (u *undo) run() {
	for i := len(u.restores) - 1; i >= 0; i-- {
		u.restores[i]()
	}
	u.restores = nil
}
