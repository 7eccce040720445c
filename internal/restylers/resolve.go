package restylers

// ApplyOverrides reconciles the user's ordered override specs against the
// manifest list, producing the active restylers in the order they first
// became active.
//
// Manifest entries are inactive unless referenced. The first spec naming
// an entry activates it at that position with its field overrides applied;
// later specs naming the same entry reconfigure it in place, except a
// disable which removes it. User ordering controls the final order, not
// manifest ordering. Duplicate names within the manifest resolve
// first-entry-wins.
func ApplyOverrides(manifest []Restyler, overrides []Override) ([]Restyler, error) {
	byName := make(map[string]Restyler, len(manifest))
	for _, r := range manifest {
		if _, ok := byName[r.Name]; !ok {
			byName[r.Name] = r
		}
	}

	// Insertion-ordered map: activation order plus in-place updates by name.
	active := make(map[string]*Restyler, len(overrides))
	order := make([]string, 0, len(overrides))
	sawWildcard := false

	for _, o := range overrides {
		if err := o.validate(); err != nil {
			return nil, err
		}

		if o.Name == Wildcard {
			if sawWildcard {
				return nil, &InvalidRestylersError{Name: Wildcard, Reason: "at most one wildcard override is allowed"}
			}
			sawWildcard = true
			for _, r := range manifest {
				if _, ok := active[r.Name]; ok {
					continue
				}
				entry := byName[r.Name]
				active[r.Name] = &entry
				order = append(order, r.Name)
			}
			continue
		}

		canonical, ok := byName[o.Name]
		if !ok {
			return nil, &InvalidRestylersError{Name: o.Name, Reason: "unknown restyler"}
		}

		entry, isActive := active[o.Name]
		if !isActive {
			r := canonical
			entry = &r
			active[o.Name] = entry
			order = append(order, o.Name)
		}

		o.apply(entry)

		if o.disables() {
			delete(active, o.Name)
			order = removeName(order, o.Name)
		}
	}

	final := make([]Restyler, 0, len(order))
	for _, name := range order {
		final = append(final, *active[name])
	}
	return final, nil
}

func removeName(order []string, name string) []string {
	out := order[:0]
	for _, n := range order {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
