package aggregates

import "fmt"

// RequireNameAvailable converts an existing-name probe into a typed duplicate error.
func RequireNameAvailable(exists bool, entity, name string) error {
	if !exists {
		return nil
	}
	return DuplicateNameError(fmt.Sprintf("%s name %q already exists", entity, name))
}

// RequireUnreferenced blocks a delete while dependent links still point at the row.
func RequireUnreferenced(refs int64, entity string, id int64, referrer string) error {
	if refs <= 0 {
		return nil
	}
	return InUseError(fmt.Sprintf("%s %d is used by %d %s", entity, id, refs, referrer))
}

// FirstMissingID returns the first id in submission order that is absent from found.
func FirstMissingID(want []int64, found []int64) (int64, bool) {
	seen := make(map[int64]struct{}, len(found))
	for _, id := range found {
		seen[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := seen[id]; !ok {
			return id, true
		}
	}
	return 0, false
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
