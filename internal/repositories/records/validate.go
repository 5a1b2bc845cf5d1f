package records

import (
	"sort"
	"strings"

	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
)

func validate(record *Record) error {
	if record == nil {
		return dnderr.InvalidArgument("record cannot be nil")
	}
	if strings.TrimSpace(record.Name) == "" {
		return dnderr.InvalidArgument("record name is required")
	}
	return nil
}

func notFound(name string) error {
	return dnderr.NotFoundf("record '%s' not found", name).
		WithMeta("name", name)
}

// sortBySlot orders records by party slot, then name
func sortBySlot(recs []*Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Slot != recs[j].Slot {
			return recs[i].Slot < recs[j].Slot
		}
		return recs[i].Name < recs[j].Name
	})
}
