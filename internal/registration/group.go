package registration

import (
	"cmp"
	"slices"
)

// IndividualsLabel names the bucket of registrants without a team.
const IndividualsLabel = "Individual Participants"

// Group is one team bucket of a roster. TeamID is nil for the individuals bucket.
type Group struct {
	TeamID   *int64
	TeamName string
	Members  []Registration
}

// GroupByTeam buckets registrations by team. Members keep their input order;
// groups are ordered by team name with the individuals bucket last.
func GroupByTeam(regs []Registration) []Group {
	groups := []Group{}
	index := make(map[int64]int)
	individuals := -1

	for _, reg := range regs {
		if reg.TeamID == nil {
			if individuals < 0 {
				individuals = len(groups)
				groups = append(groups, Group{TeamName: IndividualsLabel})
			}
			groups[individuals].Members = append(groups[individuals].Members, reg)
			continue
		}

		i, ok := index[*reg.TeamID]
		if !ok {
			name := IndividualsLabel
			if reg.TeamName != nil {
				name = *reg.TeamName
			}
			id := *reg.TeamID
			i = len(groups)
			index[id] = i
			groups = append(groups, Group{TeamID: &id, TeamName: name})
		}
		groups[i].Members = append(groups[i].Members, reg)
	}

	slices.SortStableFunc(groups, func(a, b Group) int {
		switch {
		case a.TeamID == nil && b.TeamID == nil:
			return 0
		case a.TeamID == nil:
			return 1
		case b.TeamID == nil:
			return -1
		}
		return cmp.Compare(a.TeamName, b.TeamName)
	})

	return groups
}
