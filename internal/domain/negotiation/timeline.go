package negotiation

import (
	"errors"
	"sort"

	vo "github.com/tradesbook-ie/tradesbook/internal/domain/negotiation/valueobjects"
)

// DefaultVisiblePerGroup is how many proposals a group shows before collapsing.
const DefaultVisiblePerGroup = 2

// SortNewestFirst orders proposals by proposedAt descending, breaking ties
// by the higher ID so the order is total.
func SortNewestFirst(proposals []*ScheduleProposal) {
	sort.SliceStable(proposals, func(i, j int) bool {
		a, b := proposals[i], proposals[j]
		if !a.proposedAt.Equal(b.proposedAt) {
			return a.proposedAt.After(b.proposedAt)
		}
		return a.id > b.id
	})
}

// Latest returns the most recently created proposal in the booking-wide list,
// or nil when there are none. The input order is irrelevant.
func Latest(proposals []*ScheduleProposal) *ScheduleProposal {
	var latest *ScheduleProposal
	for _, p := range proposals {
		if latest == nil ||
			p.proposedAt.After(latest.proposedAt) ||
			(p.proposedAt.Equal(latest.proposedAt) && p.id > latest.id) {
			latest = p
		}
	}
	return latest
}

// EnsureDeletable fails with ErrLatestProposal when target is the latest of
// all proposals of its booking. all must be the booking-wide list.
func EnsureDeletable(all []*ScheduleProposal, target *ScheduleProposal) error {
	if target == nil {
		return errors.New("proposal is required")
	}
	if latest := Latest(all); latest != nil && latest.id == target.id {
		return ErrLatestProposal
	}
	return nil
}

// Group is the display bucket for one installer's thread.
type Group struct {
	InstallerID uint
	Proposals   []*ScheduleProposal
	Visible     []*ScheduleProposal
	HiddenCount int
}

// GroupByInstaller buckets a newest-first list by installer. Groups are
// ordered by their newest proposal; each exposes at most visible items.
func GroupByInstaller(sorted []*ScheduleProposal, visible int) []Group {
	if visible <= 0 {
		visible = DefaultVisiblePerGroup
	}

	index := make(map[uint]int)
	var groups []Group
	for _, p := range sorted {
		i, ok := index[p.installerID]
		if !ok {
			i = len(groups)
			index[p.installerID] = i
			groups = append(groups, Group{InstallerID: p.installerID})
		}
		groups[i].Proposals = append(groups[i].Proposals, p)
	}

	for i := range groups {
		n := len(groups[i].Proposals)
		shown := min(n, visible)
		groups[i].Visible = groups[i].Proposals[:shown]
		groups[i].HiddenCount = n - shown
	}
	return groups
}

// PendingFor returns the pending proposals awaiting an answer from party.
func PendingFor(proposals []*ScheduleProposal, responder vo.Party) []*ScheduleProposal {
	var out []*ScheduleProposal
	for _, p := range proposals {
		if p.status.IsPending() && p.Responder() == responder {
			out = append(out, p)
		}
	}
	return out
}
