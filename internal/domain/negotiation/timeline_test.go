package negotiation

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/tradesbook-ie/tradesbook/internal/domain/negotiation/valueobjects"
)

var base = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

func proposalAt(t *testing.T, id, installerID uint, by vo.Party, offset time.Duration, status vo.ProposalStatus) *ScheduleProposal {
	t.Helper()
	p, err := ReconstructScheduleProposal(
		id, 42, installerID, by, 100,
		base.AddDate(0, 0, 7),
		mustSlot(t, "afternoon"),
		status, "", "",
		base.Add(offset), nil,
	)
	require.NoError(t, err)
	return p
}

func ids(ps []*ScheduleProposal) []uint {
	out := make([]uint, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID())
	}
	return out
}

func TestSortNewestFirst_TieBreaksOnID(t *testing.T) {
	ps := []*ScheduleProposal{
		proposalAt(t, 1, 7, vo.PartyCustomer, 0, vo.StatusRejected),
		proposalAt(t, 3, 7, vo.PartyInstaller, time.Hour, vo.StatusPending),
		proposalAt(t, 2, 7, vo.PartyCustomer, time.Hour, vo.StatusCounterProposed),
	}
	SortNewestFirst(ps)
	assert.Equal(t, []uint{3, 2, 1}, ids(ps))
}

func TestLatest(t *testing.T) {
	assert.Nil(t, Latest(nil))

	ps := []*ScheduleProposal{
		proposalAt(t, 4, 8, vo.PartyInstaller, 3*time.Hour, vo.StatusPending),
		proposalAt(t, 1, 7, vo.PartyCustomer, 0, vo.StatusRejected),
		proposalAt(t, 2, 7, vo.PartyInstaller, time.Hour, vo.StatusCounterProposed),
	}
	assert.Equal(t, uint(4), Latest(ps).ID())
}

func TestEnsureDeletable_LatestIsProtected(t *testing.T) {
	ps := []*ScheduleProposal{
		proposalAt(t, 1, 7, vo.PartyCustomer, 0, vo.StatusRejected),
		proposalAt(t, 2, 7, vo.PartyInstaller, time.Hour, vo.StatusCounterProposed),
		proposalAt(t, 3, 7, vo.PartyCustomer, 2*time.Hour, vo.StatusPending),
	}

	err := EnsureDeletable(ps, ps[2])
	assert.True(t, errors.Is(err, ErrLatestProposal))

	assert.NoError(t, EnsureDeletable(ps, ps[0]))
	assert.NoError(t, EnsureDeletable(ps, ps[1]))
}

// The latest proposal is judged over the booking-wide list. The newest entry
// of a smaller installer group is still deletable when another group holds
// the overall newest proposal.
func TestEnsureDeletable_GlobalNotPerGroup(t *testing.T) {
	ps := []*ScheduleProposal{
		proposalAt(t, 1, 7, vo.PartyInstaller, 0, vo.StatusRejected),
		proposalAt(t, 2, 7, vo.PartyCustomer, time.Hour, vo.StatusRejected),
		proposalAt(t, 3, 8, vo.PartyInstaller, 2*time.Hour, vo.StatusPending),
	}
	SortNewestFirst(ps)
	groups := GroupByInstaller(ps, DefaultVisiblePerGroup)
	require.Len(t, groups, 2)

	newestOfGroup7 := groups[1].Proposals[0]
	assert.Equal(t, uint(2), newestOfGroup7.ID())
	assert.NoError(t, EnsureDeletable(ps, newestOfGroup7))
	assert.ErrorIs(t, EnsureDeletable(ps, groups[0].Proposals[0]), ErrLatestProposal)
}

func TestEnsureDeletable_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 50; round++ {
		n := rng.Intn(8) + 1
		ps := make([]*ScheduleProposal, 0, n)
		for i := 0; i < n; i++ {
			offset := time.Duration(rng.Intn(4)) * time.Minute
			ps = append(ps, proposalAt(t, uint(i+1), uint(rng.Intn(3)+1), vo.PartyCustomer, offset, vo.StatusRejected))
		}
		rng.Shuffle(len(ps), func(i, j int) { ps[i], ps[j] = ps[j], ps[i] })

		rejected := 0
		for _, p := range ps {
			if EnsureDeletable(ps, p) != nil {
				rejected++
				sorted := append([]*ScheduleProposal(nil), ps...)
				SortNewestFirst(sorted)
				assert.Equal(t, sorted[0].ID(), p.ID())
			}
		}
		assert.Equal(t, 1, rejected)
	}
}

func TestGroupByInstaller(t *testing.T) {
	ps := []*ScheduleProposal{
		proposalAt(t, 5, 7, vo.PartyInstaller, 5*time.Hour, vo.StatusPending),
		proposalAt(t, 4, 8, vo.PartyInstaller, 4*time.Hour, vo.StatusRejected),
		proposalAt(t, 3, 7, vo.PartyCustomer, 3*time.Hour, vo.StatusCounterProposed),
		proposalAt(t, 2, 7, vo.PartyInstaller, 2*time.Hour, vo.StatusCounterProposed),
		proposalAt(t, 1, 7, vo.PartyCustomer, time.Hour, vo.StatusRejected),
	}

	groups := GroupByInstaller(ps, 0)
	require.Len(t, groups, 2)

	assert.Equal(t, uint(7), groups[0].InstallerID)
	assert.Equal(t, []uint{5, 3, 2, 1}, ids(groups[0].Proposals))
	assert.Equal(t, []uint{5, 3}, ids(groups[0].Visible))
	assert.Equal(t, 2, groups[0].HiddenCount)

	assert.Equal(t, uint(8), groups[1].InstallerID)
	assert.Equal(t, []uint{4}, ids(groups[1].Visible))
	assert.Zero(t, groups[1].HiddenCount)

	assert.Empty(t, GroupByInstaller(nil, 2))
}

func TestPendingFor_EachHasOneResponder(t *testing.T) {
	ps := []*ScheduleProposal{
		proposalAt(t, 1, 7, vo.PartyCustomer, 0, vo.StatusPending),
		proposalAt(t, 2, 7, vo.PartyInstaller, time.Hour, vo.StatusPending),
		proposalAt(t, 3, 7, vo.PartyInstaller, 2*time.Hour, vo.StatusRejected),
	}

	forInstaller := PendingFor(ps, vo.PartyInstaller)
	forCustomer := PendingFor(ps, vo.PartyCustomer)

	assert.Equal(t, []uint{1}, ids(forInstaller))
	assert.Equal(t, []uint{2}, ids(forCustomer))
	assert.Len(t, append(forInstaller, forCustomer...), 2)
}
