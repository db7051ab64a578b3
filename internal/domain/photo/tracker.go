package photo

import (
	"fmt"
	"sort"

	vo "github.com/tradesbook-ie/tradesbook/internal/domain/photo/valueobjects"
)

// Tracker is the capture state of one booking: its session cursor plus the
// per-TV progress rows.
type Tracker struct {
	session  *Session
	progress map[int]*Progress
}

// NewTracker assembles a tracker. Rows outside [0, tvCount) are ignored.
func NewTracker(session *Session, rows []*Progress) *Tracker {
	t := &Tracker{session: session, progress: make(map[int]*Progress, len(rows))}
	for _, r := range rows {
		if r.TVIndex() >= 0 && r.TVIndex() < session.TVCount() {
			t.progress[r.TVIndex()] = r
		}
	}
	return t
}

func (t *Tracker) Session() *Session {
	return t.session
}

// Rows returns the progress rows that exist, ordered by tvIndex.
func (t *Tracker) Rows() []*Progress {
	rows := make([]*Progress, 0, len(t.progress))
	for _, r := range t.progress {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TVIndex() < rows[j].TVIndex() })
	return rows
}

func (t *Tracker) Row(tvIndex int) *Progress {
	return t.progress[tvIndex]
}

func (t *Tracker) checkSlot(tvIndex int, pt vo.PhotoType) error {
	if tvIndex < 0 || tvIndex >= t.session.TVCount() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrTVIndexOutOfRange, tvIndex, t.session.TVCount())
	}
	if !pt.IsValid() {
		return fmt.Errorf("invalid photo type: %s", pt)
	}
	stage := t.session.Stage()
	if (pt == vo.TypeBefore && !stage.RequiresBefore()) || (pt == vo.TypeAfter && !stage.RequiresAfter()) {
		return fmt.Errorf("%s photos are not part of the %s workflow", pt, stage)
	}
	return nil
}

// Capture stores a photo for a TV and advances the cursor. The returned row
// must be upserted by (booking, tvIndex).
func (t *Tracker) Capture(tvIndex int, pt vo.PhotoType, url string, source vo.Source) (*Progress, error) {
	if err := t.checkSlot(tvIndex, pt); err != nil {
		return nil, err
	}
	if !source.AllowedFor(pt) {
		if pt == vo.TypeAfter {
			return nil, ErrAfterPhotoNotFromCamera
		}
		return nil, fmt.Errorf("invalid photo source: %s", source)
	}

	row, err := t.rowFor(tvIndex)
	if err != nil {
		return nil, err
	}
	if err := row.SetPhoto(pt, url, source); err != nil {
		return nil, err
	}
	t.session.advanceFrom(tvIndex, pt)
	return row, nil
}

// DeletePhoto clears one photo. The cursor does not move.
func (t *Tracker) DeletePhoto(tvIndex int, pt vo.PhotoType) (*Progress, error) {
	if err := t.checkSlot(tvIndex, pt); err != nil {
		return nil, err
	}
	row := t.progress[tvIndex]
	if row == nil || !row.Has(pt) {
		return nil, fmt.Errorf("no %s photo stored for tv %d", pt, tvIndex)
	}
	row.ClearPhoto(pt)
	return row, nil
}

func (t *Tracker) rowFor(tvIndex int) (*Progress, error) {
	if row, ok := t.progress[tvIndex]; ok {
		return row, nil
	}
	row, err := NewProgress(t.session.BookingID(), t.session.InstallerID(), tvIndex)
	if err != nil {
		return nil, err
	}
	t.progress[tvIndex] = row
	return row, nil
}

func (t *Tracker) count(pt vo.PhotoType) int {
	n := 0
	for i := 0; i < t.session.TVCount(); i++ {
		if row := t.progress[i]; row != nil && row.Has(pt) {
			n++
		}
	}
	return n
}

func (t *Tracker) BeforeCount() int { return t.count(vo.TypeBefore) }
func (t *Tracker) AfterCount() int  { return t.count(vo.TypeAfter) }

// IsReadyToComplete reports whether every TV has the photos stage requires.
func (t *Tracker) IsReadyToComplete(stage vo.WorkflowStage) bool {
	n := t.session.TVCount()
	if stage.RequiresBefore() && t.BeforeCount() != n {
		return false
	}
	if stage.RequiresAfter() && t.AfterCount() != n {
		return false
	}
	return stage.IsValid()
}

// Metrics summarises progress against the session's own stage.
func (t *Tracker) Metrics() Metrics {
	stage := t.session.Stage()
	captured := 0
	if stage.RequiresBefore() {
		captured += t.BeforeCount()
	}
	if stage.RequiresAfter() {
		captured += t.AfterCount()
	}
	return NewMetrics(captured, t.session.TVCount()*stage.PhotosPerTV(), t.IsReadyToComplete(stage))
}

// SubmittedPhoto is one TV's entry in a submission batch. Empty URLs keep
// whatever is already stored for that TV.
type SubmittedPhoto struct {
	TVIndex      int
	BeforeURL    string
	BeforeSource vo.Source
	AfterURL     string
	AfterSource  vo.Source
}

// ApplySubmission merges a batch into the tracker and requires the result to
// be complete for the session's stage. It returns the rows to persist. On
// error the tracker must be discarded.
func (t *Tracker) ApplySubmission(batch []SubmittedPhoto) ([]*Progress, error) {
	for _, p := range batch {
		if p.BeforeURL != "" {
			if _, err := t.Capture(p.TVIndex, vo.TypeBefore, p.BeforeURL, p.BeforeSource); err != nil {
				return nil, fmt.Errorf("tv %d before: %w", p.TVIndex, err)
			}
		}
		if p.AfterURL != "" {
			if _, err := t.Capture(p.TVIndex, vo.TypeAfter, p.AfterURL, p.AfterSource); err != nil {
				return nil, fmt.Errorf("tv %d after: %w", p.TVIndex, err)
			}
		}
	}
	if !t.IsReadyToComplete(t.session.Stage()) {
		return nil, ErrNotReadyToComplete
	}
	return t.Rows(), nil
}
