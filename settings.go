package insta

import (
	"sync/atomic"

	"github.com/c-spencer/insta/redaction"
)

// DefaultSnapshotPath is the snapshot directory of a fresh Settings
// handle. Relative paths are resolved against the test's location by the
// snapshot I/O layer.
const DefaultSnapshotPath = "snapshots"

// settingsData is the immutable bundle of tunables behind a Settings
// handle. Once its reference count exceeds one it is never written
// again; every mutation goes through mut, which clones a shared bundle
// first.
type settingsData struct {
	refs         atomic.Int64
	sortMaps     bool
	snapshotPath string
	redactions   []Rule
}

// clone returns a uniquely-owned copy with a reference count of one.
func (d *settingsData) clone() *settingsData {
	fresh := &settingsData{
		sortMaps:     d.sortMaps,
		snapshotPath: d.snapshotPath,
		redactions:   append([]Rule(nil), d.redactions...),
	}
	fresh.refs.Store(1)
	return fresh
}

// defaultData is the process-wide default bundle. Its count starts at
// one (the package's own reference) so handles referencing it always see
// it as shared and copy before writing.
var defaultData = newDefaultData()

func newDefaultData() *settingsData {
	d := &settingsData{snapshotPath: DefaultSnapshotPath}
	d.refs.Store(1)
	return d
}

// Settings configures how snapshot assertions operate at test time: map
// sorting, the snapshot directory, and the redaction rules applied to
// captured values.
//
// A Settings is a handle over shared immutable storage. Share a handle
// with Clone, which is O(1); the storage is deep-copied only on the
// first mutation after a share, so sibling handles are never affected
// by a mutation. Read methods take a value receiver, mutating methods a
// pointer receiver.
type Settings struct {
	inner *settingsData
}

// New returns a handle referencing the process-wide default settings:
// map sorting off, snapshot path "snapshots", no redactions. No new
// storage is allocated.
func New() Settings {
	defaultData.refs.Add(1)
	return Settings{inner: defaultData}
}

// Clone returns a new handle sharing the receiver's storage. The copy is
// O(1); storage is duplicated only when one of the handles is later
// mutated.
func (s Settings) Clone() Settings {
	d := s.data()
	d.refs.Add(1)
	return Settings{inner: d}
}

// data returns the underlying bundle, treating the zero handle as a view
// of the defaults.
func (s Settings) data() *settingsData {
	if s.inner == nil {
		return defaultData
	}
	return s.inner
}

// mut returns a uniquely-owned bundle for writing, cloning first if the
// current one is shared.
func (s *Settings) mut() *settingsData {
	if s.inner == nil {
		s.inner = defaultData.clone()
		return s.inner
	}
	if s.inner.refs.Load() > 1 {
		fresh := s.inner.clone()
		s.inner.refs.Add(-1)
		s.inner = fresh
	}
	return s.inner
}

// release drops the handle's reference when a stored handle is
// discarded, so surviving handles can mutate in place again.
func (s Settings) release() {
	if s.inner != nil {
		s.inner.refs.Add(-1)
	}
}

// SetSortMaps controls whether map-like structures are sorted before
// serialization and comparison. The default is false.
func (s *Settings) SetSortMaps(value bool) {
	s.mut().sortMaps = value
}

// SortMaps returns the current value of the map-sorting flag.
func (s Settings) SortMaps() bool {
	return s.data().sortMaps
}

// SetSnapshotPath sets the snapshot directory. If not absolute it is
// relative to where the test is located.
func (s *Settings) SetSnapshotPath(path string) {
	s.mut().snapshotPath = path
}

// SnapshotPath returns the snapshot directory.
func (s Settings) SnapshotPath() string {
	return s.data().snapshotPath
}

// Equal reports whether two handles expose the same tunables,
// independent of whether they share storage. Redaction rules compare by
// selector pattern and behavior kind; callback identity is not
// comparable in Go and does not participate.
func (s Settings) Equal(other Settings) bool {
	a, b := s.data(), other.data()
	if a == b {
		return true
	}
	if a.sortMaps != b.sortMaps || a.snapshotPath != b.snapshotPath {
		return false
	}
	if len(a.redactions) != len(b.redactions) {
		return false
	}
	for i := range a.redactions {
		ra, rb := a.redactions[i], b.redactions[i]
		if ra.Selector.Pattern() != rb.Selector.Pattern() {
			return false
		}
		if ra.Redaction.Kind() != rb.Redaction.Kind() {
			return false
		}
	}
	return true
}

// Rule pairs a parsed selector with the redaction applied where it
// matches. Rules are evaluated in registration order; a later rule sees
// the tree already transformed by earlier rules.
type Rule struct {
	Selector  *redaction.Selector
	Redaction *redaction.Redaction
}
