package git

import "context"

// MockRunner is a Runner implementation for tests. Each operation records
// its name in Calls and consults the matching error field.
type MockRunner struct {
	Dir string

	Calls []string

	InitErr      error
	RenameErr    error
	SetRemoteErr error
	IgnoreWrote  bool
	IgnoreErr    error
	Commits      bool

	StageErr   error
	Changes    bool
	ChangesErr error
	ChangeSet  *ChangeSet
	CommitErr  error

	PushErr         error
	PushUpstreamErr error
	PullOldRev      string
	PullNewRev      string
	PullErr         error

	HeadRev    string
	HeadErr    error
	DiffSet    *ChangeSet
	DiffErr    error
	RemoteURLs []string
	Messages   []string
}

var _ Runner = (*MockRunner)(nil)

func (m *MockRunner) record(name string) {
	m.Calls = append(m.Calls, name)
}

// Called reports whether an operation was invoked.
func (m *MockRunner) Called(name string) bool {
	for _, c := range m.Calls {
		if c == name {
			return true
		}
	}
	return false
}

func (m *MockRunner) WorkingDir() string {
	return m.Dir
}

func (m *MockRunner) Init(_ context.Context) error {
	m.record("Init")
	return m.InitErr
}

func (m *MockRunner) RenameBranchMain(_ context.Context) error {
	m.record("RenameBranchMain")
	return m.RenameErr
}

func (m *MockRunner) SetRemote(_ context.Context, url string) error {
	m.record("SetRemote")
	m.RemoteURLs = append(m.RemoteURLs, url)
	return m.SetRemoteErr
}

func (m *MockRunner) EnsureIgnoreFile() (bool, error) {
	m.record("EnsureIgnoreFile")
	return m.IgnoreWrote, m.IgnoreErr
}

func (m *MockRunner) HasCommits() bool {
	m.record("HasCommits")
	return m.Commits
}

func (m *MockRunner) StageAll(_ context.Context) error {
	m.record("StageAll")
	return m.StageErr
}

func (m *MockRunner) HasChanges(_ context.Context) (bool, error) {
	m.record("HasChanges")
	return m.Changes, m.ChangesErr
}

func (m *MockRunner) ChangedFiles(_ context.Context) (*ChangeSet, error) {
	m.record("ChangedFiles")
	if m.ChangeSet == nil {
		return &ChangeSet{}, nil
	}
	return m.ChangeSet, nil
}

func (m *MockRunner) Commit(_ context.Context, message string) error {
	m.record("Commit")
	m.Messages = append(m.Messages, message)
	return m.CommitErr
}

func (m *MockRunner) Push(_ context.Context) error {
	m.record("Push")
	return m.PushErr
}

func (m *MockRunner) PushUpstream(_ context.Context) error {
	m.record("PushUpstream")
	return m.PushUpstreamErr
}

func (m *MockRunner) Pull(_ context.Context) (string, string, error) {
	m.record("Pull")
	return m.PullOldRev, m.PullNewRev, m.PullErr
}

func (m *MockRunner) HeadRevision(_ context.Context) (string, error) {
	m.record("HeadRevision")
	return m.HeadRev, m.HeadErr
}

func (m *MockRunner) DiffSummary(_ context.Context, _, _ string) (*ChangeSet, error) {
	m.record("DiffSummary")
	if m.DiffSet == nil {
		return &ChangeSet{}, nil
	}
	return m.DiffSet, m.DiffErr
}
