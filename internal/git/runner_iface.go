package git

import "context"

// Runner defines the git operations the actions layer needs for a single
// vault. This allows the actions to be tested with a mock implementation.
type Runner interface {
	// WorkingDir returns the vault directory this runner operates on.
	WorkingDir() string

	// Repository setup
	Init(ctx context.Context) error
	RenameBranchMain(ctx context.Context) error
	SetRemote(ctx context.Context, url string) error
	EnsureIgnoreFile() (bool, error)
	HasCommits() bool

	// Working tree
	StageAll(ctx context.Context) error
	HasChanges(ctx context.Context) (bool, error)
	ChangedFiles(ctx context.Context) (*ChangeSet, error)
	Commit(ctx context.Context, message string) error

	// Remote transfer
	Push(ctx context.Context) error
	PushUpstream(ctx context.Context) error
	Pull(ctx context.Context) (oldRev, newRev string, err error)

	// Inspection
	HeadRevision(ctx context.Context) (string, error)
	DiffSummary(ctx context.Context, oldRev, newRev string) (*ChangeSet, error)
}

// NewRunner returns a Runner that calls the real git binary in dir.
func NewRunner(dir string) Runner {
	return &realRunner{dir: dir}
}

// realRunner implements Runner by calling the package-level git functions
type realRunner struct {
	dir string
}

func (r *realRunner) WorkingDir() string {
	return r.dir
}

func (r *realRunner) Init(ctx context.Context) error {
	return Init(ctx, r.dir)
}

func (r *realRunner) RenameBranchMain(ctx context.Context) error {
	return RenameBranchMain(ctx, r.dir)
}

func (r *realRunner) SetRemote(ctx context.Context, url string) error {
	return SetRemote(ctx, r.dir, url)
}

func (r *realRunner) EnsureIgnoreFile() (bool, error) {
	return EnsureIgnoreFile(r.dir)
}

func (r *realRunner) HasCommits() bool {
	return HasCommits(r.dir)
}

func (r *realRunner) StageAll(ctx context.Context) error {
	return StageAll(ctx, r.dir)
}

func (r *realRunner) HasChanges(ctx context.Context) (bool, error) {
	return HasChanges(ctx, r.dir)
}

func (r *realRunner) ChangedFiles(ctx context.Context) (*ChangeSet, error) {
	return ChangedFiles(ctx, r.dir)
}

func (r *realRunner) Commit(ctx context.Context, message string) error {
	return Commit(ctx, r.dir, message)
}

func (r *realRunner) Push(ctx context.Context) error {
	return Push(ctx, r.dir)
}

func (r *realRunner) PushUpstream(ctx context.Context) error {
	return PushUpstream(ctx, r.dir)
}

func (r *realRunner) Pull(ctx context.Context) (string, string, error) {
	return Pull(ctx, r.dir)
}

func (r *realRunner) HeadRevision(ctx context.Context) (string, error) {
	return HeadRevision(ctx, r.dir)
}

func (r *realRunner) DiffSummary(ctx context.Context, oldRev, newRev string) (*ChangeSet, error) {
	return DiffSummary(ctx, r.dir, oldRev, newRev)
}
