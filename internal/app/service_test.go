package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyfind/tyfind/internal/ports"
)

// fakeFinder returns canned results so tests can focus on what the
// Service records.
type fakeFinder struct {
	locs    []ports.Location
	hover   *ports.Hover
	syms    []ports.SymbolInformation
	docSyms []ports.DocumentSymbol
	err     error
}

func (f *fakeFinder) FindDefinition(context.Context, string, int, int) ([]ports.Location, error) {
	return f.locs, f.err
}

func (f *fakeFinder) FindSymbol(context.Context, string, string) ([]ports.Location, error) {
	return f.locs, f.err
}

func (f *fakeFinder) Hover(context.Context, string, int, int) (*ports.Hover, error) {
	return f.hover, f.err
}

func (f *fakeFinder) References(context.Context, string, int, int) ([]ports.Location, error) {
	return f.locs, f.err
}

func (f *fakeFinder) WorkspaceSymbols(context.Context, string) ([]ports.SymbolInformation, error) {
	return f.syms, f.err
}

func (f *fakeFinder) DocumentSymbols(context.Context, string) ([]ports.DocumentSymbol, error) {
	return f.docSyms, f.err
}

type fakeRunner struct {
	res  ports.RawResult
	err  error
	args []string
}

func (f *fakeRunner) Run(_ context.Context, args ...string) (ports.RawResult, error) {
	f.args = args
	return f.res, f.err
}

type fakeStore struct {
	workspace string
	events    []ports.QueryEvent
	err       error
}

func (f *fakeStore) RecordQuery(workspace string, ev ports.QueryEvent) error {
	f.workspace = workspace
	f.events = append(f.events, ev)
	return f.err
}

func (f *fakeStore) Stats(string) (*ports.ActivityStats, error) { return nil, nil }
func (f *fakeStore) DeleteWorkspace(string) error               { return nil }
func (f *fakeStore) Close() error                               { return nil }

func TestService_RecordsDefinitionEvent(t *testing.T) {
	finder := &fakeFinder{locs: []ports.Location{
		{URI: "file:///repo/models.py", Line: 10, Column: 5},
		{URI: "file:///repo/base.py", Line: 3, Column: 1},
	}}
	store := &fakeStore{}
	svc := NewService(finder, nil, store, "/work/repo")

	locs, err := svc.FindDefinition(context.Background(), "models.py", 10, 5)

	require.NoError(t, err)
	assert.Len(t, locs, 2)
	require.Len(t, store.events, 1)

	ev := store.events[0]
	assert.Equal(t, "repo", store.workspace)
	assert.Equal(t, "definition", ev.Op)
	assert.Equal(t, "models.py", ev.File)
	assert.Equal(t, "10:5", ev.Detail)
	assert.Equal(t, 2, ev.Results)
	assert.Equal(t, ports.OutcomeOK, ev.Outcome)
	assert.False(t, ev.At.IsZero())
	assert.GreaterOrEqual(t, ev.Duration.Nanoseconds(), int64(0))
}

func TestService_WorkspaceIDDefaultsToGlobal(t *testing.T) {
	svc := NewService(&fakeFinder{}, nil, &fakeStore{}, "")
	assert.Equal(t, "global", svc.WorkspaceID())

	svc = NewService(&fakeFinder{}, nil, &fakeStore{}, "/home/user/projects/api")
	assert.Equal(t, "api", svc.WorkspaceID())
}

func TestService_OutcomeClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ports.Outcome
	}{
		{"no error", nil, ports.OutcomeOK},
		{"missing binary", ports.ErrBinaryNotFound, ports.OutcomeNotFound},
		{"missing binary wrapped", fmt.Errorf("resolve: %w", ports.ErrBinaryNotFound), ports.OutcomeNotFound},
		{"tool exit", &ports.ExecutionError{ExitCode: 2, Stderr: "file not found"}, ports.OutcomeExecFailed},
		{"garbage output", &ports.MalformedOutputError{Detail: "parse"}, ports.OutcomeMalformed},
		{"spawn failure", errors.New("fork/exec: permission denied"), ports.OutcomeExecFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := NewService(&fakeFinder{err: tc.err}, nil, store, "/work/repo")

			_, err := svc.FindSymbol(context.Background(), "models.py", "Dog")

			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
			require.Len(t, store.events, 1)
			assert.Equal(t, tc.want, store.events[0].Outcome)
		})
	}
}

func TestService_ErrorsPassThroughUnchanged(t *testing.T) {
	execErr := &ports.ExecutionError{ExitCode: 2, Stderr: "boom"}
	svc := NewService(&fakeFinder{err: execErr}, nil, &fakeStore{}, "")

	_, err := svc.FindDefinition(context.Background(), "a.py", 1, 1)

	var got *ports.ExecutionError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 2, got.ExitCode)
}

func TestService_NilStoreIsSafe(t *testing.T) {
	finder := &fakeFinder{locs: []ports.Location{{URI: "file:///a.py", Line: 1, Column: 1}}}
	svc := NewService(finder, nil, nil, "/work/repo")

	locs, err := svc.FindDefinition(context.Background(), "a.py", 1, 1)

	require.NoError(t, err)
	assert.Len(t, locs, 1)
}

func TestService_StoreFailureDoesNotFailQuery(t *testing.T) {
	finder := &fakeFinder{locs: []ports.Location{{URI: "file:///a.py", Line: 1, Column: 1}}}
	store := &fakeStore{err: errors.New("disk full")}
	svc := NewService(finder, nil, store, "/work/repo")

	locs, err := svc.FindDefinition(context.Background(), "a.py", 1, 1)

	require.NoError(t, err)
	assert.Len(t, locs, 1)
}

func TestService_HoverCountsPresence(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(&fakeFinder{hover: &ports.Hover{
		Contents: ports.MarkupContent{Kind: "markdown", Value: "class Dog(Animal)"},
	}}, nil, store, "")

	h, err := svc.Hover(context.Background(), "models.py", 10, 7)

	require.NoError(t, err)
	require.NotNil(t, h)
	require.Len(t, store.events, 1)
	assert.Equal(t, "hover", store.events[0].Op)
	assert.Equal(t, 1, store.events[0].Results)

	store.events = nil
	svc = NewService(&fakeFinder{}, nil, store, "")
	h, err = svc.Hover(context.Background(), "models.py", 99, 1)

	require.NoError(t, err)
	assert.Nil(t, h)
	require.Len(t, store.events, 1)
	assert.Equal(t, 0, store.events[0].Results)
}

func TestService_WorkspaceSymbolsRecordsQueryAsDetail(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(&fakeFinder{syms: []ports.SymbolInformation{
		{Name: "Dog", Kind: ports.KindClass},
	}}, nil, store, "")

	_, err := svc.WorkspaceSymbols(context.Background(), "Dog")

	require.NoError(t, err)
	require.Len(t, store.events, 1)
	assert.Equal(t, "workspace-symbols", store.events[0].Op)
	assert.Equal(t, "Dog", store.events[0].Detail)
	assert.Empty(t, store.events[0].File)
}

func TestService_RunRecordsToolExit(t *testing.T) {
	runner := &fakeRunner{res: ports.RawResult{Stdout: []byte("stopped\n"), ExitCode: 3}}
	store := &fakeStore{}
	svc := NewService(&fakeFinder{}, runner, store, "")

	res, err := svc.Run(context.Background(), "daemon", "status")

	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, []string{"daemon", "status"}, runner.args)
	require.Len(t, store.events, 1)
	assert.Equal(t, "daemon", store.events[0].Op)
	assert.Equal(t, "daemon status", store.events[0].Detail)
	assert.Equal(t, ports.OutcomeExecFailed, store.events[0].Outcome)
}

func TestService_RunZeroExitIsOK(t *testing.T) {
	runner := &fakeRunner{res: ports.RawResult{Stdout: []byte("running\n")}}
	store := &fakeStore{}
	svc := NewService(&fakeFinder{}, runner, store, "")

	_, err := svc.Run(context.Background(), "daemon", "status")

	require.NoError(t, err)
	require.Len(t, store.events, 1)
	assert.Equal(t, ports.OutcomeOK, store.events[0].Outcome)
}
