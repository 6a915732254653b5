package fixture

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Taichi-iskw/webvideo/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock fixture runner recording calls in order
type mockRunner struct {
	calls   []string
	failOn  string
	failErr error
}

func (m *mockRunner) record(call string) error {
	m.calls = append(m.calls, call)
	if call == m.failOn {
		return m.failErr
	}
	return nil
}

func (m *mockRunner) Reset(ctx context.Context) error { return m.record("reset") }

func (m *mockRunner) ClearAllTables(ctx context.Context) error { return m.record("clear") }

func (m *mockRunner) StandardData(ctx context.Context) error { return m.record("standard") }

func (m *mockRunner) Run(ctx context.Context, f fixture.Fixture) error {
	return m.record(string(f))
}

func execute(t *testing.T, runner *mockRunner, args ...string) (string, error) {
	t.Helper()

	cmd := NewFixtureCommand(runner)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestResetCommand(t *testing.T) {
	runner := &mockRunner{}

	out, err := execute(t, runner, "reset")

	require.NoError(t, err)
	assert.Equal(t, []string{"reset"}, runner.calls)
	assert.Contains(t, out, "Fixtures reset")
}

func TestClearCommand(t *testing.T) {
	runner := &mockRunner{failOn: "clear", failErr: errors.New("relation does not exist")}

	_, err := execute(t, runner, "clear")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear tables")
}

func TestLoadCommand(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		failOn        string
		expectedCalls []string
		expectedErr   string
	}{
		{
			name:          "no names loads the standard sequence",
			args:          []string{"load"},
			expectedCalls: []string{"standard"},
		},
		{
			name:          "named fixtures run in the given order",
			args:          []string{"load", "videos", "video-images"},
			expectedCalls: []string{string(fixture.VideosFixture), string(fixture.VideoImagesFixture)},
		},
		{
			name:          "unknown name runs nothing",
			args:          []string{"load", "users", "channels"},
			expectedCalls: nil,
			expectedErr:   `unknown fixture "channels"`,
		},
		{
			name:          "first failure stops the run",
			args:          []string{"load", "users", "roles", "user-roles"},
			failOn:        string(fixture.RolesFixture),
			expectedCalls: []string{string(fixture.UsersFixture), string(fixture.RolesFixture)},
			expectedErr:   "failed to load fixture",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mockRunner{failOn: tt.failOn, failErr: errors.New("duplicate key")}

			_, err := execute(t, runner, tt.args...)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectedCalls, runner.calls)
		})
	}
}
