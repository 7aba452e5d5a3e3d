package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/skel/internal/runner"
)

func TestExternalEditor(t *testing.T) {
	mock := runner.NewMock()
	editor := NewExternalEditor("code --wait", mock)

	require.NoError(t, editor.Edit(context.Background(), "/tmp/draft.skel"))

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, runner.Call{Name: "code", Args: []string{"--wait", "/tmp/draft.skel"}, Attached: true}, calls[0])
}

func TestExternalEditor_NotConfigured(t *testing.T) {
	err := NewExternalEditor("  ", runner.NewMock()).Edit(context.Background(), "/tmp/x")
	assert.True(t, IsAppError(err, EditorNotFound))
}

func TestExternalEditor_Failure(t *testing.T) {
	mock := runner.NewMock()
	mock.Handler = func(call runner.Call) (runner.Result, error) {
		res := runner.Result{ExitCode: 1}
		return res, &runner.ExitError{Command: call.Name, Result: res}
	}

	err := NewExternalEditor("vi", mock).Edit(context.Background(), "/tmp/x")
	assert.True(t, IsAppError(err, EditorFailed))
}

func TestExternalEditor_BadQuoting(t *testing.T) {
	err := NewExternalEditor(`vi "unterminated`, runner.NewMock()).Edit(context.Background(), "/tmp/x")
	assert.True(t, IsAppError(err, EditorFailed))
}
