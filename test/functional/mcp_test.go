package functional_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/halvar/daybook/internal/domain/habit"
	"github.com/halvar/daybook/internal/domain/note"
	"github.com/halvar/daybook/internal/domain/reminder"
	"github.com/halvar/daybook/internal/domain/task"
	"github.com/halvar/daybook/internal/domain/timer"
	"github.com/halvar/daybook/internal/mcp"
	"github.com/halvar/daybook/internal/storage"
)

// clientSession connects an MCP client to a freshly wired server over
// in-memory transports, backed by a real store in a temp directory.
type clientSession struct {
	session *sdkmcp.ClientSession
}

func newClientSession(t *testing.T) *clientSession {
	t.Helper()

	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := mcp.NewHandler(
		task.NewService(store.Tasks, logger),
		habit.NewService(store.Habits, logger),
		note.NewService(store.Notes, logger),
		reminder.NewService(store.Reminders, logger),
		timer.NewEngine(),
		logger,
	)
	server := mcp.NewServer(mcp.Config{Handler: handler, Logger: logger})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		session.Close()
		serverSession.Close()
		cancel()
	})

	return &clientSession{session: session}
}

func (s *clientSession) callTool(t *testing.T, name string, args map[string]any) json.RawMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := s.session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	require.False(t, result.IsError, "Tool %s returned error", name)
	require.NotEmpty(t, result.Content, "Tool %s returned no content", name)

	for _, content := range result.Content {
		if textContent, ok := content.(*sdkmcp.TextContent); ok {
			return json.RawMessage(textContent.Text)
		}
	}
	t.Fatalf("Tool %s returned no text content", name)
	return nil
}

func (s *clientSession) callToolExpectError(t *testing.T, name string, args map[string]any) mcp.APIError {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := s.session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed at the protocol level", name)
	require.True(t, result.IsError, "Tool %s did not return an error", name)

	var apiErr mcp.APIError
	for _, content := range result.Content {
		if textContent, ok := content.(*sdkmcp.TextContent); ok {
			require.NoError(t, json.Unmarshal([]byte(textContent.Text), &apiErr))
			return apiErr
		}
	}
	t.Fatalf("Tool %s returned no text content", name)
	return apiErr
}

func TestFunctional_TaskWorkflow(t *testing.T) {
	s := newClientSession(t)

	createResp := s.callTool(t, "create_task", map[string]any{"title": "write report"})
	var created struct {
		ID   string `json:"id"`
		Done bool   `json:"done"`
	}
	require.NoError(t, json.Unmarshal(createResp, &created))
	require.NotEmpty(t, created.ID)
	require.False(t, created.Done)

	toggleResp := s.callTool(t, "toggle_task", map[string]any{"id": created.ID})
	var toggled struct {
		Done bool `json:"done"`
	}
	require.NoError(t, json.Unmarshal(toggleResp, &toggled))
	require.True(t, toggled.Done)

	listResp := s.callTool(t, "list_tasks", nil)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(listResp, &list))
	require.Len(t, list, 1)

	_ = s.callTool(t, "delete_task", map[string]any{"id": created.ID})

	apiErr := s.callToolExpectError(t, "get_task", map[string]any{"id": created.ID})
	require.Equal(t, "NOT_FOUND", apiErr.Code)
	require.NotEmpty(t, apiErr.RecoveryHint)
}

func TestFunctional_HabitWorkflow(t *testing.T) {
	s := newClientSession(t)

	createResp := s.callTool(t, "create_habit", map[string]any{"name": "reading"})
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(createResp, &created))

	// Mark today plus the two days before it.
	day := time.Now().UTC()
	for i := 0; i < 3; i++ {
		_ = s.callTool(t, "mark_habit", map[string]any{
			"id":  created.ID,
			"day": day.AddDate(0, 0, -i).Format("2006-01-02"),
		})
	}
	// Marking today again is a no-op, not an error.
	_ = s.callTool(t, "mark_habit", map[string]any{"id": created.ID})

	streakResp := s.callTool(t, "habit_streak", map[string]any{"id": created.ID})
	var streak struct {
		Streak int `json:"streak"`
	}
	require.NoError(t, json.Unmarshal(streakResp, &streak))
	require.Equal(t, 3, streak.Streak)
}

func TestFunctional_ReminderFiresOnce(t *testing.T) {
	s := newClientSession(t)

	_ = s.callTool(t, "schedule_reminder", map[string]any{
		"message": "stand up",
		"fire_at": time.Now().UTC().Add(-time.Minute).Format(time.RFC3339),
	})

	dueResp := s.callTool(t, "check_due", nil)
	var due []struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(dueResp, &due))
	require.Len(t, due, 1)
	require.Equal(t, "stand up", due[0].Message)

	dueResp = s.callTool(t, "check_due", nil)
	require.NoError(t, json.Unmarshal(dueResp, &due))
	require.Empty(t, due)
}

func TestFunctional_TimerInvalidTransition(t *testing.T) {
	s := newClientSession(t)

	statusResp := s.callTool(t, "timer_status", nil)
	var status struct {
		State string `json:"state"`
	}
	require.NoError(t, json.Unmarshal(statusResp, &status))
	require.Equal(t, "idle", status.State)

	apiErr := s.callToolExpectError(t, "timer_pause", nil)
	require.Equal(t, "INVALID_TRANSITION", apiErr.Code)

	startResp := s.callTool(t, "timer_start", map[string]any{"duration_seconds": 300})
	var started struct {
		State            string `json:"state"`
		RemainingSeconds int64  `json:"remaining_seconds"`
	}
	require.NoError(t, json.Unmarshal(startResp, &started))
	require.Equal(t, "running", started.State)
	require.Equal(t, int64(300), started.RemainingSeconds)

	apiErr = s.callToolExpectError(t, "timer_start", map[string]any{"duration_seconds": 60})
	require.Equal(t, "INVALID_TRANSITION", apiErr.Code)
}

func TestFunctional_ProtocolCompliance(t *testing.T) {
	s := newClientSession(t)

	initResult := s.session.InitializeResult()
	require.NotNil(t, initResult)
	require.NotNil(t, initResult.ServerInfo)
	require.Equal(t, "daybook", initResult.ServerInfo.Name)
	require.Equal(t, "0.1.0", initResult.ServerInfo.Version)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tools, err := s.session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.Greater(t, len(tools.Tools), 25, "should expose the full tool surface")

	toolMap := make(map[string]*sdkmcp.Tool)
	for _, tool := range tools.Tools {
		toolMap[tool.Name] = tool
	}
	for _, name := range []string{"create_task", "mark_habit", "search_notes", "check_due", "timer_start"} {
		require.Contains(t, toolMap, name)
		require.NotEmpty(t, toolMap[name].Description)
	}
}

func TestFunctional_DocumentationResources(t *testing.T) {
	s := newClientSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resources, err := s.session.ListResources(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, resources.Resources)

	uris := make(map[string]*sdkmcp.Resource, len(resources.Resources))
	for _, r := range resources.Resources {
		uris[r.URI] = r
	}
	for _, uri := range []string{"daybook://docs/timer", "daybook://docs/storage"} {
		r, ok := uris[uri]
		require.True(t, ok, "missing expected doc resource: %s", uri)
		require.NotEmpty(t, r.Name)
		require.Equal(t, "text/markdown", r.MIMEType)
	}

	read, err := s.session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "daybook://docs/timer"})
	require.NoError(t, err)
	require.NotEmpty(t, read.Contents)
	require.Contains(t, read.Contents[0].Text, "timer_start")
}
