package fsm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invaders/event"
)

type testCtx struct {
	log     []string
	dead    bool
	cleared bool
}

const testGraph = `
initial = "Menu"

[states.Menu]
on_enter = [{ action = "Log", arg = "enter-menu" }]
on_exit = [{ action = "Log", arg = "exit-menu" }]
transitions = [{ trigger = "StartGame", target = "Playing" }]

[states.Playing]
on_enter = [{ action = "Log", arg = "enter-playing" }]
transitions = [
  { trigger = "Tick", target = "GameOver", guard = "Dead" },
  { trigger = "Tick", target = "LevelComplete", guard = "Cleared" },
]

[states.LevelComplete]
on_enter = [{ action = "Log", arg = "enter-level" }]
transitions = [{ trigger = "Tick", target = "Playing" }]

[states.GameOver]
on_enter = [{ action = "Log", arg = "enter-over" }]
transitions = [{ trigger = "StartGame", target = "Playing" }]
`

func newTestMachine(t *testing.T) *Machine[*testCtx] {
	t.Helper()
	m := NewMachine[*testCtx]()
	m.RegisterAction("Log", func(ctx *testCtx, arg string) { ctx.log = append(ctx.log, arg) })
	m.RegisterGuard("Dead", func(ctx *testCtx) bool { return ctx.dead })
	m.RegisterGuard("Cleared", func(ctx *testCtx) bool { return ctx.cleared })
	require.NoError(t, m.LoadConfig([]byte(testGraph)))
	return m
}

func TestMachineInitEntersInitialState(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{}
	require.NoError(t, m.Init(ctx))
	assert.Equal(t, "Menu", m.Current())
	assert.Equal(t, []string{"enter-menu"}, ctx.log)
}

func TestMachineEventTransitionRunsExitThenEnter(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{}
	require.NoError(t, m.Init(ctx))

	assert.False(t, m.Update(ctx, time.Second), "menu has no tick transitions")
	assert.Equal(t, time.Second, m.TimeInState())

	assert.True(t, m.HandleEvent(ctx, event.EventStartGame))
	assert.Equal(t, "Playing", m.Current())
	assert.Equal(t, []string{"enter-menu", "exit-menu", "enter-playing"}, ctx.log)
	assert.Zero(t, m.TimeInState())
}

func TestMachineGuardOrderPrefersFirstDeclared(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{}
	require.NoError(t, m.Init(ctx))
	m.HandleEvent(ctx, event.EventStartGame)

	ctx.dead, ctx.cleared = true, true
	assert.True(t, m.Update(ctx, 0))
	assert.Equal(t, "GameOver", m.Current())
}

func TestMachineOneTransitionPerUpdate(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{}
	require.NoError(t, m.Init(ctx))
	m.HandleEvent(ctx, event.EventStartGame)

	ctx.cleared = true
	m.Update(ctx, 0)
	assert.Equal(t, "LevelComplete", m.Current())

	ctx.cleared = false
	m.Update(ctx, 0)
	assert.Equal(t, "Playing", m.Current())
}

func TestMachineIgnoresUnmatchedEvents(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{}
	require.NoError(t, m.Init(ctx))
	assert.False(t, m.HandleEvent(ctx, event.EventFired))
	assert.False(t, m.HandleEvent(ctx, event.EventTick))
	assert.Equal(t, "Menu", m.Current())
}

func TestMachineReset(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{}
	require.NoError(t, m.Init(ctx))
	m.HandleEvent(ctx, event.EventStartGame)
	ctx.log = nil

	require.NoError(t, m.Reset(ctx))
	assert.Equal(t, "Menu", m.Current())
	assert.Equal(t, []string{"enter-menu"}, ctx.log)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		graph string
		want  string
	}{
		{"unknown action", "initial = \"A\"\n[states.A]\non_enter = [{ action = \"Nope\" }]\n", "unknown action"},
		{"unknown guard", "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"Tick\", target = \"A\", guard = \"Nope\" }]\n", "unknown guard"},
		{"unknown target", "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"Tick\", target = \"B\" }]\n", "unknown target"},
		{"unknown trigger", "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"Boom\", target = \"A\" }]\n", "unknown event type"},
		{"unknown parent", "initial = \"A\"\n[states.A]\nparent = \"Z\"\n", "unknown parent"},
		{"missing initial", "initial = \"B\"\n[states.A]\n", "initial state"},
		{"no states", "initial = \"A\"\n", "no states"},
		{"unknown key", "initial = \"A\"\nextra = 1\n[states.A]\n", "unknown FSM config key"},
		{"bad toml", "initial = ", "unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*testCtx]()
			err := m.LoadConfig([]byte(tt.graph))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHierarchicalTransitionBubblesToParent(t *testing.T) {
	graph := `
initial = "Child"
[states.Parent]
transitions = [{ trigger = "StartGame", target = "Other" }]
[states.Child]
parent = "Parent"
on_exit = [{ action = "Log", arg = "exit-child" }]
[states.Other]
on_enter = [{ action = "Log", arg = "enter-other" }]
`
	m := NewMachine[*testCtx]()
	m.RegisterAction("Log", func(ctx *testCtx, arg string) { ctx.log = append(ctx.log, arg) })
	require.NoError(t, m.LoadConfig([]byte(graph)))

	ctx := &testCtx{}
	require.NoError(t, m.Init(ctx))
	assert.True(t, m.HandleEvent(ctx, event.EventStartGame))
	assert.Equal(t, "Other", m.Current())
	assert.Equal(t, []string{"exit-child", "enter-other"}, ctx.log)
}
