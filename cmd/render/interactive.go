package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/a2ui-runtime/binding"
	"github.com/wippyai/a2ui-runtime/component"
	"github.com/wippyai/a2ui-runtime/surface"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#444444")).
			Padding(0, 1)

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// focusTarget is one interactive component in visual order.
type focusTarget struct {
	id       string
	kind     component.Kind
	pointer  string // data model pointer for input widgets
	inputIdx int    // index into inputs, -1 for non-text widgets
}

type renderModel struct {
	err        error
	cfg        Config
	proc       *surface.Processor
	s          *surface.Surface
	targets    []focusTarget
	inputs     []textinput.Model
	focusIdx   int
	lastAction string
}

func newRenderModel(cfg Config, proc *surface.Processor, surfaceID string) *renderModel {
	m := &renderModel{cfg: cfg, proc: proc, focusIdx: -1}

	s, ok := proc.Surface(surfaceID)
	if !ok {
		m.err = fmt.Errorf("unknown surface %q", surfaceID)
		return m
	}
	m.s = s

	m.collectTargets(s.RootID(), 0)
	if len(m.targets) > 0 {
		m.focusIdx = 0
		if idx := m.targets[0].inputIdx; idx >= 0 {
			m.inputs[idx].Focus()
		}
	}
	return m
}

// collectTargets walks the tree in render order and records every
// interactive widget.
func (m *renderModel) collectTargets(id string, depth int) {
	if depth >= m.cfg.UI.MaxDepth {
		return
	}
	inst, ok := m.s.Component(id)
	if !ok {
		return
	}

	switch inst.Kind() {
	case component.KindTextField:
		pointer := valuePointer(inst)
		ti := textinput.New()
		ti.Prompt = component.TextValue(m.s.RenderProps(inst)["label"]) + ": "
		ti.Placeholder = component.TextValue(inst.Property("placeholder"))
		ti.SetValue(component.TextValue(m.s.ResolveBinding(inst.Property("value"))))
		ti.Width = 40
		m.inputs = append(m.inputs, ti)
		m.targets = append(m.targets, focusTarget{
			id: inst.ID, kind: inst.Kind(), pointer: pointer,
			inputIdx: len(m.inputs) - 1,
		})

	case component.KindCheckBox, component.KindSwitch:
		m.targets = append(m.targets, focusTarget{
			id: inst.ID, kind: inst.Kind(),
			pointer: "/" + inst.ID, inputIdx: -1,
		})

	case component.KindButton:
		m.targets = append(m.targets, focusTarget{
			id: inst.ID, kind: inst.Kind(), inputIdx: -1,
		})
	}

	for _, child := range component.ChildIDs(inst) {
		m.collectTargets(child, depth+1)
	}
}

// valuePointer extracts the bound pointer of an input widget, falling
// back to the component id convention.
func valuePointer(inst *component.Instance) string {
	if desc, ok := inst.Property("value").(map[string]any); ok {
		if path, ok := desc["path"].(string); ok && path != "" {
			return path
		}
	}
	return "/" + inst.ID
}

func (m *renderModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *renderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocusedInput(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "shift+tab":
		m.moveFocus(key.String() == "tab")
		return m, nil

	case "enter", " ":
		target, ok := m.focused()
		if !ok {
			return m, nil
		}
		switch target.kind {
		case component.KindButton:
			m.pressButton(target)
			return m, nil
		case component.KindCheckBox, component.KindSwitch:
			m.toggle(target)
			return m, nil
		}
		if key.String() == "enter" {
			return m, nil
		}
	}

	return m, m.updateFocusedInput(msg)
}

func (m *renderModel) focused() (focusTarget, bool) {
	if m.focusIdx < 0 || m.focusIdx >= len(m.targets) {
		return focusTarget{}, false
	}
	return m.targets[m.focusIdx], true
}

func (m *renderModel) moveFocus(forward bool) {
	if len(m.targets) == 0 {
		return
	}
	if cur, ok := m.focused(); ok && cur.inputIdx >= 0 {
		m.inputs[cur.inputIdx].Blur()
	}
	if forward {
		m.focusIdx = (m.focusIdx + 1) % len(m.targets)
	} else {
		m.focusIdx = (m.focusIdx - 1 + len(m.targets)) % len(m.targets)
	}
	if next := m.targets[m.focusIdx]; next.inputIdx >= 0 {
		m.inputs[next.inputIdx].Focus()
	}
}

// updateFocusedInput forwards msg to the focused text input and pushes
// the edit into the surface's data model.
func (m *renderModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	target, ok := m.focused()
	if !ok || target.inputIdx < 0 {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[target.inputIdx], cmd = m.inputs[target.inputIdx].Update(msg)
	if err := m.s.UpdateBinding(target.pointer, m.inputs[target.inputIdx].Value()); err != nil {
		m.err = err
	}
	return cmd
}

func (m *renderModel) pressButton(target focusTarget) {
	inst, ok := m.s.Component(target.id)
	if !ok {
		return
	}
	props := m.s.RenderProps(inst)
	actionProp, _ := props["action"].(map[string]any)
	name := component.TextValue(actionProp["name"])

	// the action context lists the pointers whose values travel with
	// the event
	ctx := map[string]any{}
	if paths, ok := actionProp["context"].([]any); ok {
		for _, p := range paths {
			if pointer, ok := p.(string); ok {
				ctx[pointer] = binding.Get(m.s.DataModel(), pointer)
			}
		}
	}

	action := m.proc.DispatchUserAction(m.s.ID(), target.id, name, ctx)
	m.lastAction = fmt.Sprintf("%s (component %s)", action.ActionName, action.ComponentID)
}

func (m *renderModel) toggle(target focusTarget) {
	cur, _ := binding.Get(m.s.DataModel(), target.pointer).(bool)
	if err := m.s.UpdateBinding(target.pointer, !cur); err != nil {
		m.err = err
	}
}

func (m *renderModel) View() string {
	if m.err != nil && m.s == nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress esc to quit.", m.err))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("A2UI Renderer"))
	b.WriteString(" ")
	b.WriteString(m.s.ID())
	b.WriteString("\n\n")

	m.renderNode(&b, m.s.RootID(), 0)

	b.WriteString("\n")
	if m.lastAction != "" {
		b.WriteString(actionStyle.Render("Dispatched: " + m.lastAction))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab next widget • enter activate • esc quit"))
	return b.String()
}

func (m *renderModel) renderNode(b *strings.Builder, id string, depth int) {
	if depth >= m.cfg.UI.MaxDepth {
		return
	}
	inst, ok := m.s.Component(id)
	if !ok {
		return
	}
	indent := strings.Repeat("  ", depth)
	props := m.s.RenderProps(inst)

	switch inst.Kind() {
	case component.KindText:
		text := component.TextValue(props["text"])
		switch component.TextValue(props["usageHint"]) {
		case "h1", "h2", "h3", "h4":
			b.WriteString(indent + headingStyle.Render(text))
		case "caption":
			b.WriteString(indent + captionStyle.Render(text))
		default:
			b.WriteString(indent + text)
		}
		b.WriteString("\n")

	case component.KindTextField:
		idx := m.inputIndex(id)
		if idx >= 0 {
			b.WriteString(indent + m.inputs[idx].View())
			b.WriteString("\n")
		}

	case component.KindCheckBox, component.KindSwitch:
		mark := "[ ]"
		if on, _ := binding.Get(m.s.DataModel(), "/"+inst.ID).(bool); on {
			mark = "[x]"
		}
		line := mark + " " + component.TextValue(props["label"])
		if m.isFocused(id) {
			line = focusedStyle.Render(line)
		}
		b.WriteString(indent + line)
		b.WriteString("\n")

	case component.KindButton:
		label := m.buttonLabel(inst)
		style := buttonStyle
		if m.isFocused(id) {
			style = focusedStyle
		}
		b.WriteString(indent + style.Render(label))
		b.WriteString("\n")

	case component.KindDivider:
		b.WriteString(indent + helpStyle.Render(strings.Repeat("─", 40)))
		b.WriteString("\n")

	default:
		if !component.IsContainer(inst.Kind()) {
			b.WriteString(indent + captionStyle.Render(fmt.Sprintf("<%s %s>", inst.Kind(), inst.ID)))
			b.WriteString("\n")
		}
	}

	for _, child := range component.ChildIDs(inst) {
		// a button's label child is rendered inside the button itself
		if inst.Kind() == component.KindButton {
			break
		}
		m.renderNode(b, child, depth+1)
	}
}

func (m *renderModel) buttonLabel(inst *component.Instance) string {
	for _, child := range component.ChildIDs(inst) {
		if label, ok := m.s.Component(child); ok {
			if text := component.TextValue(m.s.RenderProps(label)["text"]); text != "" {
				return text
			}
		}
	}
	return inst.ID
}

func (m *renderModel) inputIndex(id string) int {
	for _, t := range m.targets {
		if t.id == id {
			return t.inputIdx
		}
	}
	return -1
}

func (m *renderModel) isFocused(id string) bool {
	t, ok := m.focused()
	return ok && t.id == id
}

func runInteractive(cfg Config, proc *surface.Processor, surfaceID string) error {
	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(newRenderModel(cfg, proc, surfaceID), opts...)
	_, err := p.Run()
	return err
}
