package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"nvfig/internal/physics"
)

const exploreExtent = 3.0

// ExploreModel is an interactive radial cross-section of the sombrero
// potential. Adjusting mu across zero shows the symmetry-breaking
// transition that the animation renders frame by frame.
type ExploreModel struct {
	mu     float64
	lambda float64
	// parameter selected for adjustment: 0 = mu, 1 = lambda
	selected int
}

// NewExploreModel starts in the symmetric regime.
func NewExploreModel(mu, lambda float64) ExploreModel {
	return ExploreModel{mu: mu, lambda: lambda}
}

func (m ExploreModel) Init() tea.Cmd { return nil }

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "up", "down", "k", "j":
		m.selected = 1 - m.selected
	case "[", "-", "_":
		m.adjust(-0.1)
	case "]", "+", "=":
		m.adjust(0.1)
	case "r":
		m.mu, m.lambda = 2.0, 1.0
		m.selected = 0
	}
	return m, nil
}

func (m *ExploreModel) adjust(delta float64) {
	if m.selected == 0 {
		m.mu += delta
		return
	}
	// lambda stays strictly positive
	next := m.lambda + delta
	if next <= 0.05 {
		next = 0.05
	}
	m.lambda = next
}

func (m ExploreModel) View() string {
	s, err := physics.NewSombrero(m.mu, m.lambda)
	if err != nil {
		return helpStyle.Render(err.Error())
	}

	xs := physics.Linspace(-exploreExtent, exploreExtent, previewWidth)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = s.Eval(x, 0)
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("sombrero potential cross-section V(x, 0)"))
	sb.WriteString("\n")
	sb.WriteString(graphStyle.Render(asciigraph.Plot(ys,
		asciigraph.Height(16),
		asciigraph.Width(previewWidth),
	)))
	sb.WriteString("\n")

	muLabel := labelStyle.Render("mu")
	muValue := valueStyle.Render(fmt.Sprintf("%.2f", m.mu))
	if m.selected == 0 {
		muValue = activeParamStyle.Render(fmt.Sprintf("%.2f", m.mu))
	}
	lambdaLabel := labelStyle.Render("lambda")
	lambdaValue := valueStyle.Render(fmt.Sprintf("%.2f", m.lambda))
	if m.selected == 1 {
		lambdaValue = activeParamStyle.Render(fmt.Sprintf("%.2f", m.lambda))
	}

	sb.WriteString(muLabel + muValue + "\n")
	sb.WriteString(lambdaLabel + lambdaValue + "\n")

	regime := "symmetric (origin minimum)"
	if m.mu < 0 {
		regime = fmt.Sprintf("broken (ring minimum at r=%.3f)", s.MinimumRadius())
	}
	sb.WriteString(labelStyle.Render("regime") + valueStyle.Render(regime) + "\n")

	sb.WriteString(helpStyle.Render("tab select param  [ ] adjust  r reset  q quit"))
	return sb.String()
}

// RunExplore launches the interactive explorer.
func RunExplore(mu, lambda float64) error {
	p := tea.NewProgram(NewExploreModel(mu, lambda))
	_, err := p.Run()
	return err
}
