package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/engine"
	"github.com/piwi3910/cargoforge/internal/export"
	"github.com/piwi3910/cargoforge/internal/manifest"
	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/piwi3910/cargoforge/internal/stability"
)

var wizardSavePath string

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactively build a ship and manifest, then optimize",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(initialWizardModel())
		m, err := p.Run()
		if err != nil {
			return fmt.Errorf("running wizard: %w", err)
		}
		wm, ok := m.(wizardModel)
		if !ok || wm.aborted {
			return nil
		}

		ship, list, err := wm.buildManifest()
		if err != nil {
			return err
		}
		printWarnings(list.Warnings)
		ship.Cargo = list.Items

		settings := model.DefaultSettings()
		opt := engine.New(settings)
		result := opt.Optimize(ship)
		printDiagnostics(result.Diagnostics)
		analysis := stability.Analyze(ship)
		report := export.BuildReport(ship, result, analysis)

		if wizardSavePath != "" {
			plan := manifest.NewPlan(ship, settings, &result, &analysis)
			if err := manifest.SavePlan(wizardSavePath, plan); err != nil {
				return err
			}
		}
		return writeReport(report, true)
	},
}

func init() {
	wizardCmd.Flags().StringVar(&wizardSavePath, "save", "", "save the resulting plan as JSON to this path")
}

// wizardStep is one ship prompt in the sequence.
type wizardStep struct {
	label       string
	placeholder string
	numeric     bool
}

var wizardSteps = []wizardStep{
	{"Ship name", "MV Example", false},
	{"Length (m)", "120", true},
	{"Beam (m)", "20", true},
	{"Max weight (t)", "15000", true},
	{"Lightship weight (t)", "5000", true},
	{"Lightship KG (m)", "6", true},
}

type wizardModel struct {
	input      textinput.Model
	step       int
	answers    []string
	cargoLines []string
	cargoMode  bool
	errText    string
	aborted    bool
}

func initialWizardModel() wizardModel {
	ti := textinput.New()
	ti.Placeholder = wizardSteps[0].placeholder
	ti.Focus()
	ti.CharLimit = 120
	return wizardModel{input: ti}
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.accept()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// accept consumes the current line: advance the ship prompts, then
// collect cargo lines until an empty line finishes the wizard.
func (m wizardModel) accept() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	m.errText = ""

	if m.cargoMode {
		if value == "" {
			return m, tea.Quit
		}
		if fields := strings.Fields(value); len(fields) < 4 {
			m.errText = "expected: ID weight_t LxWxH category"
			return m, nil
		}
		m.cargoLines = append(m.cargoLines, value)
		m.input.SetValue("")
		return m, nil
	}

	step := wizardSteps[m.step]
	if step.numeric {
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			m.errText = "enter a number"
			return m, nil
		}
	}
	m.answers = append(m.answers, value)
	m.step++
	m.input.SetValue("")
	if m.step >= len(wizardSteps) {
		m.cargoMode = true
		m.input.Placeholder = "CRATE-001 12.5 6.0x2.4x2.6 standard"
	} else {
		m.input.Placeholder = wizardSteps[m.step].placeholder
	}
	return m, nil
}

func (m wizardModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	s := strings.Builder{}

	if m.cargoMode {
		s.WriteString(title.Render("? Add cargo items (empty line to finish)"))
		s.WriteString("\n\n")
		for _, line := range m.cargoLines {
			s.WriteString("  + " + line + "\n")
		}
	} else {
		s.WriteString(title.Render(fmt.Sprintf("? %s", wizardSteps[m.step].label)))
		s.WriteString("\n\n")
	}

	s.WriteString(m.input.View())
	s.WriteString("\n")
	if m.errText != "" {
		s.WriteString(badStyle.Render("  " + m.errText))
		s.WriteString("\n")
	}
	s.WriteString("\n(Press [enter] to confirm, [esc] to abort)\n")
	return s.String()
}

// buildManifest turns the collected answers into a validated ship and
// cargo list.
func (m wizardModel) buildManifest() (*model.Ship, manifest.CargoList, error) {
	if len(m.answers) < len(wizardSteps) {
		return nil, manifest.CargoList{}, fmt.Errorf("wizard aborted before all ship fields were entered")
	}
	nums := make([]float64, len(wizardSteps))
	for i := 1; i < len(wizardSteps); i++ {
		nums[i], _ = strconv.ParseFloat(m.answers[i], 64)
	}
	ship := &model.Ship{
		Name:            m.answers[0],
		Length:          nums[1],
		Width:           nums[2],
		MaxWeight:       nums[3] * 1000.0,
		LightshipWeight: nums[4] * 1000.0,
		LightshipKG:     nums[5],
	}
	if err := ship.Validate(); err != nil {
		return nil, manifest.CargoList{}, err
	}

	list, err := manifest.ParseCargoList(strings.NewReader(strings.Join(m.cargoLines, "\n")))
	if err != nil {
		return nil, manifest.CargoList{}, err
	}
	return ship, list, nil
}
