package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/highlightchat/internal/answer"
	"github.com/csheth/highlightchat/internal/transcript"
)

// Config wires runtime options into the query panel.
type Config struct {
	Client answer.Client
	// TopK is the result limit sent with every question.
	TopK int
	// TranscriptPath enables Ctrl+S exports when non-empty.
	TranscriptPath string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.TopK == 0 {
		config.TopK = answer.DefaultTopK
	}

	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.CharLimit = answer.MaxQueryLength
	input.Width = 60
	input.Prompt = "› "
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	return &model{
		config:        config,
		input:         input,
		spinner:       spin,
		viewport:      vp,
		layout:        newPageLayout(),
		bus:           newJobBus(),
		state:         Idle{},
		viewportDirty: true,
	}
}

type model struct {
	config Config

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	layout   pageLayout
	bus      *jobBus

	state RequestState
	// seq identifies the latest submission; results tagged with an older value are dropped.
	seq uint64

	health        healthStatus
	notice        string
	noticeIsError bool
	jobs          []jobSnapshot
	viewportDirty bool
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.config.Client != nil {
		cmds = append(cmds, m.bus.Start(jobKindHealth, 0, healthJob(m.config.Client)))
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.markViewportDirty()
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.input.Width = m.layout.inputWidth
		m.markViewportDirty()
		return m, nil
	case jobSignalMsg:
		m.trackJob(msg.Snapshot)
		return m, nil
	case jobResultEnvelope:
		m.trackJob(msg.Snapshot)
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case askResultMsg:
		m.handleAskResult(msg)
		return m, nil
	case healthResultMsg:
		if msg.err != nil {
			m.health = healthDown
			log.Printf("[tui] health check failed: %v", msg.err)
		} else {
			m.health = healthOK
		}
		return m, nil
	case exportResultMsg:
		if msg.err != nil {
			m.setNotice(fmt.Sprintf("export failed: %v", msg.err), true)
			return m, nil
		}
		m.setNotice(fmt.Sprintf("Exported %d exchange(s) to %s", msg.count, msg.path), false)
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		if !m.submitEnabled() {
			return m, nil
		}
		return m, m.Submit(m.input.Value())
	case tea.KeyEsc:
		m.input.SetValue("")
		return m, nil
	case tea.KeyCtrlS:
		return m, m.exportCurrent()
	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(key)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// Submit asks the service about query. Whitespace-only queries are ignored and
// never reach the network. A submission while another is in flight is allowed;
// the earlier result is discarded when it arrives.
func (m *model) Submit(query string) tea.Cmd {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	m.notice = ""
	if m.config.Client == nil {
		m.state = Failed{Query: query, Message: "answer service is not configured"}
		m.markViewportDirty()
		return nil
	}
	m.seq++
	m.supersedeAsks()
	m.state = Loading{Seq: m.seq, Query: query, StartedAt: time.Now()}
	m.viewport.GotoTop()
	m.markViewportDirty()
	return tea.Batch(m.spinner.Tick, m.bus.Start(jobKindAsk, m.seq, askJob(m.seq, m.config.Client, query, m.config.TopK)))
}

func (m *model) handleAskResult(msg askResultMsg) {
	current, ok := m.state.(Loading)
	if !ok || msg.seq != m.seq || current.Seq != msg.seq {
		log.Printf("[tui] dropping stale answer (seq=%d, latest=%d)", msg.seq, m.seq)
		return
	}
	m.state = resolveAsk(current, msg)
	m.viewport.GotoTop()
	m.markViewportDirty()
}

func (m *model) exportCurrent() tea.Cmd {
	if m.config.TranscriptPath == "" {
		m.setNotice("Start with -transcript to enable exports.", false)
		return nil
	}
	done, ok := m.state.(Succeeded)
	if !ok {
		m.setNotice("Nothing to export yet; ask a question first.", false)
		return nil
	}
	endpoint := ""
	if m.config.Client != nil {
		endpoint = m.config.Client.Endpoint()
	}
	exchange := transcript.NewExchange(done.Query, m.config.TopK, endpoint, done.AskedAt, done.Result)
	m.setNotice("Exporting exchange…", false)
	return m.bus.Start(jobKindExport, 0, exportJob(m.config.TranscriptPath, exchange))
}

func (m *model) setNotice(text string, isError bool) {
	m.notice = text
	m.noticeIsError = isError
}

func (m *model) loading() bool {
	_, ok := m.state.(Loading)
	return ok
}

func (m *model) submitEnabled() bool {
	return !m.loading() && strings.TrimSpace(m.input.Value()) != ""
}

func (m *model) submitLabel() string {
	if m.loading() {
		return submitLoadingLabel
	}
	return submitLabel
}

func (m *model) answerText() string {
	if done, ok := m.state.(Succeeded); ok {
		return done.Result.Answer
	}
	return ""
}

func (m *model) matches() []answer.Match {
	if done, ok := m.state.(Succeeded); ok {
		return done.Result.Matches
	}
	return nil
}

func (m *model) errorText() string {
	if failed, ok := m.state.(Failed); ok {
		return failed.Message
	}
	return ""
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if !m.viewportDirty {
		return
	}
	m.viewport.SetContent(m.buildResultsContent())
	m.viewportDirty = false
}
