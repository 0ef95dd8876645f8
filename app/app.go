package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"tagmore/config"
	"tagmore/inspect"
	"tagmore/keys"
	"tagmore/log"
	"tagmore/tagset"
	"tagmore/ui"
	"tagmore/ui/layout"
	"tagmore/ui/overlay"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// maxItemWidthStep is the change applied by the ] and [ keys.
const maxItemWidthStep = 2

// Options selects what the program shows on start.
type Options struct {
	// Path is the tag file to load. When empty, Board is shown instead.
	Path  string
	Board *tagset.Board
}

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	h, err := newHome(ctx, cfg, config.LoadState(), opts)
	if err != nil {
		return err
	}
	defer h.closeWatcher()

	p := tea.NewProgram(h, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateLoading is the state while a tag file is read in the background.
	stateLoading
	// statePopover is the state when the full tag list of a row is shown.
	statePopover
	// stateSelector is the state when the measurer selector is shown.
	stateSelector
	// stateBrowser is the state when the file browser is shown.
	stateBrowser
	// stateHelp is the state when the help screen is displayed.
	stateHelp
)

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	appConfig *config.Config
	// appState stores recent files and whether help was seen
	appState *config.State

	// -- State --

	state state
	// path is the tag file currently shown, empty for generated boards.
	path     string
	loadedAt time.Time

	width, height int
	sized         bool

	// status is a transient message shown in the status line.
	status    string
	statusErr bool
	statusSeq int

	// -- UI Components --

	board   *ui.Board
	menu    *ui.Menu
	spinner spinner.Model
	resize  *ui.ResizeDebouncer

	tagPopover       *overlay.TagPopover
	measurerSelector *overlay.MeasurerSelectorOverlay
	fileBrowser      *overlay.FileBrowserOverlay
	loadingOverlay   *overlay.LoadingOverlay
	textOverlay      *overlay.TextOverlay

	// -- Background Services --

	watcher *tagset.Watcher
	// copyText writes to the system clipboard.
	copyText func(string) error
}

func newHome(ctx context.Context, cfg *config.Config, st *config.State, opts Options) (*home, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if st == nil {
		st = config.DefaultState()
	}

	board, err := ui.NewBoard(cfg.Gap, cfg.MaxItemWidth, cfg.Measurer, cfg.EastAsianWidth)
	if err != nil {
		return nil, err
	}

	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		appState:  st,
		state:     stateDefault,
		path:      opts.Path,
		board:     board,
		menu:      ui.NewMenu(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		resize:    ui.NewResizeDebouncer(cfg.ResizeDebounce()),
		copyText:  clipboard.WriteAll,
	}
	if opts.Path == "" && opts.Board != nil {
		h.setBoard(opts.Board)
	}
	return h, nil
}

func (m *home) Init() tea.Cmd {
	if m.path == "" {
		return nil
	}
	return m.startLoad(m.path)
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case tea.WindowSizeMsg:
		// The first size is applied at once so the first frame is laid out.
		if !m.sized {
			m.applySize(msg.Width, msg.Height)
			return m, nil
		}
		return m, m.resize.Trigger(msg.Width, msg.Height)
	case ui.ResizeSettledMsg:
		if !m.resize.Settled(msg) {
			return m, nil
		}
		m.applySize(msg.Width, msg.Height)
		m.writeInspectSnapshot()
		return m, nil
	case boardLoadedMsg:
		return m, m.handleBoardLoaded(msg)
	case fileUpdateMsg:
		if msg.watcher != m.watcher {
			return m, nil
		}
		cmd := m.handleFileUpdate(msg.update)
		if m.watcher != nil {
			cmd = tea.Batch(cmd, waitForUpdate(m.watcher))
		}
		return m, cmd
	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

// applySize lays out every component for a terminal size. Only settled sizes
// get here.
func (m *home) applySize(width, height int) {
	m.width, m.height = width, height
	m.sized = true

	m.board.SetSize(width, height)
	c := m.board.Constraints()
	m.menu.SetSize(width, c.MenuHeight)

	overlayWidth := max(min(width-4, 64), 20)
	if m.tagPopover != nil {
		m.tagPopover.SetSize(width, height)
	}
	if m.measurerSelector != nil {
		m.measurerSelector.SetWidth(overlayWidth)
	}
	if m.fileBrowser != nil {
		m.fileBrowser.SetSize(max(min(width-4, 80), 20), max(height-2, 12))
	}
	if m.loadingOverlay != nil {
		m.loadingOverlay.SetWidth(min(overlayWidth, 50))
	}
	if m.textOverlay != nil {
		m.textOverlay.SetWidth(overlayWidth)
	}
	log.LayoutTrace("app: settled %dx%d mode=%s", width, height, c.Mode)
}

func (m *home) setBoard(board *tagset.Board) {
	m.board.SetBoard(board)
	if board != nil {
		m.loadedAt = board.LoadedAt
	}
	m.menu.SetHasRows(m.board.NumRows() > 0)
}

// startLoad shows the loading overlay and reads path in the background.
func (m *home) startLoad(path string) tea.Cmd {
	m.state = stateLoading
	m.loadingOverlay = overlay.NewLoadingOverlay(path, &m.spinner)
	if m.sized {
		m.loadingOverlay.SetWidth(max(min(m.width-4, 50), 20))
	}
	return tea.Batch(m.spinner.Tick, loadBoardCmd(path))
}

func loadBoardCmd(path string) tea.Cmd {
	return func() tea.Msg {
		board, err := tagset.Load(path)
		return boardLoadedMsg{path: path, board: board, err: err}
	}
}

func (m *home) handleBoardLoaded(msg boardLoadedMsg) tea.Cmd {
	m.loadingOverlay = nil
	m.state = stateDefault
	if msg.err != nil {
		return m.handleError(fmt.Errorf("failed to load %s: %w", msg.path, msg.err))
	}

	m.path = msg.path
	m.setBoard(msg.board)
	if err := m.appState.AddRecentFile(msg.path); err != nil {
		log.WarningLog.Printf("failed to save recent files: %v", err)
	}
	m.writeInspectSnapshot()

	return tea.Batch(
		m.watch(msg.path),
		m.setStatus(fmt.Sprintf("loaded %d rows from %s", m.board.NumRows(), filepath.Base(msg.path)), false),
	)
}

func (m *home) handleFileUpdate(u tagset.Update) tea.Cmd {
	if u.Err != nil {
		return m.handleError(u.Err)
	}
	m.setBoard(u.Board)
	return m.setStatus("reloaded "+filepath.Base(m.path), false)
}

// watch starts watching path unless it is already watched or watching is off.
func (m *home) watch(path string) tea.Cmd {
	if !m.appConfig.WatchFile {
		return nil
	}
	if abs, err := filepath.Abs(path); err == nil && m.watcher != nil && m.watcher.Path() == abs {
		return nil
	}

	m.closeWatcher()
	w, err := tagset.Watch(m.ctx, path, 0)
	if err != nil {
		log.WarningLog.Printf("could not watch %s: %v", path, err)
		return nil
	}
	m.watcher = w
	return waitForUpdate(w)
}

func waitForUpdate(w *tagset.Watcher) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-w.Updates()
		if !ok {
			return nil
		}
		return fileUpdateMsg{watcher: w, update: u}
	}
}

func (m *home) closeWatcher() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Close(); err != nil {
		log.WarningLog.Printf("failed to close watcher: %v", err)
	}
	m.watcher = nil
}

// handleMenuHighlighting returns a command to highlight the pressed key in the menu.
func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	if m.state == stateHelp || m.state == stateBrowser || m.state == stateLoading {
		return nil
	}
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil
	}
	if name == keys.KeyUp || name == keys.KeyDown {
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	log.InputTrace("key %q in state %d", msg.String(), m.state)
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}
	highlightCmd := m.handleMenuHighlighting(msg)

	switch m.state {
	case stateLoading:
		if msg.String() == "q" {
			return m.handleQuit()
		}
		return m, nil
	case stateHelp:
		m.textOverlay.HandleKeyPress(msg)
		m.textOverlay = nil
		m.state = stateDefault
		return m, nil
	case statePopover:
		if name, ok := keys.GlobalKeyStringsMap[msg.String()]; ok && name == keys.KeyCopy {
			return m, tea.Batch(highlightCmd, m.copySelected())
		}
		if m.tagPopover.HandleKeyPress(msg) {
			m.tagPopover = nil
			m.state = stateDefault
			m.menu.SetState(ui.StateDefault)
			m.menu.SetHasRows(m.board.NumRows() > 0)
		}
		return m, highlightCmd
	case stateSelector:
		if !m.measurerSelector.HandleKeyPress(msg) {
			return m, highlightCmd
		}
		selected := m.measurerSelector.GetSelected()
		m.measurerSelector = nil
		m.state = stateDefault
		m.menu.SetState(ui.StateDefault)
		m.menu.SetHasRows(m.board.NumRows() > 0)
		if selected == "" || selected == m.board.MeasurerName() {
			return m, highlightCmd
		}
		if err := m.board.SetMeasurer(selected); err != nil {
			return m, m.handleError(err)
		}
		m.appConfig.Measurer = selected
		return m, tea.Batch(highlightCmd, m.setStatus("measuring with "+selected, false))
	case stateBrowser:
		if !m.fileBrowser.HandleKeyPress(msg) {
			return m, nil
		}
		fb := m.fileBrowser
		m.fileBrowser = nil
		m.state = stateDefault
		if fb.IsCanceled() {
			return m, m.setStatus("open canceled", false)
		}
		if !fb.IsSubmitted() {
			return m, nil
		}
		return m, m.startLoad(fb.GetSelectedPath())
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyUp:
		m.board.Up()
	case keys.KeyDown:
		m.board.Down()
	case keys.KeyToggle:
		return m, tea.Batch(highlightCmd, m.openPopover())
	case keys.KeyGapUp, keys.KeyGapDown:
		delta := 1
		if name == keys.KeyGapDown {
			delta = -1
		}
		m.appConfig.Gap = m.board.SetGap(m.board.Gap() + delta)
		return m, tea.Batch(highlightCmd, m.setStatus(fmt.Sprintf("gap %d", m.appConfig.Gap), false))
	case keys.KeyWidthUp, keys.KeyWidthDown:
		delta := maxItemWidthStep
		if name == keys.KeyWidthDown {
			delta = -maxItemWidthStep
		}
		m.appConfig.MaxItemWidth = m.board.SetMaxItemWidth(m.board.MaxItemWidth() + delta)
		return m, tea.Batch(highlightCmd, m.setStatus(fmt.Sprintf("max item width %d", m.appConfig.MaxItemWidth), false))
	case keys.KeyMeasurer:
		m.measurerSelector = overlay.NewMeasurerSelectorOverlay(m.board.MeasurerName())
		if m.sized {
			m.measurerSelector.SetWidth(max(min(m.width-4, 64), 20))
		}
		m.state = stateSelector
		m.menu.SetState(ui.StateSelector)
		return m, highlightCmd
	case keys.KeyCopy:
		return m, tea.Batch(highlightCmd, m.copySelected())
	case keys.KeyReload:
		return m, tea.Batch(highlightCmd, m.reload())
	case keys.KeyOpen:
		return m, tea.Batch(highlightCmd, m.openBrowser())
	case keys.KeyHelp:
		m.showHelpScreen()
		return m, highlightCmd
	case keys.KeyQuit:
		return m.handleQuit()
	}
	return m, highlightCmd
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	log.GetProfiler().LogStats()
	m.closeWatcher()
	return m, tea.Quit
}

func (m *home) openPopover() tea.Cmd {
	row, tags := m.board.SelectedRow(), m.board.SelectedTags()
	if row == nil {
		return nil
	}
	// The popover always uses full chips, whatever the board density.
	measurer, err := layout.NewMeasurer(m.board.MeasurerName(), m.appConfig.EastAsianWidth, ui.ChipStyles.Chip)
	if err != nil {
		return m.handleError(err)
	}

	m.tagPopover = overlay.NewTagPopover(row.Name, tags.Items(), len(tags.HiddenItems()),
		m.board.Gap(), m.board.MaxItemWidth(), layout.NewCachedMeasurer(measurer))
	if m.sized {
		m.tagPopover.SetSize(m.width, m.height)
	}
	m.state = statePopover
	m.menu.SetState(ui.StatePopover)
	return nil
}

// copySelected copies every tag of the selected row, hidden ones included.
func (m *home) copySelected() tea.Cmd {
	row := m.board.SelectedRow()
	if row == nil {
		return nil
	}
	if err := m.copyText(strings.Join(row.Names(), ", ")); err != nil {
		return m.handleError(fmt.Errorf("failed to copy tags: %w", err))
	}
	return m.setStatus(fmt.Sprintf("copied %d tags of %s", len(row.Tags), row.Name), false)
}

// reload reads the tag file again, or regenerates a demo board.
func (m *home) reload() tea.Cmd {
	if m.path != "" {
		return m.startLoad(m.path)
	}
	board, err := tagset.Demo(max(m.board.NumRows(), 1))
	if err != nil {
		return m.handleError(err)
	}
	m.setBoard(board)
	return m.setStatus("generated a new demo board", false)
}

func (m *home) openBrowser() tea.Cmd {
	start := "."
	if m.path != "" {
		start = filepath.Dir(m.path)
	}
	fb, err := overlay.NewFileBrowserOverlay(start, m.appState.RecentFiles)
	if err != nil {
		return m.handleError(err)
	}
	if m.sized {
		fb.SetSize(max(min(m.width-4, 80), 20), max(m.height-2, 12))
	}
	m.fileBrowser = fb
	m.state = stateBrowser
	return nil
}

func (m *home) showHelpScreen() {
	m.textOverlay = overlay.NewTextOverlay(helpText())
	m.textOverlay.OnDismiss = func() {
		if err := m.appState.MarkHelpSeen(); err != nil {
			log.WarningLog.Printf("failed to save state: %v", err)
		}
	}
	if m.sized {
		m.textOverlay.SetWidth(max(min(m.width-4, 64), 20))
	}
	m.state = stateHelp
}

// writeInspectSnapshot dumps the component tree when inspection is enabled.
func (m *home) writeInspectSnapshot() {
	if !inspect.IsEnabled() || !m.sized {
		return
	}
	snap := inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithLayout(m.board.Constraints(), m.board.Degradation()).
		WithAppState(m.appStateInfo()).
		WithComponents(m.inspectTree())
	if err := inspect.WriteSnapshot(snap); err != nil {
		log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
	}
}

// inspectTree is the board's component tree with the open popover, if any,
// attached to the root.
func (m *home) inspectTree() *inspect.Node {
	root := m.board.InspectNode()
	if m.tagPopover != nil {
		root.AddChild(m.tagPopover.InspectNode())
	}
	return root
}

func (m *home) appStateInfo() inspect.AppStateInfo {
	info := inspect.AppStateInfo{
		State:         m.stateName(),
		Source:        m.path,
		RowCount:      m.board.NumRows(),
		SelectedIndex: m.board.SelectedIndex(),
		Measurer:      m.board.MeasurerName(),
	}
	if m.statusErr {
		info.ErrorMessage = m.status
	}
	switch m.state {
	case statePopover:
		info.HasOverlay, info.OverlayType = true, "tag_popover"
	case stateSelector:
		info.HasOverlay, info.OverlayType = true, "measurer_selector"
	case stateBrowser:
		info.HasOverlay, info.OverlayType = true, "file_browser"
	case stateLoading:
		info.HasOverlay, info.OverlayType = true, "loading"
	case stateHelp:
		info.HasOverlay, info.OverlayType = true, "help"
	}
	return info
}

func (m *home) stateName() string {
	switch m.state {
	case stateLoading:
		return "loading"
	case statePopover:
		return "popover"
	case stateSelector:
		return "selector"
	case stateBrowser:
		return "browser"
	case stateHelp:
		return "help"
	default:
		return "default"
	}
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideStatusMsg clears the status message it was scheduled for.
type hideStatusMsg struct {
	seq int
}

// boardLoadedMsg is sent when a background load completes.
type boardLoadedMsg struct {
	path  string
	board *tagset.Board
	err   error
}

// fileUpdateMsg carries a reload from the file watcher.
type fileUpdateMsg struct {
	watcher *tagset.Watcher
	update  tagset.Update
}

// statusDuration is how long a status message stays on screen.
const statusDuration = 3 * time.Second

// setStatus shows a message in the status line and returns the command that
// clears it.
func (m *home) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status, m.statusErr = text, isErr
	seq := m.statusSeq
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(statusDuration):
		}
		return hideStatusMsg{seq: seq}
	}
}

// handleError logs err and shows it in the status line for a few seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	return m.setStatus(err.Error(), true)
}

func (m *home) statusLine() string {
	c := m.board.Constraints()

	var text string
	switch {
	case m.status != "" && m.statusErr:
		text = ui.TextStyles.Error.Render(m.status)
	case m.status != "":
		text = ui.TextStyles.Success.Render(m.status)
	case c.ShowMinWarning:
		text = ui.TextStyles.Error.Render(
			fmt.Sprintf("terminal %dx%d is below %dx%d", m.width, m.height, layout.MinWidth, layout.MinHeight))
	default:
		source := "demo"
		if m.path != "" {
			source = filepath.Base(m.path)
		}
		text = ui.TextStyles.Muted.Render(fmt.Sprintf(" %s • %s • gap %d • max %d • %s",
			source, ui.FormatLoaded(m.loadedAt), m.board.Gap(), m.board.MaxItemWidth(), m.board.MeasurerName()))
	}

	if lipgloss.Width(text) > m.width {
		text = truncate.StringWithTail(text, uint(max(m.width, 0)), ui.Ellipsis)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, text)
}

func (m *home) View() string {
	defer log.GetProfiler().StartRender("app")()

	parts := []string{m.board.String()}
	if m.sized && !m.board.Degradation().HideStatusLine {
		parts = append(parts, m.statusLine())
	}
	parts = append(parts, m.menu.String())
	mainView := lipgloss.JoinVertical(lipgloss.Left, parts...)

	var fg string
	switch m.state {
	case stateLoading:
		if m.loadingOverlay != nil {
			fg = m.loadingOverlay.Render()
		}
	case statePopover:
		fg = m.tagPopover.Render()
	case stateSelector:
		fg = m.measurerSelector.Render()
	case stateBrowser:
		fg = m.fileBrowser.Render()
	case stateHelp:
		fg = m.textOverlay.Render()
	}
	if fg == "" {
		return mainView
	}
	return overlay.PlaceOverlay(fg, mainView)
}

