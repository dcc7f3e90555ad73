package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	logging "github.com/ipfs/go-log/v2"

	"github.com/pluqqy/drivepad/pkg/auth"
	"github.com/pluqqy/drivepad/pkg/models"
	"github.com/pluqqy/drivepad/pkg/session"
	"github.com/pluqqy/drivepad/pkg/storage"
)

var log = logging.Logger("drivepad")

type editorField int

const (
	fieldTitle editorField = iota
	fieldContent
)

// EditorOptions wires the editor to its collaborators
type EditorOptions struct {
	Authenticator auth.Authenticator
	Builder       storage.Builder
	Settings      *models.Settings
}

// EditorModel is the single-document editor: a title field, a content
// field and the four remote-file actions. Facade calls run as commands and
// their results are applied in Update, so fields are only ever mutated on
// the program loop.
type EditorModel struct {
	session       *session.Session
	authenticator auth.Authenticator
	build         storage.Builder
	settings      *models.Settings

	titleInput   textinput.Model
	contentInput textarea.Model
	focus        editorField

	// The inputs normalize what they hold (tabs, line endings, control
	// characters), so the loaded text is kept verbatim and the inputs are
	// only authoritative once edited.
	doc           models.Document
	titleEdited   bool
	contentEdited bool

	picker       filepicker.Model
	pickerActive bool

	signInRequested bool
	width           int
	height          int
}

func NewEditorModel(opts EditorOptions) *EditorModel {
	settings := opts.Settings
	if settings == nil {
		settings = models.DefaultSettings()
	}

	m := &EditorModel{
		session:       session.New(),
		authenticator: opts.Authenticator,
		build:         opts.Builder,
		settings:      settings,
		titleInput:    textinput.New(),
		contentInput:  textarea.New(),
		focus:         fieldTitle,
	}

	m.titleInput.Placeholder = "Title"
	m.titleInput.CharLimit = 0
	m.titleInput.Width = 40
	m.titleInput.PlaceholderStyle = PlaceholderStyle
	m.titleInput.Cursor.SetMode(cursor.CursorStatic)

	m.contentInput.Placeholder = "Sign in, then create, open or query a file"
	m.contentInput.CharLimit = 0
	m.contentInput.MaxHeight = 0
	m.contentInput.MaxWidth = 0
	m.contentInput.ShowLineNumbers = settings.UI.ShowLineNumbers
	m.contentInput.FocusedStyle.Placeholder = PlaceholderStyle
	m.contentInput.BlurredStyle.Placeholder = PlaceholderStyle
	m.contentInput.Cursor.SetMode(cursor.CursorStatic)

	m.applyMode()
	return m
}

func (m *EditorModel) Init() tea.Cmd {
	signIn := m.RequestSignIn()
	if signIn == nil {
		return nil
	}
	return tea.Batch(
		func() tea.Msg { return PersistentStatusMsg("Waiting for sign-in...") },
		signIn,
	)
}

// Session exposes the editor's session state
func (m *EditorModel) Session() *session.Session {
	return m.session
}

// Title returns the current title field text
func (m *EditorModel) Title() string {
	if m.titleEdited {
		return m.titleInput.Value()
	}
	return m.doc.Name
}

// Content returns the current content field text
func (m *EditorModel) Content() string {
	if m.contentEdited {
		return m.contentInput.Value()
	}
	return m.doc.Content
}

// PickerActive reports whether the file picker is showing
func (m *EditorModel) PickerActive() bool {
	return m.pickerActive
}

// RequestSignIn starts the consent flow. Only the first call does anything.
func (m *EditorModel) RequestSignIn() tea.Cmd {
	if m.signInRequested || m.authenticator == nil {
		return nil
	}
	m.signInRequested = true

	authenticator := m.authenticator
	return func() tea.Msg {
		account, err := authenticator.Authenticate(context.Background())
		return signInResultMsg{account: account, err: err}
	}
}

// HandleSignInResult builds the facade for a signed-in account. On failure
// the facade stays unset and every action remains a no-op.
func (m *EditorModel) HandleSignInResult(msg signInResultMsg) tea.Cmd {
	if msg.err != nil {
		log.Errorf("Unable to sign in: %v", msg.err)
		return nil
	}
	if msg.account == nil {
		log.Errorf("Unable to sign in: no account returned")
		return nil
	}

	log.Infof("Signed in as %s", msg.account.Email)

	if m.build == nil {
		log.Errorf("Unable to build storage client: no backend configured")
		return nil
	}
	facade, err := m.build(context.Background(), msg.account)
	if err != nil {
		log.Errorf("Unable to build storage client: %v", err)
		return nil
	}
	m.session.SetFacade(facade, msg.account)

	return func() tea.Msg {
		return StatusMsg("Signed in as " + msg.account.Email)
	}
}

// OpenFilePicker shows the file picker configured by the facade's intent
func (m *EditorModel) OpenFilePicker() tea.Cmd {
	if !m.session.Ready() {
		return nil
	}

	log.Debugf("Opening file picker")
	m.picker = newFilePicker(m.session.Facade().PickerIntent(), m.height)
	m.pickerActive = true
	return m.picker.Init()
}

// closePicker hides the picker without selecting anything
func (m *EditorModel) closePicker() {
	m.pickerActive = false
}

// OpenFileFromPicker reads a picker selection through the storage layer.
// The result is shown read-only.
func (m *EditorModel) OpenFileFromPicker(locator string) tea.Cmd {
	if !m.session.Ready() {
		return nil
	}

	log.Debugf("Opening %s", locator)
	facade := m.session.Facade()
	return func() tea.Msg {
		doc, err := facade.OpenViaPicker(context.Background(), locator)
		return pickerFileOpenedMsg{locator: locator, doc: doc, err: err}
	}
}

// CreateFile creates an empty remote file and then reads it into the editor
func (m *EditorModel) CreateFile() tea.Cmd {
	if !m.session.Ready() {
		return nil
	}

	log.Debugf("Creating a file")
	facade := m.session.Facade()
	return func() tea.Msg {
		id, err := facade.CreateFile(context.Background())
		return fileCreatedMsg{id: id, err: err}
	}
}

// ReadFile loads a remote file and opens it for editing
func (m *EditorModel) ReadFile(id string) tea.Cmd {
	if !m.session.Ready() {
		return nil
	}

	log.Debugf("Reading file %s", id)
	facade := m.session.Facade()
	return func() tea.Msg {
		doc, err := facade.ReadFile(context.Background(), id)
		return fileReadMsg{id: id, doc: doc, err: err}
	}
}

// SaveFile writes the current fields to the open file. Without an open
// file nothing is sent.
func (m *EditorModel) SaveFile() tea.Cmd {
	if !m.session.CanSave() {
		return nil
	}

	id, _ := m.session.OpenFileID()
	name := m.Title()
	content := m.Content()

	log.Debugf("Saving %s", id)
	facade := m.session.Facade()
	return func() tea.Msg {
		err := facade.SaveFile(context.Background(), id, name, content)
		return fileSavedMsg{id: id, err: err}
	}
}

// Query lists the files this application can see
func (m *EditorModel) Query() tea.Cmd {
	if !m.session.Ready() {
		return nil
	}

	log.Debugf("Querying for files")
	facade := m.session.Facade()
	return func() tea.Msg {
		files, err := facade.QueryFiles(context.Background())
		return queryResultMsg{files: files, err: err}
	}
}

// copyContent puts the content field on the system clipboard
func (m *EditorModel) copyContent() tea.Cmd {
	content := m.Content()
	return func() tea.Msg {
		return clipboardCopiedMsg{err: clipboard.WriteAll(content)}
	}
}

func (m *EditorModel) setFields(name, content string) {
	m.doc = models.Document{Name: name, Content: content}
	m.titleEdited = false
	m.contentEdited = false

	m.titleInput.SetValue(name)
	m.titleInput.CursorEnd()
	// textarea treats a \r as a line break of its own
	m.contentInput.SetValue(strings.ReplaceAll(content, "\r\n", "\n"))
}

// applyMode locks or unlocks the inputs to match the session mode
func (m *EditorModel) applyMode() tea.Cmd {
	if m.session.Mode() != models.ModeReadWrite {
		m.titleInput.Blur()
		m.contentInput.Blur()
		return nil
	}

	if m.focus == fieldTitle {
		m.contentInput.Blur()
		return m.titleInput.Focus()
	}
	m.titleInput.Blur()
	return m.contentInput.Focus()
}

func (m *EditorModel) switchField() tea.Cmd {
	if m.focus == fieldTitle {
		m.focus = fieldContent
	} else {
		m.focus = fieldTitle
	}
	return m.applyMode()
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.pickerActive {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(pickerSizeMsg(msg.Width, msg.Height))
			return m, cmd
		}
		return m, nil

	case signInResultMsg:
		return m, m.HandleSignInResult(msg)

	case pickerFileOpenedMsg:
		if msg.err != nil {
			log.Errorf("Unable to open %s from picker: %v", msg.locator, msg.err)
			return m, nil
		}
		m.setFields(msg.doc.Name, msg.doc.Content)
		m.session.Clear()
		return m, m.applyMode()

	case fileCreatedMsg:
		if msg.err != nil {
			log.Errorf("Couldn't create file: %v", msg.err)
			return m, nil
		}
		log.Debugf("Created file %s", msg.id)
		return m, m.ReadFile(msg.id)

	case fileReadMsg:
		if msg.err != nil {
			log.Errorf("Couldn't read file %s: %v", msg.id, msg.err)
			return m, nil
		}
		m.setFields(msg.doc.Name, msg.doc.Content)
		m.session.Open(msg.id)
		return m, m.applyMode()

	case fileSavedMsg:
		if msg.err != nil {
			log.Errorf("Unable to save file %s: %v", msg.id, msg.err)
		}
		return m, nil

	case queryResultMsg:
		if msg.err != nil {
			log.Errorf("Unable to query files: %v", msg.err)
			return m, nil
		}
		m.setFields(m.settings.UI.FileListTitle, strings.Join(storage.Names(msg.files), "\n"))
		m.session.Clear()
		return m, m.applyMode()

	case clipboardCopiedMsg:
		if msg.err != nil {
			log.Warnf("Unable to copy to clipboard: %v", msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return StatusMsg("Copied content to clipboard") }

	case tea.KeyMsg:
		if m.pickerActive {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)
	}

	if m.pickerActive {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch {
	case Shortcuts.Open.Matches(key):
		return m, m.OpenFilePicker()
	case Shortcuts.Create.Matches(key):
		return m, m.CreateFile()
	case Shortcuts.Save.Matches(key):
		return m, m.SaveFile()
	case Shortcuts.Query.Matches(key):
		return m, m.Query()
	case Shortcuts.Copy.Matches(key):
		return m, m.copyContent()
	}

	// Read-only fields take no input
	if m.session.Mode() != models.ModeReadWrite {
		return m, nil
	}

	if Shortcuts.SwitchField.Matches(key) {
		return m, m.switchField()
	}

	var cmd tea.Cmd
	if m.focus == fieldTitle {
		before := m.titleInput.Value()
		m.titleInput, cmd = m.titleInput.Update(msg)
		if m.titleInput.Value() != before {
			m.titleEdited = true
		}
	} else {
		before := m.contentInput.Value()
		m.contentInput, cmd = m.contentInput.Update(msg)
		if m.contentInput.Value() != before {
			m.contentEdited = true
		}
	}
	return m, cmd
}

func (m *EditorModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && Shortcuts.Cancel.Matches(key.String()) {
		m.closePicker()
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if selected, path := m.picker.DidSelectFile(msg); selected {
		m.closePicker()
		locator, err := storage.LocatorFromPath(path)
		if err != nil {
			log.Errorf("Unable to open file from picker: %v", err)
			return m, nil
		}
		return m, m.OpenFileFromPicker(locator)
	}

	return m, cmd
}

func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	inputWidth := width - 8
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.titleInput.Width = inputWidth
	m.contentInput.SetWidth(inputWidth)

	// header, title pane, help pane and borders
	contentHeight := height - headerHeight - 12
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.contentInput.SetHeight(contentHeight)
}
