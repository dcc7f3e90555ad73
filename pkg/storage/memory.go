package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pluqqy/drivepad/pkg/models"
)

// Operation names a facade call, used to inject failures and count calls
type Operation string

const (
	OpOpen   Operation = "open"
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpSave   Operation = "save"
	OpQuery  Operation = "query"
)

// SaveRecord captures the arguments of a SaveFile call
type SaveRecord struct {
	ID      string
	Name    string
	Content string
}

// MemoryFacade is an in-process Facade. It backs the offline "memory"
// backend and the test suites.
type MemoryFacade struct {
	mu       sync.Mutex
	opts     DriveOptions
	docs     map[string]models.Document
	order    []string
	locators map[string]models.Document
	failures map[Operation]error
	calls    map[Operation]int
	saves    []SaveRecord
	newID    func() string
}

func NewMemoryFacade(opts DriveOptions) *MemoryFacade {
	if opts.NewFileName == "" {
		opts.NewFileName = "Untitled file"
	}
	return &MemoryFacade{
		opts:     opts,
		docs:     make(map[string]models.Document),
		locators: make(map[string]models.Document),
		failures: make(map[Operation]error),
		calls:    make(map[Operation]int),
		newID:    uuid.NewString,
	}
}

// NewMemoryBuilder returns a Builder that always yields facade
func NewMemoryBuilder(facade *MemoryFacade) Builder {
	return func(ctx context.Context, account *models.Account) (Facade, error) {
		return facade, nil
	}
}

// Put stores a document under id, replacing any previous one
func (m *MemoryFacade) Put(id string, doc models.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		m.order = append(m.order, id)
	}
	m.docs[id] = doc
}

// Get returns the stored document for id
func (m *MemoryFacade) Get(id string) (models.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	return doc, ok
}

// PutLocator serves doc for locator instead of reading it through vfs
func (m *MemoryFacade) PutLocator(locator string, doc models.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locators[locator] = doc
}

// Fail makes every later call to op return err. A nil err clears it.
func (m *MemoryFacade) Fail(op Operation, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, op)
		return
	}
	m.failures[op] = err
}

// SetIDGenerator replaces the uuid generator used by CreateFile
func (m *MemoryFacade) SetIDGenerator(fn func() string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.newID = fn
}

// Calls returns how many times op has been invoked
func (m *MemoryFacade) Calls(op Operation) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// Saves returns every SaveFile call in order
func (m *MemoryFacade) Saves() []SaveRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SaveRecord(nil), m.saves...)
}

func (m *MemoryFacade) begin(op Operation) error {
	m.calls[op]++
	if err, ok := m.failures[op]; ok {
		return fmt.Errorf("%s: %w: %w", op, ErrFailure, err)
	}
	return nil
}

func (m *MemoryFacade) PickerIntent() PickerIntent {
	return m.opts.Picker
}

func (m *MemoryFacade) OpenViaPicker(ctx context.Context, locator string) (*models.Document, error) {
	m.mu.Lock()
	if err := m.begin(OpOpen); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	doc, ok := m.locators[locator]
	m.mu.Unlock()

	if ok {
		return &doc, nil
	}
	return ReadLocator(ctx, locator)
}

func (m *MemoryFacade) CreateFile(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(OpCreate); err != nil {
		return "", err
	}

	id := m.newID()
	m.docs[id] = models.Document{Name: m.opts.NewFileName}
	m.order = append(m.order, id)
	return id, nil
}

func (m *MemoryFacade) ReadFile(ctx context.Context, id string) (*models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(OpRead); err != nil {
		return nil, err
	}

	doc, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("read file %s: %w", id, ErrNotFound)
	}
	return &doc, nil
}

func (m *MemoryFacade) SaveFile(ctx context.Context, id, name, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves = append(m.saves, SaveRecord{ID: id, Name: name, Content: content})
	if err := m.begin(OpSave); err != nil {
		return err
	}

	if _, ok := m.docs[id]; !ok {
		return fmt.Errorf("save file %s: %w", id, ErrNotFound)
	}
	m.docs[id] = models.Document{Name: name, Content: content}
	return nil
}

func (m *MemoryFacade) QueryFiles(ctx context.Context) ([]models.RemoteFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(OpQuery); err != nil {
		return nil, err
	}

	files := make([]models.RemoteFile, 0, len(m.order))
	for _, id := range m.order {
		files = append(files, models.RemoteFile{ID: id, Name: m.docs[id].Name})
	}
	return files, nil
}
