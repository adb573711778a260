package mockcms

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sync"

	"cms-console/internal/content/domain"
)

var (
	ErrUsernameTaken     = errors.New("username already taken")
	ErrWrongCredentials  = errors.New("wrong username or password")
	ErrUnknownUser       = errors.New("user is not logged in")
	ErrCollectionExists  = errors.New("collection already exists")
	ErrNoSuchCollection  = errors.New("collection does not exist")
	ErrDocumentExists    = errors.New("document already exists")
	ErrNoSuchDocument    = errors.New("document does not exist")
	ErrDocumentRejected  = errors.New("document does not match the collection structure")
	ErrEmptyDocumentName = errors.New("document name is required")
)

type user struct {
	id          domain.UserID
	password    string
	permissions map[string]any
}

type collection struct {
	name      string
	structure json.RawMessage
	fields    []domain.CollectionField
	documents []document
}

type document struct {
	name string
	data map[string]any
}

// Store keeps users, collections and documents in memory. Collections and
// documents are listed in creation order.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*user
	sessions    map[domain.UserID]string
	collections []*collection
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*user),
		sessions: make(map[domain.UserID]string),
	}
}

func (s *Store) Register(username, password string, permissions map[string]any) (domain.UserID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return "", fmt.Errorf("%w: %q", ErrUsernameTaken, username)
	}
	id, err := newUserID()
	if err != nil {
		return "", err
	}
	s.users[username] = &user{id: id, password: password, permissions: permissions}
	s.sessions[id] = username
	return id, nil
}

func (s *Store) Login(username, password string) (domain.UserID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.users[username]
	if !ok || account.password != password {
		return "", ErrWrongCredentials
	}
	s.sessions[account.id] = username
	return account.id, nil
}

func (s *Store) Logout(id domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrUnknownUser
	}
	delete(s.sessions, id)
	return nil
}

func (s *Store) CreateCollection(id domain.UserID, name string, structure json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authorize(id); err != nil {
		return err
	}
	if s.find(name) != nil {
		return fmt.Errorf("%w: %q", ErrCollectionExists, name)
	}

	created := &collection{name: name}
	if len(structure) > 0 && string(structure) != "null" {
		fields, err := domain.DecodeStructure(structure)
		if err != nil {
			return err
		}
		created.structure = slices.Clone(structure)
		created.fields = fields
	}
	s.collections = append(s.collections, created)
	return nil
}

// CollectionEntry is one collection as listed: a nil structure marks a
// schemaless collection.
type CollectionEntry struct {
	Name      string
	Structure json.RawMessage
}

func (s *Store) Collections() []CollectionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]CollectionEntry, len(s.collections))
	for i, c := range s.collections {
		entries[i] = CollectionEntry{Name: c.name, Structure: c.structure}
	}
	return entries
}

type Document struct {
	Name string
	Data map[string]any
}

func (s *Store) Documents(id domain.UserID, collectionName string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.collectionFor(id, collectionName)
	if err != nil {
		return nil, err
	}
	documents := make([]Document, len(c.documents))
	for i, d := range c.documents {
		documents[i] = Document{Name: d.name, Data: d.data}
	}
	return documents, nil
}

func (s *Store) Document(id domain.UserID, collectionName, name string) (Document, error) {
	documents, err := s.Documents(id, collectionName)
	if err != nil {
		return Document{}, err
	}
	for _, d := range documents {
		if d.Name == name {
			return d, nil
		}
	}
	return Document{}, fmt.Errorf("%w: %q", ErrNoSuchDocument, name)
}

func (s *Store) Insert(id domain.UserID, collectionName string, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.collectionFor(id, collectionName)
	if err != nil {
		return err
	}
	if doc.Name == "" {
		return ErrEmptyDocumentName
	}
	if c.index(doc.Name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDocumentExists, doc.Name)
	}
	if err := c.check(doc); err != nil {
		return err
	}
	c.documents = append(c.documents, document{name: doc.Name, data: doc.Data})
	return nil
}

func (s *Store) Update(id domain.UserID, collectionName string, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.collectionFor(id, collectionName)
	if err != nil {
		return err
	}
	i := c.index(doc.Name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNoSuchDocument, doc.Name)
	}
	if err := c.check(doc); err != nil {
		return err
	}
	c.documents[i] = document{name: doc.Name, data: doc.Data}
	return nil
}

func (s *Store) Delete(id domain.UserID, collectionName, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.collectionFor(id, collectionName)
	if err != nil {
		return err
	}
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNoSuchDocument, name)
	}
	c.documents = slices.Delete(c.documents, i, i+1)
	return nil
}

func (s *Store) authorize(id domain.UserID) error {
	if _, ok := s.sessions[id]; !ok {
		return ErrUnknownUser
	}
	return nil
}

func (s *Store) find(name string) *collection {
	for _, c := range s.collections {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (s *Store) collectionFor(id domain.UserID, name string) (*collection, error) {
	if err := s.authorize(id); err != nil {
		return nil, err
	}
	c := s.find(name)
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchCollection, name)
	}
	return c, nil
}

func (c *collection) index(name string) int {
	return slices.IndexFunc(c.documents, func(d document) bool { return d.name == name })
}

// check applies the structure to a document the way the content service
// does: declared fields must be present and well typed, unique fields may not
// repeat a value held by another document and value constraints must hold.
// Undeclared keys are accepted.
func (c *collection) check(doc Document) error {
	for _, field := range c.fields {
		value, present := doc.Data[field.Name]
		if !present || value == nil {
			if field.IsNullable() || field.IsAny() {
				continue
			}
			return fmt.Errorf("%w: field %q is required", ErrDocumentRejected, field.Name)
		}

		text := domain.FromWire(field.Type, value)
		if !field.IsAny() && !matchesType(field.Type, value) {
			return fmt.Errorf("%w: field %q is not %s", ErrDocumentRejected, field.Name, field.Type.DisplayName())
		}
		if err := domain.CheckValueConstraint(field, text); err != nil {
			return fmt.Errorf("%w: field %q: %w", ErrDocumentRejected, field.Name, err)
		}
		if field.IsUnique() && c.holds(doc.Name, field, text) {
			return fmt.Errorf("%w: field %q must be unique", ErrDocumentRejected, field.Name)
		}
	}
	return nil
}

func (c *collection) holds(except string, field domain.CollectionField, text string) bool {
	for _, other := range c.documents {
		if other.name == except {
			continue
		}
		if value, ok := other.data[field.Name]; ok && value != nil && domain.FromWire(field.Type, value) == text {
			return true
		}
	}
	return false
}

func matchesType(fieldType domain.FieldType, value any) bool {
	switch fieldType {
	case domain.FieldTypeString:
		_, ok := value.(string)
		return ok
	case domain.FieldTypeBool:
		_, ok := value.(bool)
		return ok
	case domain.FieldTypeInt:
		number, ok := value.(json.Number)
		if !ok {
			return false
		}
		_, err := number.Int64()
		return err == nil
	case domain.FieldTypeFloat:
		number, ok := value.(json.Number)
		if !ok {
			return false
		}
		_, err := number.Float64()
		return err == nil
	case domain.FieldTypeArray:
		_, ok := value.([]any)
		return ok
	case domain.FieldTypeObject:
		_, ok := value.(map[string]any)
		return ok
	}
	return false
}

// newUserID draws a random 128-bit account id.
func newUserID() (domain.UserID, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	number, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generating user id: %w", err)
	}
	return domain.UserID(number.String()), nil
}
