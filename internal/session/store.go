// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package session owns the live document sessions for the web server. Each
// uploaded PDF becomes one Document: created on upload, destroyed on
// cleanup or shutdown. The corpus inside a document is read-only for the
// document's lifetime, so concurrent match requests may share it freely.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"pdf-bounds-matching/internal/document"
)

// Document is one uploaded PDF session: the stored temp file plus the
// corpus and text extracted from it.
type Document struct {
	ID         string
	Filename   string
	Path       string
	Corpus     *document.Corpus
	FullText   string
	PageCount  int
	UploadedAt time.Time
}

// Store is a mutex-guarded map of document id to session.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// NewID returns a random 16-byte hex identifier for an uploaded document.
func NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate document id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Put registers a document session.
func (s *Store) Put(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
}

// Get returns the document for id, if present.
func (s *Store) Get(id string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Remove destroys the session for id, deleting its temp file. Removing an
// unknown id reports false with no error.
func (s *Store) Remove(id string) (bool, error) {
	s.mu.Lock()
	doc, ok := s.docs[id]
	if ok {
		delete(s.docs, id)
	}
	s.mu.Unlock()

	if !ok {
		return false, nil
	}
	return true, removeFile(doc.Path)
}

// Close destroys every remaining session. Used at server shutdown.
func (s *Store) Close() error {
	s.mu.Lock()
	docs := s.docs
	s.docs = make(map[string]*Document)
	s.mu.Unlock()

	var firstErr error
	for _, doc := range docs {
		if err := removeFile(doc.Path); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func removeFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stored file: %w", err)
	}
	return nil
}
