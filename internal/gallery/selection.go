package gallery

// Selection-set operations. All synchronous, idempotent set arithmetic:
// adding a present ID or removing an absent one is a no-op. Membership is
// independent of any active filter and is never cleared implicitly.

// SelectPhoto adds a photo ID to the selection set
func (s *Store) SelectPhoto(photoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected[photoID] = struct{}{}
}

// DeselectPhoto removes a photo ID from the selection set
func (s *Store) DeselectPhoto(photoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selected, photoID)
}

// TogglePhotoSelection flips a photo ID's membership in the selection set
func (s *Store) TogglePhotoSelection(photoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selected[photoID]; ok {
		delete(s.selected, photoID)
	} else {
		s.selected[photoID] = struct{}{}
	}
}

// ClearSelection empties the selection set
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]struct{})
}

// SelectAll selects every photo currently in the list, filtered or not.
// Callers wanting "select all visible" must filter before calling.
func (s *Store) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.photos {
		s.selected[s.photos[i].ID] = struct{}{}
	}
}

// IsSelected reports whether the photo ID is in the selection set
func (s *Store) IsSelected(photoID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[photoID]
	return ok
}

// SelectedIDs returns the selected photo IDs in photo-list order; IDs not
// matching any current photo come last in unspecified order.
func (s *Store) SelectedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.selected))
	seen := make(map[string]struct{}, len(s.selected))
	for i := range s.photos {
		id := s.photos[i].ID
		if _, ok := s.selected[id]; ok {
			ids = append(ids, id)
			seen[id] = struct{}{}
		}
	}
	for id := range s.selected {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// SelectionCount returns the number of selected photo IDs
func (s *Store) SelectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}
