package storage

// ErrNotFound is returned when a quote doesn't exist in the store.
type ErrNotFound struct {
	ID string
}

func (e ErrNotFound) Error() string {
	if e.ID == "" {
		return "quote not found"
	}

	return "quote not found: " + e.ID
}
