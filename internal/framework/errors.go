package framework

import "fmt"

// NotFoundError indicates the requested id is not in the catalog. The
// operation took no action.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("framework %q not found in catalog", e.ID)
}

// NotInstalledError indicates an operation required an installed file that is
// absent on disk.
type NotInstalledError struct {
	ID string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("framework %q is not installed", e.ID)
}

// ConflictError indicates the install target already exists and no
// resolution option was supplied. Nothing was touched.
type ConflictError struct {
	ID   string
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("framework %q already exists at %s (pass overwrite or merge)", e.ID, e.Path)
}

// CancelledError indicates the user declined an interactive flow. It is a
// declined outcome, not a failure: no mutation happened.
type CancelledError struct {
	ID string
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("update of framework %q cancelled", e.ID)
}
