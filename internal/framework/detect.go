package framework

// Comparison holds both texts the detector compared so callers can render a
// side-by-side view. The detector itself does no diffing beyond equality.
type Comparison struct {
	ID         string
	Customized bool
	Installed  string
	Canonical  string
}

// DetectCustomization compares the installed content for the given id
// against the canonical catalog content. An unreadable canonical source
// degrades to "not customized" so that update attempts are never blocked by
// a missing reference file; an unreadable installed file is a real error.
func (m *Manager) DetectCustomization(id string) (Comparison, error) {
	desc, ok, err := m.catalog.Get(id)
	if err != nil {
		return Comparison{}, err
	}
	if !ok {
		return Comparison{}, &NotFoundError{ID: id}
	}

	installed, err := m.adapter.Read(m.pp.FrameworkFile(id))
	if err != nil {
		return Comparison{}, err
	}

	canonical, err := m.catalog.Content(desc)
	if err != nil {
		m.logger.Printf("detect %s: canonical content unreadable, assuming unmodified: %v", id, err)
		return Comparison{ID: id, Customized: false, Installed: string(installed)}, nil
	}

	return Comparison{
		ID:         id,
		Customized: string(installed) != string(canonical),
		Installed:  string(installed),
		Canonical:  string(canonical),
	}, nil
}
