package models

// Advanced holds the optional secondary description fields that can be
// attached to an item after creation. Scalars follow the Dublin Core
// element names; the list fields are ordered.
type Advanced struct {
	Date      string `json:"date,omitempty"`
	Type      string `json:"type,omitempty"`
	Format    string `json:"format,omitempty"`
	Coverage  string `json:"coverage,omitempty"`
	Rights    string `json:"rights,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	Language  string `json:"language,omitempty"`
	Source    string `json:"source,omitempty"`

	Creators     []string `json:"creators,omitempty"`
	Contributors []string `json:"contributors,omitempty"`
	Identifiers  []string `json:"identifiers,omitempty"`
}

// Merge applies patch field-by-field. Non-empty scalar fields overwrite,
// non-nil list fields replace. Fields absent from patch are kept.
func (a *Advanced) Merge(patch *Advanced) {
	if patch == nil {
		return
	}
	if patch.Date != "" {
		a.Date = patch.Date
	}
	if patch.Type != "" {
		a.Type = patch.Type
	}
	if patch.Format != "" {
		a.Format = patch.Format
	}
	if patch.Coverage != "" {
		a.Coverage = patch.Coverage
	}
	if patch.Rights != "" {
		a.Rights = patch.Rights
	}
	if patch.Publisher != "" {
		a.Publisher = patch.Publisher
	}
	if patch.Language != "" {
		a.Language = patch.Language
	}
	if patch.Source != "" {
		a.Source = patch.Source
	}
	if patch.Creators != nil {
		a.Creators = append([]string(nil), patch.Creators...)
	}
	if patch.Contributors != nil {
		a.Contributors = append([]string(nil), patch.Contributors...)
	}
	if patch.Identifiers != nil {
		a.Identifiers = append([]string(nil), patch.Identifiers...)
	}
}

// Clone returns a deep copy, or nil for a nil receiver.
func (a *Advanced) Clone() *Advanced {
	if a == nil {
		return nil
	}
	out := *a
	out.Creators = append([]string(nil), a.Creators...)
	out.Contributors = append([]string(nil), a.Contributors...)
	out.Identifiers = append([]string(nil), a.Identifiers...)
	return &out
}
