package notes

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

type exportFile struct {
	Note []Note `toml:"note"`
}

// Export writes notes as a TOML document of [[note]] tables.
func Export(w io.Writer, list []Note) error {
	if err := toml.NewEncoder(w).Encode(exportFile{Note: list}); err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	return nil
}

// Import reads a document written by Export. Notes without a title are
// rejected so a bad file never half-loads.
func Import(r io.Reader) ([]Note, error) {
	var f exportFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	for i, n := range f.Note {
		if n.ID == "" {
			return nil, fmt.Errorf("note[%d]: id is required", i)
		}
		if n.Title == "" {
			return nil, fmt.Errorf("note[%d] %s: %w", i, n.ID, ErrTitleRequired)
		}
		if n.UpdatedAt.IsZero() {
			f.Note[i].UpdatedAt = n.CreatedAt
		}
	}
	return f.Note, nil
}
