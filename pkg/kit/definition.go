package kit

import (
	"github.com/BurntSushi/toml"

	"github.com/kitplan/kitplan/pkg/errors"
)

// Definition is the on-disk description of a kit: generation options
// plus a list of rectangular parts. Kits with non-rectangular pieces
// are assembled in code instead; the TOML form covers the common
// box-and-panel case.
//
// Example:
//
//	name = "shed"
//	scale = "1:24"
//	formats = ["pdf", "svg"]
//
//	[[part]]
//	name = "wall-front"
//	width = "4 m"
//	height = "2.4 m"
//
//	[[part.opening]]
//	name = "door"
//	width = "80 cm"
//	height = "1.9 m"
//	offset_x = "60 cm"
//	offset_y = "0"
type Definition struct {
	Options
	Parts []PartDefinition `toml:"part"`
}

// PartDefinition describes one rectangular part.
type PartDefinition struct {
	Name     string              `toml:"name"`
	Width    string              `toml:"width"`
	Height   string              `toml:"height"`
	Openings []OpeningDefinition `toml:"opening"`
}

// OpeningDefinition describes a rectangular cutout in a part.
type OpeningDefinition struct {
	Name    string `toml:"name"`
	Width   string `toml:"width"`
	Height  string `toml:"height"`
	OffsetX string `toml:"offset_x"`
	OffsetY string `toml:"offset_y"`
}

// LoadDefinition reads a kit definition from a TOML file.
func LoadDefinition(path string) (*Definition, error) {
	var def Definition
	if _, err := toml.DecodeFile(path, &def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading kit definition %q", path)
	}
	return &def, nil
}

// ParseDefinition reads a kit definition from TOML bytes.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing kit definition")
	}
	return &def, nil
}

// Components turns the part list into buildable components.
func (d *Definition) Components() ([]Component, error) {
	if len(d.Parts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "kit definition has no parts")
	}
	parts := make([]Component, 0, len(d.Parts))
	for _, pd := range d.Parts {
		if pd.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "part without a name")
		}
		panel := NewPanel(pd.Name, pd.Width, pd.Height)
		for _, od := range pd.Openings {
			if err := panel.AddOpening(od.Name, od.Width, od.Height, od.OffsetX, od.OffsetY); err != nil {
				code := errors.GetCode(err)
				if code == "" {
					code = errors.ErrCodeInvalidInput
				}
				return nil, errors.Wrap(code, err, "opening %q in part %q", od.Name, pd.Name)
			}
		}
		parts = append(parts, panel)
	}
	return parts, nil
}
