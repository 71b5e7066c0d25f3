package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SkillSet is the required skills of one industry, split by contribution
// weight.
type SkillSet struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// IndustryCatalog maps industry labels to their required skill sets, plus an
// alias table normalizing label variants. Read-only after load; safe to share
// across goroutines without locking.
//
// Iteration order matters: field inference takes the first matching label, so
// the catalog preserves the asset's key order instead of relying on Go map
// iteration.
type IndustryCatalog struct {
	labels   []string
	mappings map[string]SkillSet

	aliasPhrases []string
	aliases      map[string]string
}

// DefaultSkillSet is the fallback for labels absent from the catalog.
func DefaultSkillSet() SkillSet {
	return SkillSet{
		Primary:   []string{"Full-Stack", "Back-End", "Front-End"},
		Secondary: []string{"Cloud", "DevOps", "UI/UX"},
	}
}

func EmptyCatalog() *IndustryCatalog {
	return &IndustryCatalog{
		mappings: map[string]SkillSet{},
		aliases:  map[string]string{},
	}
}

// NewCatalog builds a catalog from explicit entries, preserving their order.
// Used by tests and as the target of the asset loader.
func NewCatalog(labels []string, mappings map[string]SkillSet, aliasPhrases []string, aliases map[string]string) *IndustryCatalog {
	c := EmptyCatalog()
	for _, l := range labels {
		if ss, ok := mappings[l]; ok {
			c.labels = append(c.labels, l)
			c.mappings[l] = ss
		}
	}
	for _, a := range aliasPhrases {
		if canonical, ok := aliases[a]; ok {
			c.aliasPhrases = append(c.aliasPhrases, a)
			c.aliases[a] = canonical
		}
	}
	return c
}

// LoadCatalog reads the industry asset from disk. On any error the caller is
// expected to degrade to EmptyCatalog rather than fail startup.
func LoadCatalog(path string) (*IndustryCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open industry catalog: %w", err)
	}
	defer f.Close()

	c := EmptyCatalog()
	dec := json.NewDecoder(f)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("parse industry catalog: %w", err)
	}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, fmt.Errorf("parse industry catalog: %w", err)
		}
		switch key {
		case "mappings":
			if err := decodeMappings(dec, c); err != nil {
				return nil, fmt.Errorf("parse industry mappings: %w", err)
			}
		case "aliases":
			if err := decodeAliases(dec, c); err != nil {
				return nil, fmt.Errorf("parse industry aliases: %w", err)
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("parse industry catalog: %w", err)
			}
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("parse industry catalog: %w", err)
	}
	return c, nil
}

func decodeMappings(dec *json.Decoder, c *IndustryCatalog) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		label, err := stringToken(dec)
		if err != nil {
			return err
		}
		var ss SkillSet
		if err := dec.Decode(&ss); err != nil {
			return err
		}
		if _, dup := c.mappings[label]; !dup {
			c.labels = append(c.labels, label)
		}
		c.mappings[label] = ss
	}
	return expectDelim(dec, '}')
}

func decodeAliases(dec *json.Decoder, c *IndustryCatalog) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		phrase, err := stringToken(dec)
		if err != nil {
			return err
		}
		var canonical string
		if err := dec.Decode(&canonical); err != nil {
			return err
		}
		if _, dup := c.aliases[phrase]; !dup {
			c.aliasPhrases = append(c.aliasPhrases, phrase)
		}
		c.aliases[phrase] = canonical
	}
	return expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || d != want {
		return fmt.Errorf("unexpected token %v, want %v", tok, want)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("unexpected token %v, want string", tok)
	}
	return s, nil
}

// Labels returns the catalog's industry labels in asset order.
func (c *IndustryCatalog) Labels() []string {
	return c.labels
}

// Lookup resolves a label's skill sets, falling back to the default pair for
// unknown labels.
func (c *IndustryCatalog) Lookup(label string) SkillSet {
	if ss, ok := c.mappings[label]; ok {
		return ss
	}
	return DefaultSkillSet()
}

// ResolveAlias scans the text for known alias phrases, case-insensitively,
// returning the canonical label of the first phrase found.
func (c *IndustryCatalog) ResolveAlias(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, phrase := range c.aliasPhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return c.aliases[phrase], true
		}
	}
	return "", false
}
