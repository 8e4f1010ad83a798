// Package skills detects skill phrases in resumes and job descriptions.
package skills

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-analyzer/internal/textscan"
	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed dictionary.yaml
var defaultDictionaryYAML []byte

// Dictionary is an immutable, ordered table of skill phrases grouped by category.
type Dictionary struct {
	categories []types.SkillCategory
	phrases    []phrase
}

// phrase pairs a dictionary entry with its compiled whole-word matcher.
type phrase struct {
	name    string
	pattern *regexp.Regexp
}

type dictionaryFile struct {
	Categories []types.SkillCategory `yaml:"categories"`
}

var (
	defaultDict     *Dictionary
	defaultDictOnce sync.Once
)

// Default returns the embedded dictionary. It is parsed once per process.
func Default() *Dictionary {
	defaultDictOnce.Do(func() {
		dict, err := ParseDictionary(defaultDictionaryYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded skill dictionary is invalid: %v", err))
		}
		defaultDict = dict
	})
	return defaultDict
}

// LoadDictionary reads a dictionary YAML file from disk.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}
	return ParseDictionary(data)
}

// ParseDictionary builds a Dictionary from YAML of the form
//
//	categories:
//	  - name: technical
//	    skills: [Go, Docker]
//
// Blank phrases are skipped; a dictionary with no phrases at all is an error.
func ParseDictionary(data []byte) (*Dictionary, error) {
	var file dictionaryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary YAML: %w", err)
	}

	dict := &Dictionary{}
	for _, cat := range file.Categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return nil, fmt.Errorf("dictionary category without a name")
		}
		kept := make([]string, 0, len(cat.Skills))
		for _, s := range cat.Skills {
			if strings.TrimSpace(s) == "" {
				continue
			}
			kept = append(kept, s)
			dict.phrases = append(dict.phrases, phrase{name: s, pattern: wholeWord(s)})
		}
		dict.categories = append(dict.categories, types.SkillCategory{Name: name, Skills: kept})
	}

	if len(dict.phrases) == 0 {
		return nil, fmt.Errorf("dictionary contains no skills")
	}
	return dict, nil
}

// wholeWord compiles a case-insensitive matcher for s bounded by word boundaries.
// QuoteFold guarantees compilation for any phrase.
func wholeWord(s string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + textscan.QuoteFold(s) + `\b`)
}

// Categories returns a copy of the category table in dictionary order.
func (d *Dictionary) Categories() []types.SkillCategory {
	out := make([]types.SkillCategory, len(d.categories))
	for i, c := range d.categories {
		out[i] = types.SkillCategory{Name: c.Name, Skills: append([]string(nil), c.Skills...)}
	}
	return out
}

// Phrases returns every phrase in dictionary order.
func (d *Dictionary) Phrases() []string {
	out := make([]string, len(d.phrases))
	for i, p := range d.phrases {
		out[i] = p.name
	}
	return out
}

// Len reports the number of phrases.
func (d *Dictionary) Len() int {
	return len(d.phrases)
}
