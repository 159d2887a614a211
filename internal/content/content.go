package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Locale string

const (
	LocaleHindi   Locale = "hindi"
	LocaleEnglish Locale = "english"
)

// Label keys present in every locale of the catalog.
const (
	LabelBudgetRejected    = "budget_rejected"
	LabelSavingsPrompt     = "savings_prompt"
	LabelSavingsPositive   = "savings_positive"
	LabelSavingsWarning    = "savings_warning"
	LabelAnswerError       = "answer_error"
	LabelSpeechUnavailable = "speech_unavailable"
)

var requiredLabels = []string{
	LabelBudgetRejected,
	LabelSavingsPrompt,
	LabelSavingsPositive,
	LabelSavingsWarning,
	LabelAnswerError,
	LabelSpeechUnavailable,
}

const (
	storiesPerLocale = 2
	stepsPerLocale   = 4
)

// ParseLocale validates a raw locale value.
func ParseLocale(value string) (Locale, error) {
	switch Locale(value) {
	case LocaleHindi, LocaleEnglish:
		return Locale(value), nil
	default:
		return "", fmt.Errorf("unknown locale: %q", value)
	}
}

type Story struct {
	ID    int    `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Src   string `yaml:"src" json:"src"`
}

type Step struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type localeSet struct {
	SpeechLang string            `yaml:"speech_lang"`
	Labels     map[string]string `yaml:"labels"`
	Stories    []Story           `yaml:"stories"`
	Steps      []Step            `yaml:"steps"`
}

type catalogFile struct {
	Locales map[Locale]localeSet `yaml:"locales"`
}

// Catalog holds every locale-dependent literal keyed by locale and identifier.
type Catalog struct {
	locales map[Locale]localeSet
}

//go:embed catalog.yaml
var defaultCatalog []byte

// Load returns the embedded catalog, or the one at path when path is non-empty.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content catalog %s: %w", path, err)
		}
		data = fileData
	}

	var parsed catalogFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse content catalog: %w", err)
	}

	catalog := &Catalog{locales: parsed.Locales}
	if err := catalog.validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (c *Catalog) validate() error {
	for _, locale := range []Locale{LocaleHindi, LocaleEnglish} {
		set, ok := c.locales[locale]
		if !ok {
			return fmt.Errorf("content catalog is missing locale %s", locale)
		}

		if set.SpeechLang == "" {
			return fmt.Errorf("locale %s is missing speech_lang", locale)
		}

		for _, key := range requiredLabels {
			if set.Labels[key] == "" {
				return fmt.Errorf("locale %s is missing label %s", locale, key)
			}
		}

		if len(set.Stories) != storiesPerLocale {
			return fmt.Errorf("locale %s must have %d stories, has %d", locale, storiesPerLocale, len(set.Stories))
		}

		if len(set.Steps) != stepsPerLocale {
			return fmt.Errorf("locale %s must have %d steps, has %d", locale, stepsPerLocale, len(set.Steps))
		}
	}

	return nil
}

// Label returns the literal for the given locale and key.
func (c *Catalog) Label(locale Locale, key string) string {
	return c.locales[locale].Labels[key]
}

// SpeechLang returns the recognizer language tag for the locale.
func (c *Catalog) SpeechLang(locale Locale) string {
	return c.locales[locale].SpeechLang
}

// Stories returns the audio story list for the locale.
func (c *Catalog) Stories(locale Locale) []Story {
	stories := c.locales[locale].Stories
	out := make([]Story, len(stories))
	copy(out, stories)
	return out
}

// Story looks up a single story by id within the locale.
func (c *Catalog) Story(locale Locale, id int) (Story, bool) {
	for _, story := range c.locales[locale].Stories {
		if story.ID == id {
			return story, true
		}
	}
	return Story{}, false
}

// Steps returns the guided step list for the locale.
func (c *Catalog) Steps(locale Locale) []Step {
	steps := c.locales[locale].Steps
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// StepCount is the number of guided steps per locale.
func (c *Catalog) StepCount() int {
	return stepsPerLocale
}
