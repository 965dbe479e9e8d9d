package registry

import (
	"github.com/complyscan/complyscan/internal/detectors"
	"github.com/complyscan/complyscan/internal/types"
)

// NewAccessibility builds the WCAG 2.1 catalog. Check ids are the numeric
// success criteria they evaluate.
func NewAccessibility() (*Registry, error) {
	return New(types.TaxonomyAccessibility, accessibilityChecks())
}

func accessibilityChecks() []CheckDefinition {
	return []CheckDefinition{
		// Perceivable
		{
			ID: "WCAG-1.1.1", Category: types.CatPerceivable,
			Name:        "Non-text Content",
			Description: "Images carry alternative text.",
			Severity:    types.SevCritical, Level: types.LevelA, Automated: true,
			References: []string{"WCAG 1.1.1"},
			Run:        detectors.ImgAltText,
		},
		{
			ID: "WCAG-1.3.1", Category: types.CatPerceivable,
			Name:        "Info and Relationships",
			Description: "Heading levels are sequential and structure is semantic.",
			Severity:    types.SevHigh, Level: types.LevelA, Automated: true,
			References: []string{"WCAG 1.3.1"},
			Run:        detectors.HeadingStructure,
		},
		{
			ID: "WCAG-1.4.3", Category: types.CatPerceivable,
			Name:        "Contrast (Minimum)",
			Description: "Text contrast meets 4.5:1 (3:1 for large text).",
			Severity:    types.SevHigh, Level: types.LevelAA, Automated: false,
			References: []string{"WCAG 1.4.3"},
			Run:        detectors.ColorContrast,
		},
		{
			ID: "WCAG-1.4.4", Category: types.CatPerceivable,
			Name:        "Resize Text",
			Description: "The viewport does not block user zoom.",
			Severity:    types.SevHigh, Level: types.LevelAA, Automated: true,
			References: []string{"WCAG 1.4.4"},
			Run:        detectors.ViewportZoom,
		},

		// Operable
		{
			ID: "WCAG-2.1.1", Category: types.CatOperable,
			Name:        "Keyboard",
			Description: "All interaction is reachable from the keyboard.",
			Severity:    types.SevCritical, Level: types.LevelA, Automated: true,
			References: []string{"WCAG 2.1.1"},
			Run:        detectors.ClickableNonInteractive,
		},
		{
			ID: "WCAG-2.4.1", Category: types.CatOperable,
			Name:        "Bypass Blocks",
			Description: "A skip link jumps past repeated navigation.",
			Severity:    types.SevMedium, Level: types.LevelA, Automated: true,
			References: []string{"WCAG 2.4.1"},
			Run:        detectors.SkipLinks,
		},
		{
			ID: "WCAG-2.4.2", Category: types.CatOperable,
			Name:        "Page Titled",
			Description: "Every page sets a descriptive title.",
			Severity:    types.SevHigh, Level: types.LevelA, Automated: true,
			References: []string{"WCAG 2.4.2"},
			Run:        detectors.PageTitles,
		},
		{
			ID: "WCAG-2.2.2", Category: types.CatOperable,
			Name:        "Pause, Stop, Hide",
			Description: "Autoplaying media can be paused.",
			Severity:    types.SevMedium, Level: types.LevelA, Automated: true,
			References: []string{"WCAG 2.2.2"},
			Run:        detectors.AutoplayMedia,
		},
		{
			ID: "WCAG-2.4.9", Category: types.CatOperable,
			Name:        "Link Purpose (Link Only)",
			Description: "Link text describes its destination out of context.",
			Severity:    types.SevLow, Level: types.LevelAAA, Automated: true,
			References: []string{"WCAG 2.4.9"},
			Run:        detectors.LinkPurpose,
		},

		// Understandable
		{
			ID: "WCAG-3.1.1", Category: types.CatUnderstandable,
			Name:        "Language of Page",
			Description: "The html element declares its language.",
			Severity:    types.SevHigh, Level: types.LevelA, Automated: true,
			References: []string{"WCAG 3.1.1"},
			Run:        detectors.DocumentLanguage,
		},
		{
			ID: "WCAG-3.3.2", Category: types.CatUnderstandable,
			Name:        "Labels or Instructions",
			Description: "Form controls have label associations.",
			Severity:    types.SevCritical, Level: types.LevelA, Automated: true,
			References: []string{"WCAG 3.3.2"},
			Run:        detectors.FormLabels,
		},
		{
			ID: "WCAG-3.2.2", Category: types.CatUnderstandable,
			Name:        "On Input",
			Description: "Changing a control does not submit the form by itself.",
			Severity:    types.SevMedium, Level: types.LevelA, Automated: true,
			References: []string{"WCAG 3.2.2"},
			Run:        detectors.OnInputContextChange,
		},

		// Robust
		{
			ID: "WCAG-4.1.1", Category: types.CatRobust,
			Name:        "Parsing",
			Description: "Element ids are unique within a document.",
			Severity:    types.SevMedium, Level: types.LevelA, Automated: true,
			References: []string{"WCAG 4.1.1"},
			Run:        detectors.DuplicateIDs,
		},
		{
			ID: "WCAG-4.1.2", Category: types.CatRobust,
			Name:        "Name, Role, Value",
			Description: "ARIA roles are valid.",
			Severity:    types.SevHigh, Level: types.LevelA, Automated: true,
			References: []string{"WCAG 4.1.2"},
			Run:        detectors.ARIARoleValidity,
		},
		{
			ID: "WCAG-4.1.3", Category: types.CatRobust,
			Name:        "Status Messages",
			Description: "Dynamic updates are announced via live regions.",
			Severity:    types.SevMedium, Level: types.LevelAA, Automated: true,
			References: []string{"WCAG 4.1.3"},
			Run:        detectors.StatusMessages,
		},
	}
}
