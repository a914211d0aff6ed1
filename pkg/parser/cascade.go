package parser

import (
	"github.com/stparse/stparse/pkg/models"
)

// Strategy turns statement text into draft transactions. Strategies
// never mutate the input and may re-derive the same transaction another
// strategy already found; duplicate suppression happens after
// validation, not here. External assist implementations plug in behind
// this same signature.
type Strategy func(text string, mapping *models.ColumnMapping) []models.Draft

// stage is one step of the extraction cascade. A stage with stopBelow 0
// always runs; otherwise it runs only while the accumulated draft count
// is still below the threshold, so cheap precise strategies are
// preferred and fuzzy ones are a last resort.
type stage struct {
	name      string
	stopBelow int
	run       Strategy
}

// Thresholds for the cascade stages.
const (
	stopAdaptive  = 20
	stopFallback  = 5
	stopMultiLine = 3
	stopAssist    = 1
)

// runCascade executes the stages in order and reports which ones
// contributed drafts. A stage that finds nothing simply falls through.
func runCascade(stages []stage, text string, mapping *models.ColumnMapping) ([]models.Draft, []string) {
	var drafts []models.Draft
	var contributed []string

	for _, st := range stages {
		if st.stopBelow > 0 && len(drafts) >= st.stopBelow {
			continue
		}
		found := st.run(text, mapping)
		if len(found) > 0 {
			contributed = append(contributed, st.name)
			drafts = append(drafts, found...)
		}
	}

	return drafts, contributed
}

// stagesFor returns the cascade variant for a statement type.
func stagesFor(stype models.StatementType, assist Strategy) []stage {
	var stages []stage

	switch stype {
	case models.StatementCreditCard:
		stages = []stage{
			{"columnar", 0, extractColumnar},
			{"card_line", stopAdaptive, extractCardLine},
			{"single_line", stopAdaptive, extractSingleLine},
			{"regex_fallback", stopFallback, extractRegexFallback},
		}
	case models.StatementUPI:
		stages = []stage{
			{"multi_line", 0, extractMultiLine},
			{"upi_line", stopMultiLine, extractUPILine},
			{"single_line", stopAdaptive, extractSingleLine},
			{"regex_fallback", stopFallback, extractRegexFallback},
		}
	default: // bank and unknown share the generic cascade
		stages = []stage{
			{"columnar", 0, extractColumnar},
			{"fixed_width", stopAdaptive, extractFixedWidth},
			{"single_line", stopAdaptive, extractSingleLine},
			{"multi_line", stopMultiLine, extractMultiLine},
			{"regex_fallback", stopFallback, extractRegexFallback},
		}
	}

	if assist != nil {
		stages = append(stages, stage{"assist", stopAssist, assist})
	}
	return stages
}
