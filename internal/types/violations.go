package types

import "fmt"

// Rule identifies one data-quality rule. The set is closed: every rule the
// validator knows about is declared here with its description.
type Rule int

// Known rules.
const (
	RuleFarmDistance Rule = iota + 1
	RuleWetWeight
	RuleDryWeightSD
	RuleDuplicatePhotos
	RuleMultipleMeasurements
)

// AllRules lists every rule in declaration order.
var AllRules = []Rule{
	RuleFarmDistance,
	RuleWetWeight,
	RuleDryWeightSD,
	RuleDuplicatePhotos,
	RuleMultipleMeasurements,
}

// Description returns the human-readable statement of the rule.
func (r Rule) Description() string {
	switch r {
	case RuleFarmDistance:
		return "GPS coordinates of farm within 200 meters of another recorded farm"
	case RuleWetWeight:
		return "Dry weight measurement exceeds the corresponding wet weight measurement"
	case RuleDryWeightSD:
		return "Dry weight is outside SD of all other submissions for the same crop"
	case RuleDuplicatePhotos:
		return "Photo submitted is a duplicate of another photo that was submitted"
	case RuleMultipleMeasurements:
		return "Multiple measurements for the same crop in a single farm"
	default:
		return fmt.Sprintf("unknown rule %d", int(r))
	}
}

// Code returns the stable machine identifier of the rule.
func (r Rule) Code() string {
	switch r {
	case RuleFarmDistance:
		return "farm_distance"
	case RuleWetWeight:
		return "wet_weight"
	case RuleDryWeightSD:
		return "dry_weight_sd"
	case RuleDuplicatePhotos:
		return "duplicate_photos"
	case RuleMultipleMeasurements:
		return "multiple_measurements"
	default:
		return "unknown"
	}
}

func (r Rule) String() string {
	return r.Code()
}

// MarshalText encodes the rule as its code.
func (r Rule) MarshalText() ([]byte, error) {
	if r.Code() == "unknown" {
		return nil, fmt.Errorf("cannot marshal unknown rule %d", int(r))
	}
	return []byte(r.Code()), nil
}

// UnmarshalText decodes a rule from its code.
func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := parseRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// parseRule resolves a rule code.
func parseRule(code string) (Rule, error) {
	for _, rule := range AllRules {
		if rule.Code() == code {
			return rule, nil
		}
	}
	return 0, fmt.Errorf("unknown rule code %q", code)
}

// ViolationReport is the result of one check: the rule that was evaluated and
// the offending data points. An empty DataPoint means nothing was flagged.
// Items are full records, pair descriptions or image identifiers depending on
// the check.
type ViolationReport struct {
	Rule         Rule   `json:"rule"`
	ViolatedRule string `json:"violated_rule"`
	DataPoint    []any  `json:"data_point"`
}

// NewViolationReport builds a report for rule. DataPoint is never nil so the
// report always encodes an array.
func NewViolationReport(rule Rule, dataPoint []any) ViolationReport {
	if dataPoint == nil {
		dataPoint = []any{}
	}
	return ViolationReport{
		Rule:         rule,
		ViolatedRule: rule.Description(),
		DataPoint:    dataPoint,
	}
}

// HasViolations reports whether anything was flagged.
func (r ViolationReport) HasViolations() bool {
	return len(r.DataPoint) > 0
}
