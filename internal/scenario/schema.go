package scenario

import "fmt"

// Scenario is one generated unit of game content. Field names must match
// scenarioFields; TestScenarioStructMatchesFieldTable enforces that.
type Scenario struct {
	Scenario      string   `json:"scenario"`
	DecisionPoint string   `json:"decision_point"`
	IsScam        bool     `json:"is_scam"`
	Explanation   []string `json:"explanation"`
}

type fieldKind int

const (
	kindString fieldKind = iota
	kindBoolean
	kindStringList
)

func (k fieldKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindBoolean:
		return "boolean"
	case kindStringList:
		return "array of strings"
	default:
		return fmt.Sprintf("fieldKind(%d)", int(k))
	}
}

type field struct {
	Name            string
	Kind            fieldKind
	Description     string
	ItemDescription string
}

// scenarioFields is the only definition of the scenario shape. The response
// schema sent to the model, the inbound validator and the expected-shape
// payload in error bodies are all derived from it. Every field is required.
var scenarioFields = []field{
	{
		Name:        "scenario",
		Kind:        kindString,
		Description: "The full scenario description, including character details, setting, and the event unfolding. This narrative is crafted to be ambiguous, making it unclear whether it's a scam or genuine. All details that serve as clues are embedded directly within this narrative.",
	},
	{
		Name:        "decision_point",
		Kind:        kindString,
		Description: "A clear question or choice the character faces within the scenario, requiring the player to make a decision.",
	},
	{
		Name:        "is_scam",
		Kind:        kindBoolean,
		Description: "TRUE if the scenario is, in fact, a scam. FALSE if it is a genuine situation. This field is for internal game logic ONLY and must NOT be revealed to the player immediately.",
	},
	{
		Name:            "explanation",
		Kind:            kindStringList,
		Description:     "A list of bullet points detailing the specific evidence from the scenario that confirms whether it was a scam or genuine. Each point should be a clear, concrete observation.",
		ItemDescription: "A concrete point of evidence from the scenario, either a red flag (for scam) or a confirmation of legitimacy (for genuine).",
	},
}

func (f field) jsonSchema() map[string]any {
	switch f.Kind {
	case kindBoolean:
		return map[string]any{
			"type":        "boolean",
			"description": f.Description,
		}
	case kindStringList:
		return map[string]any{
			"type":        "array",
			"description": f.Description,
			"minItems":    1,
			"items": map[string]any{
				"type":        "string",
				"description": f.ItemDescription,
				"minLength":   1,
			},
		}
	default:
		return map[string]any{
			"type":        "string",
			"description": f.Description,
			"minLength":   1,
		}
	}
}

// ResponseSchema returns the JSON Schema the model is constrained to. Each
// call builds a new map.
func ResponseSchema() map[string]any {
	required := make([]any, 0, len(scenarioFields))
	props := make(map[string]any, len(scenarioFields))
	for _, f := range scenarioFields {
		required = append(required, f.Name)
		props[f.Name] = f.jsonSchema()
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// ExpectedShape describes the required fields for humans, e.g. in error
// responses.
func ExpectedShape() map[string]string {
	out := make(map[string]string, len(scenarioFields))
	for _, f := range scenarioFields {
		out[f.Name] = f.Kind.String()
	}
	return out
}
