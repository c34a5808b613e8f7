package form

import (
	"sort"
	"strings"
)

// Canonical field kinds.
const (
	KindText     = "text"
	KindTextarea = "textarea"
	KindEmail    = "email"
	KindTel      = "tel"
	KindInput    = "input"
	KindURL      = "url"
	KindNumber   = "number"
	KindSelect   = "select"
	KindCheckbox = "checkbox"
	KindRadio    = "radio"
	KindFile     = "file"
)

// FieldDescriptor is what the model inferred about one form control.
type FieldDescriptor struct {
	Kind       string
	Identifier string
	Category   string
	Required   bool
}

// JobAnalysis is what the model extracted from a listing page.
type JobAnalysis struct {
	Skills            []string
	Responsibilities  []string
	SuggestedResponse string
}

var (
	fieldListKeys  = []string{"fields", "form_fields", "input_fields"}
	kindKeys       = []string{"type", "field_type", "kind"}
	// "name" is the control's name attribute. A human label under it fails
	// every lookup strategy and the field is skipped.
	identifierKeys = []string{"identifier", "id", "name", "selector"}
	categoryKeys   = []string{"category", "content_type", "expected_content", "content"}
	skillKeys      = []string{"skills", "skills_required", "required_skills"}
	respKeys       = []string{"responsibilities", "key_responsibilities"}
	suggestionKeys = []string{"suggested_response", "personalized_response"}
)

// ParseFields reads descriptors from an analysis map. Missing or malformed
// entries are dropped; an unexpected shape yields no fields.
func ParseFields(data map[string]any) []FieldDescriptor {
	var list []any
	for _, k := range fieldListKeys {
		if l, ok := data[k].([]any); ok {
			list = l
			break
		}
	}

	fields := make([]FieldDescriptor, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		fields = append(fields, FieldDescriptor{
			Kind:       normalizeKind(firstString(m, kindKeys)),
			Identifier: strings.TrimSpace(firstString(m, identifierKeys)),
			Category:   strings.ToLower(strings.TrimSpace(firstString(m, categoryKeys))),
			Required:   truthy(m["required"]),
		})
	}
	return fields
}

// ParseJobAnalysis reads skills, responsibilities and the suggested answer.
// Absent keys leave the zero value.
func ParseJobAnalysis(data map[string]any) JobAnalysis {
	return JobAnalysis{
		Skills:            firstList(data, skillKeys),
		Responsibilities:  firstList(data, respKeys),
		SuggestedResponse: strings.TrimSpace(firstString(data, suggestionKeys)),
	}
}

// normalizeKind maps free-form kinds ("text input", "dropdown",
// "radio button", "file upload") to the canonical ones.
func normalizeKind(kind string) string {
	k := strings.ToLower(strings.TrimSpace(kind))
	switch k {
	case KindText, KindTextarea, KindEmail, KindTel, KindInput, KindURL, KindNumber,
		KindSelect, KindCheckbox, KindRadio, KindFile:
		return k
	}

	switch {
	case strings.Contains(k, "textarea"), strings.Contains(k, "text area"):
		return KindTextarea
	case strings.Contains(k, "dropdown"), strings.Contains(k, "select"):
		return KindSelect
	case strings.Contains(k, "radio"):
		return KindRadio
	case strings.Contains(k, "check"):
		return KindCheckbox
	case strings.Contains(k, "file"), strings.Contains(k, "upload"):
		return KindFile
	case strings.Contains(k, "email"):
		return KindEmail
	case strings.Contains(k, "phone"), strings.Contains(k, "tel"):
		return KindTel
	case strings.Contains(k, "url"), strings.Contains(k, "link"):
		return KindURL
	case strings.Contains(k, "number"):
		return KindNumber
	case strings.Contains(k, "text"), strings.Contains(k, "input"):
		return KindText
	}
	return k
}

// firstString returns the first non-empty string under keys. An object
// value yields its first non-empty string member in key order, so
// {"Why should we hire you?": "..."} reads as its answer. Other shapes are
// ignored.
func firstString(m map[string]any, keys []string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return v
			}
		case map[string]any:
			if s := firstMember(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func firstMember(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func firstList(m map[string]any, keys []string) []string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case []any:
			var out []string
			for _, item := range v {
				if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, strings.TrimSpace(s))
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			var out []string
			for _, part := range strings.Split(v, ",") {
				if p := strings.TrimSpace(part); p != "" {
					out = append(out, p)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "required", "1":
			return true
		}
	case float64:
		return t != 0
	}
	return false
}
