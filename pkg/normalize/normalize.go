// Package normalize parses raw model output into typed entities. Payloads
// are defensively defaulted: a partially-filled response becomes a fully
// populated record, and only a payload with no interpretable JSON at all is
// rejected.
package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/nikogura/career-compass/pkg/career"
	"github.com/tidwall/gjson"
)

// ParseError marks a payload that arrived but could not be interpreted as
// the expected shape.
type ParseError struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() (msg string) {
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", e.Op, e.Cause)
		return msg
	}
	msg = e.Op
	return msg
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() (err error) {
	err = e.Cause
	return err
}

// ExtractJSONObject returns the first balanced {...} substring of raw. The
// scan is string-aware so braces inside JSON string values do not unbalance
// it. Search-grounded responses wrap the object in explanatory prose; this
// strips that prose.
func ExtractJSONObject(raw string) (extracted string, err error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(raw); i++ {
		ch := raw[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				candidate := raw[start : i+1]
				if !gjson.Valid(candidate) {
					err = &ParseError{Op: "extracted candidate is not valid JSON"}
					return extracted, err
				}
				extracted = candidate
				return extracted, err
			}
		}
	}

	err = &ParseError{Op: "no balanced JSON object found in response"}
	return extracted, err
}

// DecodeSkeletons parses a discovery payload into career skeletons.
// Entries missing an id or title are dropped, and duplicate ids are removed
// preserving first-seen order. An empty array is a valid result.
func DecodeSkeletons(raw json.RawMessage) (skeletons []career.Career, err error) {
	var decoded []career.Career
	err = json.Unmarshal(raw, &decoded)
	if err != nil {
		err = &ParseError{Op: "failed to parse career skeletons", Cause: err}
		return skeletons, err
	}

	seen := make(map[string]bool)
	skeletons = make([]career.Career, 0, len(decoded))
	for _, c := range decoded {
		if c.ID == "" || c.Title == "" || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		skeletons = append(skeletons, c)
	}

	return skeletons, err
}

// DecodeQuickLook parses a hydration payload.
func DecodeQuickLook(raw json.RawMessage) (look career.QuickLook, err error) {
	err = json.Unmarshal(raw, &look)
	if err != nil {
		err = &ParseError{Op: "failed to parse quick look", Cause: err}
		return look, err
	}

	if look.Summary == "" {
		err = &ParseError{Op: "quick look missing summary"}
		return look, err
	}

	return look, err
}

// DecodeUnpacked parses an object lifecycle payload. Stage order is kept
// exactly as returned.
func DecodeUnpacked(raw json.RawMessage) (unpacked career.UnpackedObject, err error) {
	err = json.Unmarshal(raw, &unpacked)
	if err != nil {
		err = &ParseError{Op: "failed to parse unpacked object", Cause: err}
		return unpacked, err
	}

	if unpacked.ObjectName == "" {
		err = &ParseError{Op: "unpacked object missing objectName"}
		return unpacked, err
	}

	if len(unpacked.Lifecycle) == 0 {
		err = &ParseError{Op: "unpacked object has no lifecycle stages"}
		return unpacked, err
	}

	return unpacked, err
}

// DecodeProblemSet parses a persona problem-set payload.
func DecodeProblemSet(raw json.RawMessage) (problems career.PersonaProblemSet, err error) {
	err = json.Unmarshal(raw, &problems)
	if err != nil {
		err = &ParseError{Op: "failed to parse persona problems", Cause: err}
		return problems, err
	}

	if len(problems.Problems) == 0 {
		err = &ParseError{Op: "persona problem set is empty"}
		return problems, err
	}

	return problems, err
}

// DecodePersonaDraft parses a generated persona payload.
func DecodePersonaDraft(raw json.RawMessage) (draft career.PersonaDraft, err error) {
	err = json.Unmarshal(raw, &draft)
	if err != nil {
		err = &ParseError{Op: "failed to parse generated persona", Cause: err}
		return draft, err
	}

	if draft.Title == "" || draft.Tagline == "" {
		err = &ParseError{Op: "generated persona missing title or tagline"}
		return draft, err
	}

	return draft, err
}
