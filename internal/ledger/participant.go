package ledger

import (
	"encoding/json"
	"fmt"
)

// ParticipantRef accepts the two shapes participant identifiers arrive in:
// a plain id string, or an object carrying a userId field. Extraction happens
// once at the boundary so the engines only ever see plain ids.
type ParticipantRef struct {
	ID string
}

func (p *ParticipantRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.ID = s
		return nil
	}

	var obj struct {
		UserID string `json:"userId"`
		ID     string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("participant must be an id string or an object with userId: %w", err)
	}
	if obj.UserID != "" {
		p.ID = obj.UserID
	} else {
		p.ID = obj.ID
	}
	if p.ID == "" {
		return fmt.Errorf("participant reference has no id")
	}
	return nil
}

func (p ParticipantRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ID)
}

// IDs flattens refs into plain identifiers.
func IDs(refs []ParticipantRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.ID)
	}
	return out
}
