// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FamilyMember is a single person in the user's family tree. It is the
// application-level view of a [Record] stored inside the vault.
type FamilyMember struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Relation   string   `json:"relation,omitempty"`
	Gender     string   `json:"gender,omitempty"`
	BirthDate  string   `json:"birthDate,omitempty"`
	BirthPlace string   `json:"birthPlace,omitempty"`
	DeathDate  string   `json:"deathDate,omitempty"`
	DeathPlace string   `json:"deathPlace,omitempty"`
	Occupation string   `json:"occupation,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	ParentIDs  []string `json:"parentIds,omitempty"`
	SpouseIDs  []string `json:"spouseIds,omitempty"`
}

// ToRecord converts the member to its opaque record form by round-tripping
// through JSON, so the record carries exactly the member's JSON field names.
func (m FamilyMember) ToRecord() (Record, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal family member: %w", err)
	}

	var r Record
	if err = json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("unmarshal family member record: %w", err)
	}
	return r, nil
}

// FamilyMemberFromRecord decodes a record produced by [FamilyMember.ToRecord]
// (or by the browser application) back into a [FamilyMember]. Unknown fields
// are ignored. Numeric ids, including those inside parentIds and spouseIds,
// are read as their decimal text.
func FamilyMemberFromRecord(r Record) (FamilyMember, error) {
	raw, err := json.Marshal(normalizeIDs(r))
	if err != nil {
		return FamilyMember{}, fmt.Errorf("marshal record: %w", err)
	}

	var m FamilyMember
	if err = json.Unmarshal(raw, &m); err != nil {
		return FamilyMember{}, fmt.Errorf("decode family member: %w", err)
	}
	return m, nil
}

// normalizeIDs returns r with numeric id fields replaced by their text. r is
// not modified.
func normalizeIDs(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	if id, ok := numericID(r["id"]); ok {
		out["id"] = id
	}
	for _, field := range []string{"parentIds", "spouseIds"} {
		list, ok := r[field].([]any)
		if !ok {
			continue
		}
		ids := make([]any, len(list))
		for i, v := range list {
			if id, ok := numericID(v); ok {
				ids[i] = id
			} else {
				ids[i] = v
			}
		}
		out[field] = ids
	}
	return out
}

func numericID(v any) (string, bool) {
	switch n := v.(type) {
	case json.Number:
		return n.String(), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	default:
		return "", false
	}
}
