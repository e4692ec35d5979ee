package vault

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

// encodeRecords serializes records as a JSON array of objects. Map keys are
// sorted by encoding/json, so equal collections produce equal text. A nil
// collection encodes as "[]".
func encodeRecords(records models.RecordCollection) ([]byte, error) {
	if records == nil {
		records = models.RecordCollection{}
	}
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("%w: record %d is nil", ErrMalformedData, i)
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	return data, nil
}

// decodeRecords parses exactly one JSON array of objects. Numbers are kept
// as json.Number so their textual form survives a round trip.
func decodeRecords(data []byte) (models.RecordCollection, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: not a json array", ErrMalformedData)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after array", ErrMalformedData)
	}

	records := make(models.RecordCollection, 0, len(raw))
	for i, m := range raw {
		if m == nil {
			return nil, fmt.Errorf("%w: record %d is not an object", ErrMalformedData, i)
		}
		records = append(records, models.Record(m))
	}
	return records, nil
}
