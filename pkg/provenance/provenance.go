// Package provenance signs and verifies interview document envelopes with a content hash.
package provenance

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Envelope verification errors.
var (
	ErrNoMetadataBlock = errors.New("no metadata block found")
	ErrNoHashFound     = errors.New("no hash found in metadata")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata contains the envelope status information.
type Metadata struct {
	Version    string    `json:"version"`
	LastModify time.Time `json:"lastModify"`
	Hash       string    `json:"hash,omitempty"`
	Validation bool      `json:"validation"`
	Count      int       `json:"count"`
}

// Envelope wraps the interview documents of one run.
type Envelope struct {
	Metadata   *Metadata       `json:"metadata,omitempty"`
	Interviews json.RawMessage `json:"interviews"`
}

// CalculateHash computes the SHA-256 hash of the compacted interviews array.
// Whitespace differences introduced by pretty printing do not change the hash.
func CalculateHash(interviews []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, interviews); err != nil {
		return "", fmt.Errorf("compact interviews: %w", err)
	}

	hash := sha256.Sum256(buf.Bytes())

	return hex.EncodeToString(hash[:]), nil
}

// Seal builds an envelope around docs. When sign is set the metadata carries a fresh hash.
func Seal(docs any, count int, version string, validated, sign bool, now time.Time) (*Envelope, error) {
	interviews, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshal interviews: %w", err)
	}

	meta := &Metadata{
		Version:    version,
		LastModify: now.UTC().Truncate(time.Second),
		Validation: validated,
		Count:      count,
	}

	if sign {
		if meta.Hash, err = CalculateHash(interviews); err != nil {
			return nil, err
		}
	}

	return &Envelope{Metadata: meta, Interviews: interviews}, nil
}

// Marshal encodes the envelope, indented when pretty is set.
func (e *Envelope) Marshal(pretty bool) ([]byte, error) {
	if !pretty {
		return json.Marshal(e)
	}

	return json.MarshalIndent(e, "", "  ")
}

// Verify checks that the interviews in content match the hash in its metadata.
func Verify(content []byte) (*Metadata, error) {
	var env Envelope
	if err := json.Unmarshal(content, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	if env.Metadata == nil {
		return nil, ErrNoMetadataBlock
	}

	if env.Metadata.Hash == "" {
		return env.Metadata, ErrNoHashFound
	}

	calculated, err := CalculateHash(env.Interviews)
	if err != nil {
		return env.Metadata, err
	}

	if calculated != env.Metadata.Hash {
		return env.Metadata, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, env.Metadata.Hash, calculated)
	}

	return env.Metadata, nil
}
