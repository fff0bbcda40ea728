package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is the closed variant of asset content types. The thumbnail pipeline
// branches on it, so it is a real type rather than an open string.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// String returns the wire name used in the store document.
func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// MarshalJSON writes the kind as "file" or "directory".
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// MarshalYAML mirrors the JSON wire name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalJSON rejects anything outside the two known variants so a store
// document written by a newer version fails loudly instead of decoding to
// a silent zero value.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "file":
		*k = KindFile
	case "directory":
		*k = KindDirectory
	default:
		return fmt.Errorf("unknown asset_type %q", s)
	}
	return nil
}

// Asset is the catalogue record for one imported file or folder. The content
// itself lives under LibraryPath inside the library root; the record only
// carries metadata.
type Asset struct {
	ID            string    `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	Category      string    `json:"category" yaml:"category"`
	Kind          Kind      `json:"asset_type" yaml:"asset_type"`
	LibraryPath   string    `json:"library_path" yaml:"library_path"`
	ThumbnailPath string    `json:"thumbnail_path,omitempty" yaml:"thumbnail_path,omitempty"`
	Description   string    `json:"description,omitempty" yaml:"description,omitempty"`
	Tags          []string  `json:"tags" yaml:"tags"`
	SizeBytes     int64     `json:"size" yaml:"size"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"updated_at"`
}

// NewID returns a fresh asset id. Ids are opaque, unique, and never reused.
func NewID() string {
	return uuid.NewString()
}

// MatchesKeyword reports whether the keyword occurs case-insensitively in
// the asset's name, description, or any tag.
func (a *Asset) MatchesKeyword(keyword string) bool {
	kw := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(a.Name), kw) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Description), kw) {
		return true
	}
	for _, t := range a.Tags {
		if strings.Contains(strings.ToLower(t), kw) {
			return true
		}
	}
	return false
}

// HasTag checks for an exact, case-sensitive tag.
func (a *Asset) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hand assets out without aliasing
// the registry's internal state.
func (a *Asset) Clone() Asset {
	c := *a
	c.Tags = append([]string(nil), a.Tags...)
	return c
}

// NormalizeTags trims whitespace, drops empties, and deduplicates
// case-sensitively while preserving first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

var slugPattern = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename turns a display name into something safe to use as a
// filename inside the library tree.
func SanitizeFilename(name string) string {
	s := slugPattern.ReplaceAllString(name, "-")
	s = strings.Trim(s, "-.")
	if s == "" {
		s = "asset"
	}
	return s
}

// AddRequest carries the caller's input for an import. Fields beyond
// SourcePath are optional: Name defaults to the source's base name and
// Category to the configured default.
type AddRequest struct {
	SourcePath  string
	Name        string
	Category    string
	Description string
	Tags        []string
}

// Validate checks the request fields that can be checked without touching
// the filesystem. Category resolution happens in the manager, which owns
// the category set.
func (r *AddRequest) Validate() error {
	if strings.TrimSpace(r.SourcePath) == "" {
		return fmt.Errorf("%w: source path is required", ErrValidation)
	}
	if r.Name != "" && strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name cannot be blank", ErrValidation)
	}
	return nil
}

// UpdatePatch names the mutable asset fields. Nil means "leave unchanged";
// a set pointer replaces the field wholesale. Unknown fields cannot exist
// by construction.
type UpdatePatch struct {
	Name        *string
	Category    *string
	Description *string
	Tags        *[]string
}

// IsZero reports whether the patch changes nothing.
func (p UpdatePatch) IsZero() bool {
	return p.Name == nil && p.Category == nil && p.Description == nil && p.Tags == nil
}

// Validate rejects patches that would break record invariants.
func (p UpdatePatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		return fmt.Errorf("%w: category cannot be empty", ErrValidation)
	}
	return nil
}
