package zotero

import (
	"bytes"
	"encoding/json"
	"fmt"

	"emperror.dev/errors"
)

// ErrSchemaMismatch matches every error raised because a present wire member has the wrong shape.
const ErrSchemaMismatch = errors.Sentinel("schema mismatch")

// ErrUnknownItemType is returned when a record is requested for an item type that is not registered.
const ErrUnknownItemType = errors.Sentinel("unknown item type")

// SchemaMismatchError reports the member that could not be decoded.
// Path uses dots for object members and [i] for array elements, e.g. "data.creators[3].name".
type SchemaMismatchError struct {
	Path     string
	Expected string
	Got      string
	// Payload is the document handed to the top-level decode call.
	Payload []byte
}

func (e *SchemaMismatchError) Error() string {
	path := e.Path
	if path == "" {
		path = "<root>"
	}
	return fmt.Sprintf("schema mismatch at %s: expected %s, got %s", path, e.Expected, e.Got)
}

func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

func mismatch(path, expected string, raw []byte) *SchemaMismatchError {
	return &SchemaMismatchError{Path: path, Expected: expected, Got: jsonKind(raw)}
}

// withPayload attaches the original document to a mismatch so the transport layer can log it.
func withPayload(err error, payload []byte) error {
	var sm *SchemaMismatchError
	if errors.As(err, &sm) && sm.Payload == nil {
		sm.Payload = append([]byte(nil), payload...)
	}
	return err
}

func jsonKind(raw []byte) string {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func isNull(raw json.RawMessage) bool {
	return jsonKind(raw) == "null"
}

func joinPath(base, member string) string {
	if base == "" {
		return member
	}
	return base + "." + member
}

func indexPath(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}
