package zotero

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

// KeyLength is the length of zotero object keys.
const KeyLength = 8

// https://github.com/zotero/dataserver/blob/master/model/DataObjectUtilities.inc.php#L63
// keys exclude the ambiguous characters 0, 1, O and l
const keyAlphabet = "23456789ABCDEFGHIJKLMNPQRSTUVWXYZ"

var keyPattern = regexp.MustCompile(`^[23456789ABCDEFGHIJKLMNPQRSTUVWXYZ]{8}$`)

// NewKey returns a random object key, usable for items created locally before upload.
func NewKey() string {
	b := strings.Builder{}
	b.Grow(KeyLength)
	for i := 0; i < KeyLength; i++ {
		b.WriteByte(keyAlphabet[rand.IntN(len(keyAlphabet))])
	}
	return b.String()
}

func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}
