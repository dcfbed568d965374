// Package row implements the fixed-width on-disk record type stored by
// the leaf B-tree: a primary-key id and two bounded text fields.
package row

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	// UsernameMaxLen is the longest username content accepted, exclusive
	// of the zero terminator the on-disk field leaves room for.
	UsernameMaxLen = 32
	// EmailMaxLen is the longest email content accepted, exclusive of
	// the zero terminator the on-disk field leaves room for.
	EmailMaxLen = 255

	idFieldSize       = 4
	usernameFieldSize = UsernameMaxLen + 1
	emailFieldSize    = EmailMaxLen + 1

	idOffset       = 0
	usernameOffset = idOffset + idFieldSize
	emailOffset    = usernameOffset + usernameFieldSize

	// Size is the total serialized width of a Row: 4 + 33 + 256 = 293 bytes.
	Size = idFieldSize + usernameFieldSize + emailFieldSize
)

// Row is the single record type the table stores.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// New validates and builds a Row from parsed field values. id is taken
// as already non-negative; the sign check happens one layer up, in the
// statement parser, where the original text is still available for the
// "ID must be positive" message.
func New(id uint32, username, email string) (Row, error) {
	if len(username) > UsernameMaxLen {
		return Row{}, fmt.Errorf("row: username length %d exceeds max %d", len(username), UsernameMaxLen)
	}
	if len(email) > EmailMaxLen {
		return Row{}, fmt.Errorf("row: email length %d exceeds max %d", len(email), EmailMaxLen)
	}
	return Row{ID: id, Username: username, Email: email}, nil
}

// Serialize writes r into dst, a byte region of exactly Size bytes.
// Every byte of dst is written: the string fields are zero-padded out
// to their full field width so the on-disk content is deterministic.
func Serialize(r Row, dst []byte) error {
	if len(dst) != Size {
		return fmt.Errorf("row.Serialize: dst length %d, want %d", len(dst), Size)
	}
	if len(r.Username) > UsernameMaxLen {
		return fmt.Errorf("row.Serialize: username length %d exceeds max %d", len(r.Username), UsernameMaxLen)
	}
	if len(r.Email) > EmailMaxLen {
		return fmt.Errorf("row.Serialize: email length %d exceeds max %d", len(r.Email), EmailMaxLen)
	}

	for i := range dst {
		dst[i] = 0
	}

	binary.LittleEndian.PutUint32(dst[idOffset:idOffset+idFieldSize], r.ID)
	copy(dst[usernameOffset:usernameOffset+usernameFieldSize], r.Username)
	copy(dst[emailOffset:emailOffset+emailFieldSize], r.Email)
	return nil
}

// Deserialize is the inverse of Serialize; it is bijective for any Row
// that satisfied the length constraints when serialized.
func Deserialize(src []byte) (Row, error) {
	if len(src) != Size {
		return Row{}, fmt.Errorf("row.Deserialize: src length %d, want %d", len(src), Size)
	}
	id := binary.LittleEndian.Uint32(src[idOffset : idOffset+idFieldSize])
	username := trimZero(src[usernameOffset : usernameOffset+usernameFieldSize])
	email := trimZero(src[emailOffset : emailOffset+emailFieldSize])
	return Row{ID: id, Username: username, Email: email}, nil
}

func trimZero(b []byte) string {
	if i := indexZero(b); i >= 0 {
		b = b[:i]
	}
	return strings.TrimRight(string(b), "\x00")
}

func indexZero(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
