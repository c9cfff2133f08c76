package hashid

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// EncodeUUID encodes a UUID into a hashid by routing its 32 hex
// digits through EncodeHex.
func (c *Codec) EncodeUUID(u uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	hex.Encode(buf, u[:])
	return c.EncodeHex(string(buf))
}

// DecodeUUID decodes a hashid produced by EncodeUUID back into a
// UUID. Returns ErrDecode if the decoded payload is not a UUID.
func (c *Codec) DecodeUUID(value string) (uuid.UUID, error) {
	h, err := c.DecodeHex(value)
	if err != nil {
		return uuid.Nil, err
	}
	u, err := uuid.Parse(h)
	if err != nil {
		return uuid.Nil, ErrDecode
	}
	return u, nil
}
