package tutorapi

import (
	"encoding/json"
	"fmt"
)

// CodecName is registered for both handlers and clients, replacing Connect's
// protobuf JSON codec. Requests use Content-Type application/json.
const CodecName = "json"

// JSONCodec marshals plain Go structs for Connect.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string {
	return CodecName
}

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body leaves msg untouched.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}
