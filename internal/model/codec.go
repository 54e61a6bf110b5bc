package model

// EncodeRequest is the API request body for byte encoding
type EncodeRequest struct {
	Data string `json:"data"` // hex-encoded payload
}

// EncodeResponse is the API response for encode operations
type EncodeResponse struct {
	Encoded string `json:"encoded"` // base58 text
}

// DecodeRequest is the API request body for byte decoding
type DecodeRequest struct {
	Encoded string `json:"encoded"`        // base58 text
	Size    *int   `json:"size,omitempty"` // optional fixed width; minimal form when absent
}

// DecodeResponse is the API response for byte decoding
type DecodeResponse struct {
	Data string `json:"data"` // hex-encoded payload
	Size int    `json:"size"` // payload length in bytes
}

// EncodeInt64Request is the API request body for integer encoding.
// The value travels as a decimal string; JSON numbers cannot carry a
// full 64-bit integer without precision loss.
type EncodeInt64Request struct {
	Value string `json:"value"`
}

// DecodeInt64Request is the API request body for integer decoding
type DecodeInt64Request struct {
	Encoded string `json:"encoded"`
}

// Int64Response carries an integer together with its base58 form
type Int64Response struct {
	Value   string `json:"value"`
	Encoded string `json:"encoded"`
}

// EncodeUUIDRequest is the API request body for UUID encoding
type EncodeUUIDRequest struct {
	UUID string `json:"uuid"` // canonical form
}

// DecodeUUIDRequest is the API request body for UUID decoding
type DecodeUUIDRequest struct {
	Encoded string `json:"encoded"`
}

// UUIDResponse carries a UUID together with its base58 form
type UUIDResponse struct {
	UUID    string `json:"uuid"`
	Encoded string `json:"encoded"`
}

// EncodeNameRequest is the API request body for name-based encoding
type EncodeNameRequest struct {
	Name string `json:"name"`
}
