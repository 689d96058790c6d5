// Package kv declares the capability contracts shared by confstore:
// key-value access and text serialization.
package kv

import "errors"

// ErrMalformed is returned (wrapped) by Deserialize implementations when the
// input is not valid output of the corresponding Serialize.
var ErrMalformed = errors.New("malformed serialized data")

// Store defines the interface for a key-value store.
// Implementations of this interface can be swapped out,
// allowing for different backing strategies (e.g., plain, instrumented).
type Store interface {
	// Get retrieves the value associated with the given key.
	// Returns the value and true if the key exists, or empty string and
	// false if not. A missing key is a normal outcome, never an error.
	Get(key string) (string, bool)

	// Set stores a key-value pair, overwriting any existing value.
	// Returns an error if the operation fails.
	Set(key, value string) error

	// Delete removes a key from the store.
	// Returns an error if the operation fails.
	Delete(key string) error
}

// Serializable is implemented by types that can render themselves to a
// portable text form and rebuild themselves from it. The encoding is chosen
// by each implementing type; this interface imposes no format.
type Serializable interface {
	// Serialize returns a text representation of the receiver sufficient
	// for later reconstruction via Deserialize.
	Serialize() string

	// Deserialize rebuilds the receiver in place from text previously
	// produced by Serialize. Input that cannot be decoded yields an error
	// wrapping ErrMalformed; the receiver is left unchanged in that case.
	Deserialize(data string) error
}
