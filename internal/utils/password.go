package utils

import (
	"crypto/rand"     // Salt generation
	"crypto/subtle"   // Constant-time comparison
	"encoding/base64" // PHC string encoding
	"fmt"             // PHC string formatting
	"strings"         // PHC string splitting

	"golang.org/x/crypto/argon2" // Argon2id key derivation
)

// Argon2id parameters applied to every new hash
const (
	argonTime    = 1         // Iterations
	argonMemory  = 64 * 1024 // Memory in KiB
	argonThreads = 4         // Parallelism
	argonKeyLen  = 32        // Derived key length in bytes
	argonSaltLen = 16        // Salt length in bytes
)

// HashPassword derives a one-way argon2id hash in PHC string format
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	// Standard PHC encoding: $argon2id$v=19$m=...,t=...,p=...$salt$hash
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether password matches the stored PHC hash.
// A malformed hash or a mismatch both yield false, never an error.
func VerifyPassword(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}
	got := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
