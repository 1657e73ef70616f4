// Package crypto exposes the minimal primitives used by speedread.
//
// Contents
//
//   - HKDF-SHA256 key derivation from a configured secret (DeriveKey)
//   - XChaCha20-Poly1305 sealing of small values such as cookies (Seal, Open)
//   - SHA-256 digests and short fingerprints of files for display/logging
//     (Digest, DigestFile, Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Sealed blobs carry their random nonce as a prefix, so the same key can seal
// any number of values.
package crypto
