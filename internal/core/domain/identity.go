package domain

// Digest is a full hexadecimal content digest.
type Digest string

// PackageIdentity is the filesystem-safe token naming a cache slot.
type PackageIdentity string

// Truncate keeps the first n nibbles of the digest.
func (d Digest) Truncate(n int) PackageIdentity {
	if n >= len(d) {
		return PackageIdentity(d)
	}
	return PackageIdentity(d[:n])
}

// String returns the token.
func (p PackageIdentity) String() string {
	return string(p)
}
