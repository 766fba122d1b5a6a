package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// keyVersion is part of every artifact key. Bump it when renderer output
// changes for identical input.
const keyVersion = "v1"

// ArtifactPrefix starts every key made by DefaultKeyer.
const ArtifactPrefix = "artifact:"

// Hash returns the hex-encoded SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// artifactKey formats "artifact:<version>:<format>:<digest>". The format is
// kept readable so entries can be told apart in redis-cli.
func artifactKey(docHash string, opts ArtifactKeyOpts) string {
	payload, _ := json.Marshal(struct {
		Doc  string          `json:"doc"`
		Opts ArtifactKeyOpts `json:"opts"`
	}{docHash, opts})
	format := opts.Format
	if format == "" {
		format = "-"
	}
	return ArtifactPrefix + keyVersion + ":" + format + ":" + Hash(payload)
}
