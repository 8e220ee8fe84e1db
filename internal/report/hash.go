package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainReport prefixes report hashes. The version suffix allows migrating
// the algorithm later.
const DomainReport = "xivanalysis/report/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ComputeID returns the content-addressed id of the report.
// The ID field itself is excluded from the hash.
func ComputeID(r *Report) (string, error) {
	clone := *r
	clone.ID = ""
	canonical, err := MarshalCanonical(&clone)
	if err != nil {
		return "", fmt.Errorf("report id: %w", err)
	}
	return hashWithDomain(DomainReport, canonical), nil
}

// Seal computes and stores the report id.
func Seal(r *Report) error {
	id, err := ComputeID(r)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}
