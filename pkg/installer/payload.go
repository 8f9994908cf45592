// pkg/installer/payload.go

package installer

import (
	"crypto/x509"
	"encoding/pem"

	"github.com/certvault/certvault/pkg/cverr"
)

// PayloadType tags the secret schema written to the store.
const PayloadType = "urn:scheme:type:certificate"

// CertificateMetadata is the identity and validity data extracted from the
// leaf certificate.
type CertificateMetadata struct {
	// Serial is the certificate serial number rendered in decimal.
	// Serials may exceed 64 bits, so this stays a string.
	Serial string
	// Issued and Expires are the validity bounds as Unix seconds (UTC).
	Issued  int64
	Expires int64
	// Domains holds the SAN DNS entries in extension order, nil when the
	// certificate carries none.
	Domains []string
}

// ExtractMetadata parses the leaf certificate from PEM-encoded input.
func ExtractMetadata(certPEM []byte) (*CertificateMetadata, error) {
	block, _ := pem.Decode(certPEM)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, cverr.New(cverr.KindCertificateParse, "no CERTIFICATE PEM block found")
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, cverr.Wrap(cverr.KindCertificateParse, err, "parse leaf certificate")
	}

	meta := &CertificateMetadata{
		Serial:  cert.SerialNumber.String(),
		Issued:  cert.NotBefore.UTC().Unix(),
		Expires: cert.NotAfter.UTC().Unix(),
	}
	if len(cert.DNSNames) > 0 {
		meta.Domains = append([]string(nil), cert.DNSNames...)
	}
	return meta, nil
}

// Payload is the canonical secret written once per deploy. Cert, Key and
// Chain hold raw PEM text verbatim; Chain is sourced from the fullchain
// file (leaf plus intermediates).
type Payload struct {
	Type    string
	Cert    string
	Key     string
	Chain   string
	Serial  string
	Issued  int64
	Expires int64
	Domains []string
}

// NewPayload assembles the payload from the bundle file contents and the
// extracted certificate metadata.
func NewPayload(cert, key, fullchain string, meta *CertificateMetadata) *Payload {
	return &Payload{
		Type:    PayloadType,
		Cert:    cert,
		Key:     key,
		Chain:   fullchain,
		Serial:  meta.Serial,
		Issued:  meta.Issued,
		Expires: meta.Expires,
		Domains: meta.Domains,
	}
}

// Map renders the payload for the KV v2 write. The domains key is omitted
// entirely when the certificate carries no SAN DNS entries; the store schema
// distinguishes an absent field from an empty list.
func (p *Payload) Map() map[string]interface{} {
	m := map[string]interface{}{
		"type":   p.Type,
		"cert":   p.Cert,
		"key":    p.Key,
		"chain":  p.Chain,
		"serial": p.Serial,
		"life": map[string]interface{}{
			"issued":  p.Issued,
			"expires": p.Expires,
		},
	}
	if len(p.Domains) > 0 {
		m["domains"] = p.Domains
	}
	return m
}
