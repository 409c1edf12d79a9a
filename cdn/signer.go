package cdn

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	neturl "net/url"
	"strings"
	"time"
)

// Blob service SAS fields.
const (
	signedVersion  = "2020-12-06"
	permissionRead = "r"
	protocolHTTPS  = "https"
	resourceBlob   = "b"
	expiryLayout   = "2006-01-02T15:04:05Z"
)

// Signer produces read-only blob service shared access signatures signed
// with the storage account key.
type Signer struct {
	account string
	key     []byte
}

// NewSigner creates a signer for account using the decoded account key.
func NewSigner(account string, key []byte) (*Signer, error) {
	if account == "" {
		return nil, errors.New("cdn account is not configured")
	}
	if len(key) == 0 {
		return nil, errors.New("empty signing key")
	}
	return &Signer{account: account, key: key}, nil
}

// Sign returns the query parameters granting read access to container/blob
// until expiry.
func (s *Signer) Sign(container, blob string, expiry time.Time) neturl.Values {
	se := expiry.UTC().Format(expiryLayout)
	values := neturl.Values{}
	values.Set("sv", signedVersion)
	values.Set("sp", permissionRead)
	values.Set("se", se)
	values.Set("spr", protocolHTTPS)
	values.Set("sr", resourceBlob)
	values.Set("sig", s.signature(s.StringToSign(container, blob, se)))
	return values
}

// Verify reports whether values carry a valid, unexpired signature.
func (s *Signer) Verify(container, blob string, values neturl.Values, now time.Time) error {
	expiry, err := time.Parse(expiryLayout, values.Get("se"))
	if err != nil {
		return fmt.Errorf("invalid expiry: %w", err)
	}
	if now.After(expiry) {
		return errors.New("signature expired")
	}
	expected := s.Sign(container, blob, expiry).Get("sig")
	if !hmac.Equal([]byte(expected), []byte(values.Get("sig"))) {
		return errors.New("signature mismatch")
	}
	return nil
}

// StringToSign returns the service SAS string-to-sign of a read-only blob
// signature: sp, st, se, canonical resource, si, sip, spr, sv, sr, snapshot
// time, encryption scope and the five response header overrides.
func (s *Signer) StringToSign(container, blob, expiry string) string {
	resource := "/blob/" + s.account + "/" + container
	if blob != "" {
		resource += "/" + blob
	}
	return strings.Join([]string{
		permissionRead,
		"", // st
		expiry,
		resource,
		"", // si
		"", // sip
		protocolHTTPS,
		signedVersion,
		resourceBlob,
		"", // snapshot
		"", // ses
		"", "", "", "", "", // rscc, rscd, rsce, rscl, rsct
	}, "\n")
}

func (s *Signer) signature(stringToSign string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// URL builds the https URL of container/blob served from host; when signer
// is not nil the URL carries a signature valid until expiry.
func URL(host, container, blob string, signer *Signer, expiry time.Time) (string, error) {
	if host == "" {
		return "", errors.New("cdn host is not configured; use --host")
	}
	u := neturl.URL{Scheme: "https", Host: host, Path: "/" + strings.Trim(container+"/"+blob, "/")}
	if signer != nil {
		u.RawQuery = signer.Sign(container, blob, expiry).Encode()
	}
	return u.String(), nil
}
