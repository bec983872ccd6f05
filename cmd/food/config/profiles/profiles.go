package profiles

import (
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"net/url"
	"os"

	kos "github.com/opst/foodfab/pkg/utils/os"
	yaml "gopkg.in/yaml.v3"
)

var ErrProfileStoreNotFound = errors.New("profile store is not found")
var ErrProfileInvalid = errors.New("food profile is invalid")

// ProfileStore is a map from profile name to FoodProfile.
type ProfileStore map[string]*FoodProfile

type FoodCert struct {
	// base64 encoded CA certificate
	CA string `yaml:"ca,omitempty"`
}

// RateLimit throttles requests from the client.
type RateLimit struct {
	// sustained requests per second. 0 means unlimited.
	PerSecond float64 `yaml:"perSecond"`

	// requests allowed at once.
	Burst int `yaml:"burst,omitempty"`
}

// FoodProfile is a profile for the food-delivery backend.
type FoodProfile struct {
	// endpoint of the backend API, including path prefix like "/api".
	ApiRoot string `yaml:"apiRoot"`

	// cert is a certificate for the backend.
	Cert FoodCert `yaml:"cert,omitempty"`

	RateLimit *RateLimit `yaml:"rateLimit,omitempty"`
}

func verifyUrl(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && (u.Scheme == "http" || u.Scheme == "https")
}

func verifyPEM(b64cert string) bool {
	bin, err := base64.StdEncoding.DecodeString(b64cert)
	if err != nil {
		return false
	}
	blk, _ := pem.Decode(bin)
	return blk != nil
}

// Verify FoodProfile
//
// # Return
//
// nil if it is valid. Otherwise, ErrProfileInvalid error.
func (p *FoodProfile) Verify() error {
	if !verifyUrl(p.ApiRoot) {
		return fmt.Errorf("%w: apiRoot is not http(s) URL: %s", ErrProfileInvalid, p.ApiRoot)
	}
	if p.Cert.CA != "" && !verifyPEM(p.Cert.CA) {
		return fmt.Errorf("%w: cert.ca is not PEM", ErrProfileInvalid)
	}
	if rl := p.RateLimit; rl != nil {
		if rl.PerSecond < 0 {
			return fmt.Errorf("%w: rateLimit.perSecond should not be negative", ErrProfileInvalid)
		}
		if rl.Burst < 0 {
			return fmt.Errorf("%w: rateLimit.burst should not be negative", ErrProfileInvalid)
		}
	}

	return nil
}

// LoadProfileStore loads profile store from file.
func LoadProfileStore(filepath string) (ProfileStore, error) {
	buf, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s: %w", ErrProfileStoreNotFound, filepath, err)
		}
		return nil, err
	}
	return Unmarshall(buf)
}

// Unmarshall profile store from yaml in byte array.
func Unmarshall(buf []byte) (ProfileStore, error) {
	ret := map[string]*FoodProfile{}
	if err := yaml.Unmarshal(buf, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Save profile store to file.
//
// The previous content is kept in "<path>.backup" if saving fails.
func (ps *ProfileStore) Save(path string) error {
	buf, err := yaml.Marshal(ps)
	if err != nil {
		return err
	}
	return kos.WriteWithBackup(path, buf)
}
