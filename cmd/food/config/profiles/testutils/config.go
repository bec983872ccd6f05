package testutils

import (
	"os"
	"testing"

	prof "github.com/opst/foodfab/cmd/food/config/profiles"
	"gopkg.in/yaml.v3"
)

// TempProfile writes a profile store having one profile, for test.
//
// The file is removed after the testcase automatically.
func TempProfile(t *testing.T, name string, profile *prof.FoodProfile) (string, error) {
	t.Helper()

	tmprof, err := os.CreateTemp(t.TempDir(), "profile")
	if err != nil {
		return "", err
	}
	defer tmprof.Close()

	if err := yaml.NewEncoder(tmprof).Encode(prof.ProfileStore{name: profile}); err != nil {
		return "", err
	}
	return tmprof.Name(), nil
}
