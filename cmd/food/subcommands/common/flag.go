package common

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	kos "github.com/opst/foodfab/pkg/utils/os"
)

// environment variable overriding the default profile store path.
const EnvProfileStore = "FOOD_PROFILE_STORE"

type CommonFlags struct {
	Profile      string `flag:"profile" help:"foodprofile name to use"`
	ProfileStore string `flag:"profile-store" help:"path to foodprofile store file"`
	Env          string `flag:"env" help:"path to foodenv file"`
	Verbose      bool   `flag:"verbose" alias:"v" help:"trace requests to the backend on stderr"`
}

// SessionPath is where the signed-in identity for the profile is kept.
//
// It is next to the profile store, one file per profile.
func (cf CommonFlags) SessionPath() string {
	name := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(cf.Profile)
	return filepath.Join(filepath.Dir(cf.ProfileStore), "session", name)
}

type commonFlagDetection struct {
	home string
}

type CommonFlagDetectionOption func(*commonFlagDetection) *commonFlagDetection

func WithHome(home string) CommonFlagDetectionOption {
	return func(opt *commonFlagDetection) *commonFlagDetection {
		opt.home = home
		return opt
	}
}

// Flags detects default values of CommonFlags.
//
// ".foodprofile" and "foodenv" are searched from the directory `from` up to the root.
// When ".foodprofile" is not found, the profile name is the absolute path of `from`.
func Flags(from string, opt ...CommonFlagDetectionOption) (CommonFlags, error) {
	detparam := commonFlagDetection{
		home: "",
	}
	for _, o := range opt {
		detparam = *o(&detparam)
	}

	home := detparam.home
	if home == "" {
		_home, err := os.UserHomeDir()
		if err != nil {
			_home = ""
		}
		home = _home
	}

	if _from, err := filepath.Abs(from); err == nil {
		from = _from
	}

	profile := from

	profileFound := false
	envFound := false
	env := path.Join(from, "foodenv")
	for searchpath := from; ; {
		if !profileFound {
			candidate := path.Join(searchpath, ".foodprofile")
			if s, err := os.Stat(candidate); err == nil && s.Mode().IsRegular() {
				_profile, err := os.ReadFile(candidate)
				if err != nil {
					return CommonFlags{}, err
				}
				profileFound = true
				if p := strings.Split(string(_profile), "\n"); 0 < len(p) {
					profile = strings.TrimSpace(p[0])
				}
			}
		}
		if !envFound {
			candidate := path.Join(searchpath, "foodenv")
			if s, err := os.Stat(candidate); err == nil && s.Mode().IsRegular() {
				envFound = true
				env = candidate
			}
		}

		if profileFound && envFound {
			break
		}

		next := path.Dir(searchpath)
		if next == searchpath {
			break
		}
		searchpath = next
	}

	return CommonFlags{
		Profile:      profile,
		ProfileStore: kos.GetEnvOr(EnvProfileStore, path.Join(home, ".food", "profile")),
		Env:          env,
	}, nil
}
