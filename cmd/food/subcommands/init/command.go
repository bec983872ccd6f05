package init

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	prof "github.com/opst/foodfab/cmd/food/config/profiles"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	"github.com/youta-t/flarc"
	"gopkg.in/yaml.v3"
)

const ARG_FOOD_PROFILE_FILE = "FOOD_PROFILE_FILE"

type Flags struct {
	Check bool `flag:"check" help:"check the backend is reachable before saving the profile"`
}

type Option struct {
	// directory where .foodprofile is written
	workdir string
	ping    func(ctx context.Context, p *prof.FoodProfile) error
}

func WithWorkdir(dir string) func(*Option) *Option {
	return func(o *Option) *Option {
		o.workdir = dir
		return o
	}
}

func WithPing(ping func(ctx context.Context, p *prof.FoodProfile) error) func(*Option) *Option {
	return func(o *Option) *Option {
		o.ping = ping
		return o
	}
}

func New(options ...func(*Option) *Option) (flarc.Command, error) {
	option := &Option{workdir: ".", ping: Ping}
	for _, opt := range options {
		option = opt(option)
	}

	return flarc.NewCommand(
		"Initialize this directory to order with the food-delivery backend.",
		Flags{Check: true},
		flarc.Args{
			{
				Name: ARG_FOOD_PROFILE_FILE, Required: true,
				Help: "filepath to foodprofile file.",
			},
		},
		common.NewTaskWithCommonFlag(Task(option.workdir, option.ping)),
		flarc.WithDescription(`
Register a new foodprofile into your profile store.

"foodprofile" is a yaml file telling where the backend is:

    apiRoot: https://food.example.com/api
    cert:
      ca: ...base64 encoded PEM...      # optional
    rateLimit:                          # optional
      perSecond: 5
      burst: 10

"{{ .Command }}" registers the given foodprofile into your profile store.

The name of the profile is given by "--profile" ( default: current filepath ).
`),
	)
}

func Task(
	workdir string,
	ping func(context.Context, *prof.FoodProfile) error,
) common.FoodTaskWithCommonFlag[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		profFile := cl.Args()[ARG_FOOD_PROFILE_FILE][0]

		profStore, err := prof.LoadProfileStore(cf.ProfileStore)
		if errors.Is(err, prof.ErrProfileStoreNotFound) {
			// ok.
			profStore = prof.ProfileStore{}
		} else if err != nil {
			return fmt.Errorf("%w: failed to load profile store (%s)", err, cf.ProfileStore)
		}

		profName := cf.Profile
		newProf := new(prof.FoodProfile)
		{
			content, err := os.ReadFile(profFile)
			if err != nil {
				return fmt.Errorf("%w: failed to read profile file (%s)", err, profFile)
			}
			if err := yaml.Unmarshal(content, newProf); err != nil {
				return fmt.Errorf("%w: failed to parse profile file (%s)", err, profFile)
			}
		}
		if err := newProf.Verify(); err != nil {
			return fmt.Errorf("%w: %s", err, profFile)
		}

		if cl.Flags().Check {
			if err := ping(ctx, newProf); err != nil {
				return fmt.Errorf("%w: backend (%s) is not reachable. pass --check=false to skip", err, newProf.ApiRoot)
			}
		}

		profStore[profName] = newProf
		if err := profStore.Save(cf.ProfileStore); err != nil {
			return fmt.Errorf("%w: failed to save profile store (%s)", err, cf.ProfileStore)
		}
		logger.Printf("profile %s is saved to %s", profName, cf.ProfileStore)

		dotprofile := filepath.Join(workdir, ".foodprofile")
		if err := os.WriteFile(dotprofile, []byte(profName), os.FileMode(0600)); err != nil {
			return fmt.Errorf("%w: failed to write %s", err, dotprofile)
		}

		return nil
	}
}

// Ping checks the backend of the profile answers.
func Ping(ctx context.Context, p *prof.FoodProfile) error {
	client, err := frest.NewClient(p)
	if err != nil {
		return err
	}
	return client.Health(ctx)
}
