// Package env reads foodenv, defaults for order commands in a directory.
package env

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// FoodEnv is the content of a foodenv file.
//
//	address: 1 Main St, Springfield
//	instructions: leave at the door
type FoodEnv struct {
	// default delivery address
	Address string `yaml:"address"`

	// default special instructions
	Instructions string `yaml:"instructions"`
}

func New() *FoodEnv {
	return new(FoodEnv)
}

// LoadFoodEnv reads the foodenv file.
//
// Missing file yields empty FoodEnv.
func LoadFoodEnv(filepath string) (*FoodEnv, error) {
	env := FoodEnv{}

	content, err := os.ReadFile(filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &env, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(content, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// AddressOr returns flag if it is not empty, otherwise the address in env.
func (e *FoodEnv) AddressOr(flag string) string {
	if flag != "" || e == nil {
		return flag
	}
	return e.Address
}

// InstructionsOr returns flag if it is not empty, otherwise the instructions in env.
func (e *FoodEnv) InstructionsOr(flag string) string {
	if flag != "" || e == nil {
		return flag
	}
	return e.Instructions
}
