package main

import (
	"github.com/roffe/columnchart/pkg/config"
)

func (o *rootOptions) load() (*config.Config, error) {
	if err := config.LoadEnv(o.envFile); err != nil {
		return nil, err
	}
	return config.Load(o.configFile)
}
