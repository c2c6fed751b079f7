package db

import "helios-node/modules/config"

type DbConfig struct {
	DbURI string
}

func NewDbConfig() *config.Config[DbConfig] {
	return config.New(DbConfig{
		DbURI: "mongodb://localhost:27017",
	})
}
