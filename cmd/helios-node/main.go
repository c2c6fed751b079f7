package main

import (
	"fmt"
	"os"

	"helios-node/lib/logger"
	"helios-node/modules/aggregate"
	bandwidthSystem "helios-node/modules/bandwidth-system"
	"helios-node/modules/db"
	"helios-node/modules/db/chain"
	"helios-node/modules/db/chain/accounts"
	"helios-node/modules/db/chain/assets"
	"helios-node/modules/db/chain/properties"
	"helios-node/modules/witness"
)

func main() {
	dbConf := db.NewDbConfig()

	if mongoUrl := os.Getenv("MONGO_URL"); mongoUrl != "" {
		dbConf.Update(func(dc *db.DbConfig) {
			dc.DbURI = mongoUrl
		})
	}

	dbase := db.New(dbConf)
	chainDb := chain.New(dbase)
	accountsDb := accounts.New(chainDb)
	assetsDb := assets.New(chainDb)
	propsDb := properties.New(chainDb)

	witnessController := witness.New(propsDb)

	bandwidth := bandwidthSystem.New(
		accountsDb,
		assetsDb,
		propsDb,
		witnessController,
		logger.PrefixedLogger{Prefix: "bandwidth-system"},
	)

	plugins := []aggregate.Plugin{
		dbConf,
		dbase,
		chainDb,
		accountsDb,
		assetsDb,
		propsDb,
		witnessController,
		bandwidth,
	}

	agg := aggregate.New(plugins)
	if err := agg.Run(); err != nil {
		fmt.Println("error is", err)
		os.Exit(1)
	}
}
