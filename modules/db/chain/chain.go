package chain

import (
	a "helios-node/modules/aggregate"
	"helios-node/modules/db"
)

type ChainDb struct {
	*db.DbInstance
}

var _ a.Plugin = &ChainDb{}

func New(d db.Db) *ChainDb {
	return &ChainDb{db.NewDbInstance(d, "helios")}
}
