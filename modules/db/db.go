package db

import (
	"context"

	"helios-node/lib/utils"
	a "helios-node/modules/aggregate"
	"helios-node/modules/config"

	"github.com/chebyrash/promise"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Db interface {
	Database(name string, opts ...*options.DatabaseOptions) *mongo.Database
}

type db struct {
	*mongo.Client

	conf *config.Config[DbConfig]
}

var _ a.Plugin = &db{}
var _ Db = &db{}

func New(conf *config.Config[DbConfig]) *db {
	return &db{conf: conf}
}

// Init connects the client so that instances and collections further down the
// plugin list can resolve their handles during their own Init.
func (db *db) Init() error {
	ctx := context.Background()

	driver, err := mongo.Connect(ctx, options.Client().ApplyURI(db.conf.Get().DbURI))
	if err != nil {
		return err
	}

	if err := driver.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	db.Client = driver
	return nil
}

func (db *db) Start() *promise.Promise[any] {
	return utils.PromiseResolve[any](nil)
}

func (db *db) Stop() error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(context.Background())
}
