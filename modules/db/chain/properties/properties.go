package properties

import (
	"context"

	"helios-node/modules/db"
	"helios-node/modules/db/chain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type propertiesDb struct {
	*db.Collection
}

func New(d *chain.ChainDb) Properties {
	return &propertiesDb{db.NewCollection(d.DbInstance, "dynamic_properties")}
}

func (e *propertiesDb) Init() error {
	err := e.Collection.Init()
	if err != nil {
		return err
	}

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err = e.Collection.Collection.Indexes().CreateOne(context.Background(), indexModel)

	return err
}

func (e *propertiesDb) record() PropertiesRecord {
	findResult := e.FindOne(context.Background(), bson.M{"key": propertiesKey})

	record := PropertiesRecord{}
	findResult.Decode(&record)

	return record
}

func (e *propertiesDb) set(field string, value int64) error {
	opts := options.FindOneAndUpdate().SetUpsert(true)
	result := e.FindOneAndUpdate(context.Background(), bson.M{
		"key": propertiesKey,
	}, bson.M{
		"$set": bson.M{field: value},
	}, opts)

	if result.Err() != nil && result.Err() != mongo.ErrNoDocuments {
		return result.Err()
	}
	return nil
}

func (e *propertiesDb) GetTotalNetLimit() int64 {
	return e.record().TotalNetLimit
}

func (e *propertiesDb) GetTotalNetWeight() int64 {
	return e.record().TotalNetWeight
}

func (e *propertiesDb) GetFreeNetLimit() int64 {
	return e.record().FreeNetLimit
}

func (e *propertiesDb) GetPublicNetLimit() int64 {
	return e.record().PublicNetLimit
}

func (e *propertiesDb) GetPublicNetUsage() int64 {
	return e.record().PublicNetUsage
}

func (e *propertiesDb) SetPublicNetUsage(usage int64) error {
	return e.set("public_net_usage", usage)
}

func (e *propertiesDb) GetPublicNetTime() int64 {
	return e.record().PublicNetTime
}

func (e *propertiesDb) SetPublicNetTime(slot int64) error {
	return e.set("public_net_time", slot)
}

func (e *propertiesDb) GetHeadBlockTime() int64 {
	return e.record().HeadBlockTime
}

func (e *propertiesDb) SetHeadBlockTime(ms int64) error {
	return e.set("head_block_time", ms)
}

func (e *propertiesDb) GetGenesisTime() int64 {
	return e.record().GenesisTime
}

func (e *propertiesDb) Seed(record PropertiesRecord) error {
	record.Key = propertiesKey
	opts := options.FindOneAndUpdate().SetUpsert(true)
	result := e.FindOneAndUpdate(context.Background(), bson.M{
		"key": propertiesKey,
	}, bson.M{
		"$set": record,
	}, opts)

	if result.Err() != nil && result.Err() != mongo.ErrNoDocuments {
		return result.Err()
	}
	return nil
}
