package assets

import (
	"context"

	"helios-node/modules/db"
	"helios-node/modules/db/chain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type assetsDb struct {
	*db.Collection
}

func New(d *chain.ChainDb) Assets {
	return &assetsDb{db.NewCollection(d.DbInstance, "asset_issues")}
}

func (e *assetsDb) Init() error {
	err := e.Collection.Init()
	if err != nil {
		return err
	}

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err = e.Collection.Collection.Indexes().CreateOne(context.Background(), indexModel)

	return err
}

func (e *assetsDb) GetAsset(name string) (*AssetRecord, error) {
	findResult := e.FindOne(context.Background(), bson.M{"name": name})

	record := AssetRecord{}
	err := findResult.Decode(&record)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (e *assetsDb) PutAsset(record *AssetRecord) error {
	opts := options.FindOneAndUpdate().SetUpsert(true)
	result := e.FindOneAndUpdate(context.Background(), bson.M{
		"name": record.Name,
	}, bson.M{
		"$set": record,
	}, opts)

	if result.Err() != nil && result.Err() != mongo.ErrNoDocuments {
		return result.Err()
	}
	return nil
}
