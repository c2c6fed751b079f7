package accounts

import (
	"context"

	"helios-node/modules/db"
	"helios-node/modules/db/chain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type accountsDb struct {
	*db.Collection
}

func New(d *chain.ChainDb) Accounts {
	return &accountsDb{db.NewCollection(d.DbInstance, "accounts")}
}

func (e *accountsDb) Init() error {
	err := e.Collection.Init()
	if err != nil {
		return err
	}

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "address", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err = e.Collection.Collection.Indexes().CreateOne(context.Background(), indexModel)

	return err
}

func (e *accountsDb) GetAccount(address string) (*AccountRecord, error) {
	findResult := e.FindOne(context.Background(), bson.M{"address": address})

	record := AccountRecord{}
	err := findResult.Decode(&record)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (e *accountsDb) PutAccount(record *AccountRecord) error {
	opts := options.FindOneAndUpdate().SetUpsert(true)
	result := e.FindOneAndUpdate(context.Background(), bson.M{
		"address": record.Address,
	}, bson.M{
		"$set": record,
	}, opts)

	if result.Err() != nil && result.Err() != mongo.ErrNoDocuments {
		return result.Err()
	}
	return nil
}
