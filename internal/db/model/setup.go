package model

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sudostake/vault-indexer/internal/config"
)

type index struct {
	Indexes map[string]int
	Unique  bool
}

var vaultIndexes = []index{
	{Indexes: map[string]int{"owner": 1}, Unique: false},
	{Indexes: map[string]int{"state": 1}, Unique: false},
}

// Setup creates the indexes of every whitelisted factory collection. It's safe to call on every start.
func Setup(ctx context.Context, dbCfg *config.DbConfig, factoryIDs []string) error {
	credential := options.Credential{
		Username: dbCfg.Username,
		Password: dbCfg.Password,
	}
	clientOpts := options.Client().ApplyURI(dbCfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to disconnect setup client")
		}
	}()

	database := client.Database(dbCfg.DbName)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, factoryID := range factoryIDs {
		collection := VaultCollection(factoryID)
		for _, idx := range vaultIndexes {
			if err := createIndex(ctx, database, collection, idx); err != nil {
				return fmt.Errorf("failed to create index on %s: %w", collection, err)
			}
		}
	}

	log.Ctx(ctx).Info().Int("factories", len(factoryIDs)).Msg("Collections and indexes created successfully")
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	keys := bson.D{}
	for field, order := range idx.Indexes {
		keys = append(keys, bson.E{Key: field, Value: order})
	}

	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	_, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel)
	return err
}
