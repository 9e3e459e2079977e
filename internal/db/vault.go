package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sudostake/vault-indexer/internal/db/model"
)

func (db *Database) GetVault(
	ctx context.Context, factoryID, vaultID string,
) (*model.VaultDocument, error) {
	filter := bson.M{"_id": vaultID}

	var doc model.VaultDocument
	err := db.collection(model.VaultCollection(factoryID)).
		FindOne(ctx, filter).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     vaultID,
				Message: fmt.Sprintf("vault %s not found in factory %s", vaultID, factoryID),
			}
		}
		return nil, err
	}

	return &doc, nil
}

// UpsertVault replaces every vault field of the document. Nil optional fields are
// written as null so a vault leaving a state never keeps stale request/offer data.
func (db *Database) UpsertVault(
	ctx context.Context, factoryID string, doc *model.VaultDocument,
) error {
	if doc == nil {
		return errors.New("vault document is nil")
	}

	filter := bson.M{"_id": doc.ID}
	update := bson.M{
		"$set": bson.M{
			"owner":             doc.Owner,
			"state":             doc.State,
			"liquidity_request": doc.LiquidityRequest,
			"accepted_offer":    doc.AcceptedOffer,
			"liquidation":       doc.Liquidation,
			"factory_id":        factoryID,
			"tx_hash":           doc.TxHash,
		},
		"$setOnInsert": bson.M{
			"created_at": time.Now().UTC(),
		},
		"$currentDate": bson.M{
			"updated_at": true,
		},
	}

	_, err := db.collection(model.VaultCollection(factoryID)).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     doc.ID,
				Message: "vault upsert raced with another insert",
			}
		}
		return err
	}

	return nil
}

func (db *Database) FindVaultIDsByOwner(
	ctx context.Context, factoryID, owner string,
) ([]string, error) {
	return db.findVaultIDs(ctx, factoryID, bson.M{"owner": owner})
}

func (db *Database) FindAllVaultIDs(ctx context.Context, factoryID string) ([]string, error) {
	return db.findVaultIDs(ctx, factoryID, bson.M{})
}

func (db *Database) findVaultIDs(ctx context.Context, factoryID string, filter bson.M) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := db.collection(model.VaultCollection(factoryID)).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := []string{}
	for cursor.Next(ctx) {
		var item struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		ids = append(ids, item.ID)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
