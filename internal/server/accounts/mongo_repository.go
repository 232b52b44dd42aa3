package accounts

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dmitrijs2005/linkhub/internal/common"
)

// MongoRepository is the document-store adapter, built on the official
// mongo-go driver. The normalized email is the document _id (see the bson
// tags on Account), so InsertOne gets create-if-absent semantics from the
// collection's mandatory unique index on _id.
type MongoRepository struct {
	accounts *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{accounts: db.Collection("accounts")}
}

func (r *MongoRepository) Create(ctx context.Context, account *Account) error {
	_, err := r.accounts.InsertOne(ctx, account)
	return translateMongoWriteError(err)
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	account := &Account{}
	err := r.accounts.FindOne(ctx, bson.M{"_id": email}).Decode(account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}
	return account, nil
}

func (r *MongoRepository) ReplaceProfile(ctx context.Context, email string, profile Profile) error {
	update := bson.M{"$set": bson.M{"profile": profile, "updatedAt": profile.UpdatedAt}}

	res, err := r.accounts.UpdateByID(ctx, email, update)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// translateMongoWriteError maps the driver's duplicate-key signal to the
// common ErrorAlreadyExists kind; any other failure is a storage error.
func translateMongoWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return common.ErrorAlreadyExists
	}
	return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
}
