package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
)

// CollectionName is the MongoDB collection holding transactions.
const CollectionName = "transactions"

// transactionDocument is the persisted shape:
// {_id, amount, date, description, category, createdAt, updatedAt}.
type transactionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Amount      interface{}        `bson:"amount"`
	Date        string             `bson:"date"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type mongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a TransactionStore backed by the transactions
// collection of db.
func NewMongoStore(db *mongo.Database) TransactionStore {
	return &mongoStore{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the index that backs newest-first listing.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create createdAt index: %w", err)
	}
	return nil
}

func (s *mongoStore) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	rec := prepare(tx)

	amount, err := primitive.ParseDecimal128(rec.Amount.String())
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount out of range")
	}

	// Mongo stores milliseconds; truncate so the returned record matches a re-read.
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := transactionDocument{
		ID:          primitive.NewObjectID(),
		Amount:      amount,
		Date:        rec.Date,
		Description: rec.Description,
		Category:    string(rec.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	return documentToModel(doc)
}

func (s *mongoStore) List(ctx context.Context) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var docs []transactionDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	transactions := make([]models.Transaction, 0, len(docs))
	for _, doc := range docs {
		tx, err := documentToModel(doc)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		transactions = append(transactions, *tx)
	}
	return transactions, nil
}

func (s *mongoStore) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not an ObjectID, so no document can have it.
		return nil
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func documentToModel(doc transactionDocument) (*models.Transaction, error) {
	amount, err := amountFromBSON(doc.Amount)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", doc.ID.Hex(), err)
	}
	return &models.Transaction{
		Base: models.Base{
			ID:        doc.ID.Hex(),
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		},
		Amount:      amount,
		Date:        doc.Date,
		Description: doc.Description,
		Category:    models.NormalizeCategory(models.Category(doc.Category)),
	}, nil
}

// amountFromBSON accepts Decimal128 as written by this store as well as the
// plain numbers older documents were saved with.
func amountFromBSON(v interface{}) (decimal.Decimal, error) {
	switch a := v.(type) {
	case nil:
		return decimal.Zero, nil
	case primitive.Decimal128:
		return decimal.NewFromString(a.String())
	case float64:
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return decimal.Zero, fmt.Errorf("amount is not a finite number")
		}
		return decimal.NewFromFloat(a), nil
	case int32:
		return decimal.NewFromInt32(a), nil
	case int64:
		return decimal.NewFromInt(a), nil
	case string:
		return decimal.NewFromString(a)
	default:
		return decimal.Zero, fmt.Errorf("unsupported amount type %T", v)
	}
}
