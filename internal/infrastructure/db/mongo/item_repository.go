package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tokoku/store-api/internal/core/domain"
)

const itemCollection = "items"

type MongoItemRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *MongoItemRepository {
	return &MongoItemRepository{db: db, coll: db.Collection(itemCollection)}
}

type mongoItem struct {
	ID    int64  `bson:"_id"`
	Name  string `bson:"name"`
	Price int64  `bson:"price"`
}

func (r *MongoItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	id, err := nextSequence(ctx, r.db, itemCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoItem{ID: id, Name: item.Name, Price: item.Price}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return &domain.Item{ID: doc.ID, Name: doc.Name, Price: doc.Price}, nil
}

func (r *MongoItemRepository) ListAll(ctx context.Context) ([]domain.Item, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoItem
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	items := make([]domain.Item, 0, len(docs))
	for _, mi := range docs {
		items = append(items, domain.Item{ID: mi.ID, Name: mi.Name, Price: mi.Price})
	}
	return items, nil
}
