package shipmentRepo

import (
	"context"
	"errors"
	"time"

	"shipquote/database"
	"shipquote/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoShipmentRepo struct {
	coll *mongo.Collection
}

// NewMongoShipmentRepo returns a ShipmentRepository backed by the shared Mongo client.
func NewMongoShipmentRepo() ShipmentRepository {
	coll := database.MongoClient.Database("shipquote").Collection("shipments")
	return &mongoShipmentRepo{coll: coll}
}

// Create inserts a new shipment and returns its ID.
func (r *mongoShipmentRepo) Create(ctx context.Context, shipment models.Shipment) (string, error) {
	if shipment.ID == "" {
		shipment.ID = uuid.New().String()
	}
	shipment.CreatedAt = time.Now()
	shipment.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, shipment)
	if err != nil {
		return "", err
	}
	return shipment.ID, nil
}

// GetByID returns a shipment by its ID.
func (r *mongoShipmentRepo) GetByID(ctx context.Context, id string) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&shipment)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New("shipment not found")
	}
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

// GetByUserID fetches all shipments belonging to a user.
func (r *mongoShipmentRepo) GetByUserID(ctx context.Context, userID string) ([]models.Shipment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shipments []models.Shipment
	if err := cursor.All(ctx, &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

// Update replaces a shipment document and bumps its UpdatedAt.
func (r *mongoShipmentRepo) Update(ctx context.Context, shipment models.Shipment) error {
	shipment.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": shipment.ID}, shipment)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("shipment not found")
	}
	return nil
}

// DeleteByID removes a shipment by ID.
func (r *mongoShipmentRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("shipment not found")
	}
	return nil
}
