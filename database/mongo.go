package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/JHyunJung/atdd-subway-map/config"
	"github.com/JHyunJung/atdd-subway-map/models"
)

const (
	stationsCollection = "stations"
	linesCollection    = "lines"
	countersCollection = "counters"
)

type stationDocument struct {
	ID   int64  `bson:"_id"`
	Name string `bson:"name"`
}

type lineDocument struct {
	ID         int64   `bson:"_id"`
	Name       string  `bson:"name"`
	Color      string  `bson:"color"`
	Distance   int     `bson:"distance"`
	StationIDs []int64 `bson:"station_ids"`
}

func (d lineDocument) toLine() *models.Line {
	return &models.Line{
		ID:       d.ID,
		Name:     d.Name,
		Color:    d.Color,
		Distance: d.Distance,
		Stations: models.NewLineStations(d.StationIDs...),
	}
}

// MongoStore keeps stations and lines in MongoDB.
// Ids are sequential integers drawn from the counters collection.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo initializes the MongoDB connection
func ConnectMongo(ctx context.Context, cfg *config.Config) (*MongoStore, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(100).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true).
		SetWriteConcern(writeconcern.Majority()).
		SetReadConcern(readconcern.Majority()).
		SetReadPreference(readpref.Primary())

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	if err = client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error pinging MongoDB: %w", err)
	}

	slog.Info("connected to MongoDB", "database", cfg.MongoDBName)

	return &MongoStore{client: client, db: client.Database(cfg.MongoDBName)}, nil
}

// Migrate creates the indexes used by station deletion checks
func (s *MongoStore) Migrate(ctx context.Context) error {
	_, err := s.db.Collection(linesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "station_ids", Value: 1}},
		Options: options.Index().SetName("line_station_ids_idx"),
	})
	if err != nil {
		return fmt.Errorf("error creating line indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// nextID atomically increments and returns the named sequence
func (s *MongoStore) nextID(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := s.db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", name, err)
	}

	return counter.Seq, nil
}

func (s *MongoStore) CreateStation(ctx context.Context, name string) (models.Station, error) {
	id, err := s.nextID(ctx, stationsCollection)
	if err != nil {
		return models.Station{}, err
	}

	if _, err := s.db.Collection(stationsCollection).InsertOne(ctx, stationDocument{ID: id, Name: name}); err != nil {
		return models.Station{}, fmt.Errorf("failed to create station: %w", err)
	}

	return models.Station{ID: id, Name: name}, nil
}

func (s *MongoStore) FindStation(ctx context.Context, id int64) (models.Station, error) {
	var doc stationDocument

	err := s.db.Collection(stationsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Station{}, models.StationNotFound(id)
		}
		return models.Station{}, fmt.Errorf("failed to find station %d: %w", id, err)
	}

	return models.Station{ID: doc.ID, Name: doc.Name}, nil
}

func (s *MongoStore) ListStations(ctx context.Context) ([]models.Station, error) {
	cursor, err := s.db.Collection(stationsCollection).Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error querying stations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []stationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding stations: %w", err)
	}

	stations := make([]models.Station, 0, len(docs))
	for _, doc := range docs {
		stations = append(stations, models.Station{ID: doc.ID, Name: doc.Name})
	}
	return stations, nil
}

func (s *MongoStore) DeleteStation(ctx context.Context, id int64) error {
	used, err := s.db.Collection(linesCollection).CountDocuments(ctx, bson.M{"station_ids": id})
	if err != nil {
		return fmt.Errorf("failed to check station %d usage: %w", id, err)
	}
	if used > 0 {
		return fmt.Errorf("station %d: %w", id, models.ErrStationInUse)
	}

	if _, err := s.db.Collection(stationsCollection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete station %d: %w", id, err)
	}
	return nil
}

func (s *MongoStore) CreateLine(ctx context.Context, line *models.Line) error {
	id, err := s.nextID(ctx, linesCollection)
	if err != nil {
		return err
	}

	doc := lineDocument{
		ID:         id,
		Name:       line.Name,
		Color:      line.Color,
		Distance:   line.Distance,
		StationIDs: line.Stations.IDs(),
	}
	if _, err := s.db.Collection(linesCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create line: %w", err)
	}

	line.ID = id
	return nil
}

func (s *MongoStore) FindLine(ctx context.Context, id int64) (*models.Line, error) {
	var doc lineDocument

	err := s.db.Collection(linesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.LineNotFound(id)
		}
		return nil, fmt.Errorf("failed to find line %d: %w", id, err)
	}

	return doc.toLine(), nil
}

func (s *MongoStore) ListLines(ctx context.Context) ([]*models.Line, error) {
	cursor, err := s.db.Collection(linesCollection).Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error querying lines: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []lineDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding lines: %w", err)
	}

	lines := make([]*models.Line, 0, len(docs))
	for _, doc := range docs {
		lines = append(lines, doc.toLine())
	}
	return lines, nil
}

func (s *MongoStore) UpdateLine(ctx context.Context, line *models.Line) error {
	res, err := s.db.Collection(linesCollection).UpdateOne(ctx,
		bson.M{"_id": line.ID},
		bson.M{"$set": bson.M{"name": line.Name, "color": line.Color}},
	)
	if err != nil {
		return fmt.Errorf("failed to update line %d: %w", line.ID, err)
	}
	if res.MatchedCount == 0 {
		return models.LineNotFound(line.ID)
	}
	return nil
}

func (s *MongoStore) DeleteLine(ctx context.Context, id int64) error {
	if _, err := s.db.Collection(linesCollection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete line %d: %w", id, err)
	}
	return nil
}
