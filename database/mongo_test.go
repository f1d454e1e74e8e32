package database

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/JHyunJung/atdd-subway-map/models"
)

func TestLineDocumentToLine(t *testing.T) {
	doc := lineDocument{
		ID:         3,
		Name:       "신분당선",
		Color:      "bg-red-600",
		Distance:   10,
		StationIDs: []int64{1, 2},
	}

	line := doc.toLine()

	if line.ID != 3 || line.Name != "신분당선" || line.Color != "bg-red-600" || line.Distance != 10 {
		t.Fatalf("unexpected line %+v", line)
	}
	if !reflect.DeepEqual(line.Stations.IDs(), []int64{1, 2}) {
		t.Fatalf("unexpected stations %v", line.Stations.IDs())
	}

	doc.StationIDs[0] = 99
	if line.Stations.IDs()[0] != 1 {
		t.Fatalf("line shares station slice with the document")
	}
}

func newMockMongoStore(mt *mtest.T) *MongoStore {
	return &MongoStore{client: mt.Client, db: mt.DB}
}

func namespace(mt *mtest.T, collection string) string {
	return mt.DB.Name() + "." + collection
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sequential station ids", func(mt *mtest.T) {
		s := newMockMongoStore(mt)
		counter := func(seq int64) bson.D {
			return bson.D{
				{Key: "ok", Value: 1},
				{Key: "value", Value: bson.D{{Key: "_id", Value: stationsCollection}, {Key: "seq", Value: seq}}},
			}
		}
		mt.AddMockResponses(
			counter(1), mtest.CreateSuccessResponse(),
			counter(2), mtest.CreateSuccessResponse(),
		)

		first, err := s.CreateStation(context.Background(), "강남역")
		if err != nil {
			t.Fatalf("CreateStation: %v", err)
		}
		second, err := s.CreateStation(context.Background(), "역삼역")
		if err != nil {
			t.Fatalf("CreateStation: %v", err)
		}
		if first.ID != 1 || second.ID != 2 {
			t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
		}
	})

	mt.Run("find station not found", func(mt *mtest.T) {
		s := newMockMongoStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt, stationsCollection), mtest.FirstBatch))

		if _, err := s.FindStation(context.Background(), 9); !errors.Is(err, models.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	mt.Run("find line not found", func(mt *mtest.T) {
		s := newMockMongoStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt, linesCollection), mtest.FirstBatch))

		_, err := s.FindLine(context.Background(), 4)
		var nf *models.NotFoundError
		if !errors.As(err, &nf) || nf.Entity != "line" || nf.ID != 4 {
			t.Fatalf("expected line 4 not found, got %v", err)
		}
	})

	mt.Run("find line", func(mt *mtest.T) {
		s := newMockMongoStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt, linesCollection), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: int64(1)},
			{Key: "name", Value: "신분당선"},
			{Key: "color", Value: "bg-red-600"},
			{Key: "distance", Value: 10},
			{Key: "station_ids", Value: bson.A{int64(1), int64(2)}},
		}))

		line, err := s.FindLine(context.Background(), 1)
		if err != nil {
			t.Fatalf("FindLine: %v", err)
		}
		if line.Name != "신분당선" || !reflect.DeepEqual(line.Stations.IDs(), []int64{1, 2}) {
			t.Fatalf("unexpected line %+v", line)
		}
	})

	mt.Run("update missing line", func(mt *mtest.T) {
		s := newMockMongoStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := s.UpdateLine(context.Background(), &models.Line{ID: 42, Name: "3호선", Color: "bg-blue-600"})
		if !errors.Is(err, models.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	mt.Run("update existing line", func(mt *mtest.T) {
		s := newMockMongoStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		if err := s.UpdateLine(context.Background(), &models.Line{ID: 1, Name: "3호선", Color: "bg-blue-600"}); err != nil {
			t.Fatalf("UpdateLine: %v", err)
		}
	})

	mt.Run("delete station in use", func(mt *mtest.T) {
		s := newMockMongoStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt, linesCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: int64(1)}}))

		if err := s.DeleteStation(context.Background(), 1); !errors.Is(err, models.ErrStationInUse) {
			t.Fatalf("expected station in use, got %v", err)
		}
	})

	mt.Run("delete unused station", func(mt *mtest.T) {
		s := newMockMongoStore(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt, linesCollection), mtest.FirstBatch),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		if err := s.DeleteStation(context.Background(), 3); err != nil {
			t.Fatalf("DeleteStation: %v", err)
		}
	})
}
