// Package mongostore keeps game records in a MongoDB collection. Documents
// follow the mongoose layout, so numeric fields may be stored as doubles.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"dartsleague/internal/games"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
)

const (
	// DefaultDatabase is used when the URI names no database.
	DefaultDatabase = "test"
	Collection      = "games"
)

type scoresDocument struct {
	Player1 []int `bson:"player1"`
	Player2 []int `bson:"player2"`
}

type gameDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Player1ID int                `bson:"player1Id"`
	Player2ID int                `bson:"player2Id"`
	Scores    scoresDocument     `bson:"scores"`
	WinnerID  *int               `bson:"winnerId,omitempty"`
	Date      *time.Time         `bson:"date,omitempty"`
}

type Store struct {
	client *mongo.Client
	games  *mongo.Collection
	log    *zap.Logger
}

func Connect(ctx context.Context, uri string, log *zap.Logger) (*Store, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("parsing mongodb uri: %w", err)
	}
	dbName := cs.Database
	if dbName == "" {
		dbName = DefaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	log.Info("connected to MongoDB", zap.String("database", dbName))

	return &Store{
		client: client,
		games:  client.Database(dbName).Collection(Collection),
		log:    log,
	}, nil
}

func (s *Store) Insert(ctx context.Context, g *games.Game) (string, error) {
	doc := toDocument(g)
	res, err := s.games.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("saving game: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(res.InsertedID), nil
	}
	return id.Hex(), nil
}

func (s *Store) All(ctx context.Context) ([]games.Game, error) {
	cur, err := s.games.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	var docs []gameDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding games: %w", err)
	}

	list := make([]games.Game, 0, len(docs))
	for _, d := range docs {
		list = append(list, fromDocument(d))
	}
	return list, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func toDocument(g *games.Game) gameDocument {
	c := g.Clone()
	return gameDocument{
		Player1ID: c.Player1ID,
		Player2ID: c.Player2ID,
		Scores:    scoresDocument{Player1: c.Scores.Player1, Player2: c.Scores.Player2},
		WinnerID:  c.WinnerID,
		Date:      c.Date,
	}
}

func fromDocument(d gameDocument) games.Game {
	g := games.Game{
		ID:        d.ID.Hex(),
		Player1ID: d.Player1ID,
		Player2ID: d.Player2ID,
		Scores:    games.Scores{Player1: d.Scores.Player1, Player2: d.Scores.Player2},
		WinnerID:  d.WinnerID,
	}
	if d.Date != nil {
		t := d.Date.UTC()
		g.Date = &t
	}
	g.Normalize()
	return g
}

var _ games.Store = (*Store)(nil)
