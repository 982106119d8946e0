package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type eventDoc struct {
	ID          string    `bson:"id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Category    string    `bson:"category"`
	Date        time.Time `bson:"date"`
	Time        string    `bson:"time"`
	Mode        string    `bson:"mode"`
	Location    string    `bson:"location"`
	Image       string    `bson:"image"`
	Capacity    int       `bson:"capacity"`
	BookedSeats int       `bson:"bookedSeats"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func toEventDoc(e *domain.Event) eventDoc {
	return eventDoc{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
		Time:        e.Time,
		Mode:        string(e.Mode),
		Location:    e.Location,
		Image:       e.Image,
		Capacity:    e.Capacity,
		BookedSeats: e.BookedSeats,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (d eventDoc) toDomain() *domain.Event {
	return &domain.Event{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Date:        d.Date,
		Time:        d.Time,
		Mode:        domain.EventMode(d.Mode),
		Location:    d.Location,
		Image:       d.Image,
		Capacity:    d.Capacity,
		BookedSeats: d.BookedSeats,
		Status:      domain.EventStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepo(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	if _, err := r.coll.InsertOne(ctx, toEventDoc(e)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: event %s already exists", domain.ErrInvalidRequest, e.ID)
		}
		return storageErr("insert event", err)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	update := bson.M{"$set": bson.M{
		"title":       e.Title,
		"description": e.Description,
		"category":    e.Category,
		"date":        e.Date,
		"time":        e.Time,
		"mode":        string(e.Mode),
		"location":    e.Location,
		"image":       e.Image,
		"capacity":    e.Capacity,
		"status":      string(e.Status),
		"updatedAt":   e.UpdatedAt,
	}}

	// capacity may never drop below seats booked in the meantime
	filter := bson.M{"id": e.ID, "bookedSeats": bson.M{"$lte": e.Capacity}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return storageErr("update event", err)
	}
	if res.MatchedCount == 0 {
		if err = r.mustExist(ctx, e.ID); err != nil {
			return err
		}
		return fmt.Errorf("%w: capacity cannot drop below booked seats", domain.ErrInvalidRequest)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "bookedSeats": 0})
	if err != nil {
		return storageErr("delete event", err)
	}
	if res.DeletedCount == 0 {
		if err = r.mustExist(ctx, id); err != nil {
			return err
		}
		return domain.ErrEventHasBookings
	}
	return nil
}

func (r *EventRepository) mustExist(ctx context.Context, id string) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return storageErr("check event", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var doc eventDoc
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, storageErr("get event", err)
	}
	return doc.toDomain(), nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(filter.Category) + "$", Options: "i"}
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Mode != "" {
		query["mode"] = string(filter.Mode)
	}
	if filter.Query != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"location": re},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "id", Value: 1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, storageErr("list events", err)
	}
	defer cur.Close(ctx)

	var docs []eventDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, storageErr("decode events", err)
	}

	res := make([]*domain.Event, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toDomain())
	}
	return res, nil
}

// IncrementBookedSeats is a single conditional $inc, matched only while the
// counter still leaves room for delta.
func (r *EventRepository) IncrementBookedSeats(ctx context.Context, id string, delta, expectedMax int) error {
	filter := bson.M{"id": id, "bookedSeats": bson.M{"$lte": expectedMax}}
	update := bson.M{
		"$inc": bson.M{"bookedSeats": delta},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return storageErr("increment booked seats", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrConcurrentUpdateConflict
	}
	return nil
}

func (r *EventRepository) DecrementBookedSeats(ctx context.Context, id string, delta int) error {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "bookedSeats", Value: bson.D{{Key: "$max", Value: bson.A{
				0,
				bson.D{{Key: "$subtract", Value: bson.A{"$bookedSeats", delta}}},
			}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return storageErr("decrement booked seats", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) SetBookedSeats(ctx context.Context, id string, from, to int) error {
	filter := bson.M{"id": id, "bookedSeats": from}
	update := bson.M{"$set": bson.M{"bookedSeats": to, "updatedAt": time.Now().UTC()}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return storageErr("set booked seats", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrConcurrentUpdateConflict
	}
	return nil
}
