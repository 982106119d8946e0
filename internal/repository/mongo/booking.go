package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/rawatanuj07/eventease/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookingDoc struct {
	ID          string    `bson:"_id"`
	EventID     string    `bson:"eventId"`
	UserID      string    `bson:"userId"`
	SeatsBooked int       `bson:"seatsBooked"`
	Status      string    `bson:"status"`
	BookingTime time.Time `bson:"bookingTime"`
}

func (d bookingDoc) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:          d.ID,
		EventID:     d.EventID,
		UserID:      d.UserID,
		SeatsBooked: d.SeatsBooked,
		Status:      domain.BookingStatus(d.Status),
		BookingTime: d.BookingTime,
	}
}

type bookingDetailsDoc struct {
	bookingDoc `bson:",inline"`
	Event      struct {
		Title    string    `bson:"title"`
		Date     time.Time `bson:"date"`
		Time     string    `bson:"time"`
		Location string    `bson:"location"`
	} `bson:"event"`
}

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepo(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

func (r *BookingRepository) SumActiveSeats(ctx context.Context, eventID, userID string) (int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"eventId": eventID, "userId": userID, "status": activeStatusFilter()}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$seatsBooked"}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, storageErr("sum active seats", err)
	}
	defer cur.Close(ctx)

	var res []struct {
		Total int `bson:"total"`
	}
	if err = cur.All(ctx, &res); err != nil {
		return 0, storageErr("decode active seats", err)
	}
	if len(res) == 0 {
		return 0, nil
	}
	return res[0].Total, nil
}

func (r *BookingRepository) FindActive(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	filter := bson.M{"eventId": eventID, "userId": userID, "status": activeStatusFilter()}
	opts := options.FindOne().SetSort(bson.D{{Key: "bookingTime", Value: -1}})

	var doc bookingDoc
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storageErr("find active booking", err)
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *domain.Booking) error {
	doc := bookingDoc{
		ID:          b.ID,
		EventID:     b.EventID,
		UserID:      b.UserID,
		SeatsBooked: b.SeatsBooked,
		Status:      string(b.Status),
		BookingTime: b.BookingTime,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return storageErr("insert booking", err)
	}
	return nil
}

func (r *BookingRepository) AddSeats(ctx context.Context, id string, delta int, at time.Time) error {
	update := bson.M{
		"$inc": bson.M{"seatsBooked": delta},
		"$set": bson.M{"bookingTime": at},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return storageErr("add seats", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var doc bookingDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storageErr("get booking", err)
	}
	return doc.toDomain(), nil
}

// SetStatus matches only documents whose status differs, so two racing
// cancellations cannot both report a change.
func (r *BookingRepository) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (bool, error) {
	filter := bson.M{"_id": id, "status": bson.M{"$ne": string(status)}}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return false, storageErr("set booking status", err)
	}
	if res.MatchedCount > 0 {
		return true, nil
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, storageErr("check booking", err)
	}
	if n == 0 {
		return false, domain.ErrBookingNotFound
	}
	return false, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         eventsCollection,
			"localField":   "eventId",
			"foreignField": "id",
			"as":           "event",
		}}},
		{{Key: "$unwind", Value: "$event"}},
		{{Key: "$sort", Value: bson.D{{Key: "bookingTime", Value: -1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storageErr("list user bookings", err)
	}
	defer cur.Close(ctx)

	var docs []bookingDetailsDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, storageErr("decode bookings", err)
	}

	res := make([]*domain.BookingDetails, 0, len(docs))
	for _, d := range docs {
		res = append(res, &domain.BookingDetails{
			Booking:       *d.toDomain(),
			EventTitle:    d.Event.Title,
			EventDate:     d.Event.Date,
			EventTime:     d.Event.Time,
			EventLocation: d.Event.Location,
		})
	}
	return res, nil
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "bookingTime", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"eventId": eventID}, opts)
	if err != nil {
		return nil, storageErr("list event bookings", err)
	}
	defer cur.Close(ctx)

	var docs []bookingDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, storageErr("decode bookings", err)
	}

	res := make([]*domain.Booking, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toDomain())
	}
	return res, nil
}

func (r *BookingRepository) ActiveSeatsByEvent(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": activeStatusFilter()}}},
		{{Key: "$group", Value: bson.M{"_id": "$eventId", "total": bson.M{"$sum": "$seatsBooked"}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storageErr("active seats by event", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		EventID string `bson:"_id"`
		Total   int    `bson:"total"`
	}
	if err = cur.All(ctx, &rows); err != nil {
		return nil, storageErr("decode active seats", err)
	}

	res := make(map[string]int, len(rows))
	for _, row := range rows {
		res[row.EventID] = row.Total
	}
	return res, nil
}
