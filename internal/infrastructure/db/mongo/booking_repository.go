package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/efinder/venue-booking/internal/core/domain"
	"github.com/efinder/venue-booking/internal/core/ports"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

type mongoBooking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Venue     primitive.ObjectID `bson:"venue"`
	Organizer primitive.ObjectID `bson:"organizer"`
	EventName string             `bson:"event_name"`
	EventDate time.Time          `bson:"event_date"`
	StartTime string             `bson:"start_time"`
	EndTime   string             `bson:"end_time"`
	TotalCost float64            `bson:"total_cost"`
	Notes     string             `bson:"notes"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d mongoBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:          d.ID.Hex(),
		VenueID:     d.Venue.Hex(),
		OrganizerID: d.Organizer.Hex(),
		EventName:   d.EventName,
		EventDate:   d.EventDate,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		TotalCost:   d.TotalCost,
		Notes:       d.Notes,
		Status:      domain.BookingStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	venue, err := primitive.ObjectIDFromHex(b.VenueID)
	if err != nil {
		return nil, domain.ErrVenueNotFound
	}
	organizer, err := primitive.ObjectIDFromHex(b.OrganizerID)
	if err != nil {
		return nil, domain.ErrOrganizerNotFound
	}

	doc := mongoBooking{
		Venue:     venue,
		Organizer: organizer,
		EventName: b.EventName,
		EventDate: b.EventDate,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		TotalCost: b.TotalCost,
		Notes:     b.Notes,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoBooking
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) List(ctx context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, error) {
	query := bson.M{}

	if filter.VenueID != "" {
		venue, err := primitive.ObjectIDFromHex(filter.VenueID)
		if err != nil {
			return nil, nil
		}
		query["venue"] = venue
	}
	if filter.OrganizerID != "" {
		organizer, err := primitive.ObjectIDFromHex(filter.OrganizerID)
		if err != nil {
			return nil, nil
		}
		query["organizer"] = organizer
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if !filter.EventDate.IsZero() {
		// The whole calendar day: [date, date+24h).
		query["event_date"] = bson.M{
			"$gte": filter.EventDate,
			"$lt":  filter.EventDate.Add(24 * time.Hour),
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}

	return r.find(ctx, query, opts)
}

func (r *BookingRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Booking, error) {
	organizer, err := primitive.ObjectIDFromHex(organizerID)
	if err != nil {
		return nil, domain.ErrOrganizerNotFound
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{"organizer": organizer}, opts)
}

func (r *BookingRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error) {
	venue, err := primitive.ObjectIDFromHex(venueID)
	if err != nil {
		return nil, domain.ErrVenueNotFound
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "event_date", Value: 1},
		{Key: "start_time", Value: 1},
	})
	return r.find(ctx, bson.M{"venue": venue}, opts)
}

func (r *BookingRepository) ListActiveOnDate(ctx context.Context, venueID string, date time.Time, excludeID string) ([]*domain.Booking, error) {
	venue, err := primitive.ObjectIDFromHex(venueID)
	if err != nil {
		return nil, domain.ErrVenueNotFound
	}

	query := bson.M{
		"venue":      venue,
		"event_date": date,
		"status":     bson.M{"$in": bson.A{string(domain.StatusPending), string(domain.StatusConfirmed)}},
	}
	if excludeID != "" {
		if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
			query["_id"] = bson.M{"$ne": oid}
		}
	}

	return r.find(ctx, query, options.Find())
}

func (r *BookingRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []*domain.Booking
	for cur.Next(ctx) {
		var doc mongoBooking
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, doc.toDomain())
	}
	return bookings, cur.Err()
}

func (r *BookingRepository) UpdateDetails(ctx context.Context, id string, fields ports.UpdateBookingFields) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if fields.EventName != nil {
		set["event_name"] = *fields.EventName
	}
	if fields.EventDate != nil {
		set["event_date"] = *fields.EventDate
	}
	if fields.StartTime != nil {
		set["start_time"] = *fields.StartTime
	}
	if fields.EndTime != nil {
		set["end_time"] = *fields.EndTime
	}
	if fields.Notes != nil {
		set["notes"] = *fields.Notes
	}

	return r.findOneAndUpdate(ctx, oid, bson.M{"$set": set})
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}
	update := bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()}}
	return r.findOneAndUpdate(ctx, oid, update)
}

func (r *BookingRepository) findOneAndUpdate(ctx context.Context, oid primitive.ObjectID, update bson.M) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc mongoBooking
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// StatsByVenue aggregates booking counts by status and the revenue of
// confirmed bookings for one venue.
func (r *BookingRepository) StatsByVenue(ctx context.Context, venueID string) (*ports.VenueBookingStats, error) {
	venue, err := primitive.ObjectIDFromHex(venueID)
	if err != nil {
		return nil, domain.ErrVenueNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"venue": venue}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$status",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total_cost"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("venue booking stats: %w", err)
	}
	defer cur.Close(ctx)

	stats := &ports.VenueBookingStats{}
	for cur.Next(ctx) {
		var row struct {
			Status  string  `bson:"_id"`
			Count   int64   `bson:"count"`
			Revenue float64 `bson:"revenue"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode stats row: %w", err)
		}
		stats.Total += row.Count
		switch domain.BookingStatus(row.Status) {
		case domain.StatusPending:
			stats.Pending = row.Count
		case domain.StatusConfirmed:
			stats.Confirmed = row.Count
			stats.ConfirmedRevenue = row.Revenue
		case domain.StatusCancelled:
			stats.Cancelled = row.Count
		}
	}
	return stats, cur.Err()
}

// EnsureIndexes creates the indexes the booking collection relies on; the
// compound venue+event_date index backs the availability scan.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "venue", Value: 1}, {Key: "event_date", Value: 1}}},
		{Keys: bson.D{{Key: "organizer", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
