package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/efinder/venue-booking/internal/core/domain"
	"github.com/efinder/venue-booking/internal/core/ports"
)

const collectionVenues = "venues"

type VenueRepository struct {
	col *mongo.Collection
}

func NewVenueRepository(db *mongo.Database) *VenueRepository {
	return &VenueRepository{col: db.Collection(collectionVenues)}
}

type mongoVenue struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description"`
	Location     string             `bson:"location"`
	Capacity     int                `bson:"capacity"`
	Price        float64            `bson:"price"`
	ContactEmail string             `bson:"contact_email"`
	ContactPhone string             `bson:"contact_phone"`
	PhotoURL     string             `bson:"photo_url,omitempty"`
	Owner        primitive.ObjectID `bson:"owner"`
	IsActive     bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d mongoVenue) toDomain() *domain.Venue {
	return &domain.Venue{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Description:  d.Description,
		Location:     d.Location,
		Capacity:     d.Capacity,
		Price:        d.Price,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		PhotoURL:     d.PhotoURL,
		OwnerID:      d.Owner.Hex(),
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// containsRegex builds a case-insensitive substring matcher with the term
// escaped, so user input cannot inject regex syntax.
func containsRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	owner, err := primitive.ObjectIDFromHex(v.OwnerID)
	if err != nil {
		return nil, domain.ErrOwnerNotFound
	}

	now := time.Now().UTC()
	doc := mongoVenue{
		Name:         v.Name,
		Description:  v.Description,
		Location:     v.Location,
		Capacity:     v.Capacity,
		Price:        v.Price,
		ContactEmail: v.ContactEmail,
		ContactPhone: v.ContactPhone,
		PhotoURL:     v.PhotoURL,
		Owner:        owner,
		IsActive:     v.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert venue: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *VenueRepository) FindByID(ctx context.Context, id string) (*domain.Venue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVenueNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoVenue
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("find venue: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VenueRepository) List(ctx context.Context, filter ports.ListVenuesFilter) ([]*domain.Venue, error) {
	query := bson.M{"is_active": true}

	if filter.Location != "" {
		query["location"] = containsRegex(filter.Location)
	}
	if filter.MinCapacity > 0 || filter.MaxCapacity > 0 {
		capRange := bson.M{}
		if filter.MinCapacity > 0 {
			capRange["$gte"] = filter.MinCapacity
		}
		if filter.MaxCapacity > 0 {
			capRange["$lte"] = filter.MaxCapacity
		}
		query["capacity"] = capRange
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		priceRange := bson.M{}
		if filter.MinPrice > 0 {
			priceRange["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			priceRange["$lte"] = filter.MaxPrice
		}
		query["price"] = priceRange
	}
	if filter.OwnerID != "" {
		owner, err := primitive.ObjectIDFromHex(filter.OwnerID)
		if err != nil {
			return nil, nil
		}
		query["owner"] = owner
	}

	return r.find(ctx, query, filter.Limit, filter.Offset)
}

func (r *VenueRepository) Search(ctx context.Context, filter ports.SearchVenuesFilter) ([]*domain.Venue, error) {
	re := containsRegex(filter.Term)
	query := bson.M{
		"is_active": true,
		"$or": bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"location": re},
		},
	}
	if filter.MinCapacity > 0 {
		query["capacity"] = bson.M{"$gte": filter.MinCapacity}
	}
	if filter.MaxPrice > 0 {
		query["price"] = bson.M{"$lte": filter.MaxPrice}
	}

	return r.find(ctx, query, filter.Limit, 0)
}

func (r *VenueRepository) find(ctx context.Context, query bson.M, limit, offset int) ([]*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer cur.Close(ctx)

	var venues []*domain.Venue
	for cur.Next(ctx) {
		var doc mongoVenue
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode venue: %w", err)
		}
		venues = append(venues, doc.toDomain())
	}
	return venues, cur.Err()
}

func (r *VenueRepository) Update(ctx context.Context, id string, fields ports.UpdateVenueFields) (*domain.Venue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVenueNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.Location != nil {
		set["location"] = *fields.Location
	}
	if fields.Capacity != nil {
		set["capacity"] = *fields.Capacity
	}
	if fields.Price != nil {
		set["price"] = *fields.Price
	}
	if fields.ContactEmail != nil {
		set["contact_email"] = *fields.ContactEmail
	}
	if fields.ContactPhone != nil {
		set["contact_phone"] = *fields.ContactPhone
	}
	if fields.PhotoURL != nil {
		set["photo_url"] = *fields.PhotoURL
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc mongoVenue
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("update venue: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VenueRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrVenueNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("soft delete venue: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVenueNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the venue collection relies on.
func (r *VenueRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
