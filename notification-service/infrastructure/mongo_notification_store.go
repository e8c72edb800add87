package infrastructure

import (
	"context"
	"time"

	"github.com/draftea/booking-system/notification-service/domain"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ domain.NotificationStore = (*MongoNotificationStore)(nil)

const NotificationCollection = "notifications"

type mongoNotification struct {
	ID               string     `bson:"_id"`
	BookingID        string     `bson:"booking_id"`
	UserID           string     `bson:"user_id"`
	UserEmail        string     `bson:"user_email"`
	EventID          string     `bson:"event_id"`
	EventName        string     `bson:"event_name"`
	Tickets          int        `bson:"tickets"`
	TotalPrice       float64    `bson:"total_price"`
	Status           string     `bson:"status"`
	NotificationType string     `bson:"notification_type"`
	Sent             bool       `bson:"sent"`
	SentAt           *time.Time `bson:"sent_at"`
	Timestamp        string     `bson:"timestamp"`
	CreatedAt        time.Time  `bson:"created_at"`
}

// MongoNotificationStore keeps one document per received event, keyed by event ID
type MongoNotificationStore struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoNotificationStore(db *mongo.Database) *MongoNotificationStore {
	return &MongoNotificationStore{
		collection: db.Collection(NotificationCollection),
		now:        time.Now,
	}
}

// ConnectMongo connects and pings within timeout
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to MongoDB")
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	return client, nil
}

// EnsureIndexes creates the lookup indexes used by support tooling
func (s *MongoNotificationStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "booking_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "sent", Value: 1}, {Key: "created_at", Value: 1}}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create notification indexes")
	}
	return nil
}

func (s *MongoNotificationStore) Insert(ctx context.Context, notification *domain.Notification) error {
	_, err := s.collection.InsertOne(ctx, toMongoNotification(notification))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateNotification
		}
		return errors.Wrapf(err, "failed to insert notification %s", notification.ID)
	}
	return nil
}

func (s *MongoNotificationStore) MarkSent(ctx context.Context, id string) error {
	res, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"sent": true, "sent_at": s.now().UTC()}},
	)
	if err != nil {
		return errors.Wrapf(err, "failed to mark notification %s as sent", id)
	}
	if res.MatchedCount == 0 {
		return errors.Errorf("notification %s not found", id)
	}
	return nil
}

func (s *MongoNotificationStore) Find(ctx context.Context, filter domain.NotificationFilter) ([]*domain.Notification, error) {
	order := -1
	if filter.OldestFirst {
		order = 1
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: order}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := s.collection.Find(ctx, toBSONFilter(filter), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query notifications")
	}

	var docs []mongoNotification
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode notifications")
	}

	notifications := make([]*domain.Notification, 0, len(docs))
	for i := range docs {
		notifications = append(notifications, docs[i].toDomain())
	}
	return notifications, nil
}

func (s *MongoNotificationStore) Count(ctx context.Context, filter domain.NotificationFilter) (int64, error) {
	n, err := s.collection.CountDocuments(ctx, toBSONFilter(filter))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count notifications")
	}
	return n, nil
}

func toBSONFilter(f domain.NotificationFilter) bson.D {
	filter := bson.D{}
	if f.UserID != "" {
		filter = append(filter, bson.E{Key: "user_id", Value: f.UserID})
	}
	if f.BookingID != "" {
		filter = append(filter, bson.E{Key: "booking_id", Value: f.BookingID})
	}
	switch len(f.Statuses) {
	case 0:
	case 1:
		filter = append(filter, bson.E{Key: "status", Value: f.Statuses[0]})
	default:
		filter = append(filter, bson.E{Key: "status", Value: bson.M{"$in": f.Statuses}})
	}
	if f.UnsentOnly {
		filter = append(filter, bson.E{Key: "sent", Value: false})
	}
	return filter
}

func (m *mongoNotification) toDomain() *domain.Notification {
	return &domain.Notification{
		ID:         m.ID,
		BookingID:  m.BookingID,
		UserID:     m.UserID,
		UserEmail:  m.UserEmail,
		EventID:    m.EventID,
		EventName:  m.EventName,
		Tickets:    m.Tickets,
		TotalPrice: m.TotalPrice,
		Status:     m.Status,
		Type:       domain.NotificationType(m.NotificationType),
		Sent:       m.Sent,
		SentAt:     m.SentAt,
		Timestamp:  m.Timestamp,
		CreatedAt:  m.CreatedAt,
	}
}

func toMongoNotification(n *domain.Notification) *mongoNotification {
	return &mongoNotification{
		ID:               n.ID,
		BookingID:        n.BookingID,
		UserID:           n.UserID,
		UserEmail:        n.UserEmail,
		EventID:          n.EventID,
		EventName:        n.EventName,
		Tickets:          n.Tickets,
		TotalPrice:       n.TotalPrice,
		Status:           n.Status,
		NotificationType: string(n.Type),
		Sent:             n.Sent,
		SentAt:           n.SentAt,
		Timestamp:        n.Timestamp,
		CreatedAt:        n.CreatedAt,
	}
}
