package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techchallenge/user-management/internal/core/domain"
)

type CustomerRepository struct {
	col *mongo.Collection
	ids *sequence
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{
		col: db.Collection(collectionCustomers),
		ids: newSequence(db, collectionCustomers),
	}
}

// customerDoc keeps a lower-cased email copy for the unique index.
type customerDoc struct {
	ID         int64      `bson:"_id"`
	CPF        string     `bson:"cpf"`
	Name       string     `bson:"name"`
	Surname    string     `bson:"surname"`
	Email      string     `bson:"email"`
	EmailLower string     `bson:"email_lower"`
	BirthDate  time.Time  `bson:"birth_date"`
	IsActive   bool       `bson:"is_active"`
	CreatedAt  time.Time  `bson:"created_at"`
	UpdatedAt  *time.Time `bson:"updated_at,omitempty"`
}

func toCustomerDoc(c *domain.Customer) customerDoc {
	doc := customerDoc{
		ID:         c.ID,
		CPF:        c.CPF,
		Name:       c.Name,
		Surname:    c.Surname,
		Email:      c.Email,
		EmailLower: strings.ToLower(strings.TrimSpace(c.Email)),
		BirthDate:  c.BirthDate,
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
	}
	if !c.UpdatedAt.IsZero() {
		u := c.UpdatedAt
		doc.UpdatedAt = &u
	}
	return doc
}

func (d customerDoc) toDomain() *domain.Customer {
	c := &domain.Customer{
		Person: domain.Person{
			CPF:       d.CPF,
			Name:      d.Name,
			Surname:   d.Surname,
			Email:     d.Email,
			BirthDate: d.BirthDate.UTC(),
		},
		ID:        d.ID,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt.UTC(),
	}
	if d.UpdatedAt != nil {
		c.UpdatedAt = d.UpdatedAt.UTC()
	}
	return c
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx)
	if err != nil {
		return nil, err
	}

	doc := toCustomerDoc(c)
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toCustomerDoc(c)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCustomerNotFound
	}
	return doc.toDomain(), nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CustomerRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	return r.findOne(ctx, bson.M{"cpf": cpf})
}

func (r *CustomerRepository) findOne(ctx context.Context, filter bson.M) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc customerDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return doc.toDomain(), nil
}
