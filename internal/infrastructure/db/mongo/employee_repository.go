package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techchallenge/user-management/internal/core/domain"
)

type EmployeeRepository struct {
	col *mongo.Collection
	ids *sequence
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{
		col: db.Collection(collectionEmployees),
		ids: newSequence(db, collectionEmployees),
	}
}

// employeeDoc stores a lower-cased copy of the email so lookups and the
// unique index ignore case.
type employeeDoc struct {
	ID           int64      `bson:"_id"`
	CPF          string     `bson:"cpf"`
	Name         string     `bson:"name"`
	Surname      string     `bson:"surname"`
	Email        string     `bson:"email"`
	EmailLower   string     `bson:"email_lower"`
	BirthDate    time.Time  `bson:"birth_date"`
	PasswordHash string     `bson:"password"`
	Role         string     `bson:"role"`
	IsActive     bool       `bson:"is_active"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    *time.Time `bson:"updated_at,omitempty"`
}

func toEmployeeDoc(e *domain.Employee) employeeDoc {
	doc := employeeDoc{
		ID:           e.ID,
		CPF:          e.CPF,
		Name:         e.Name,
		Surname:      e.Surname,
		Email:        e.Email,
		EmailLower:   strings.ToLower(strings.TrimSpace(e.Email)),
		BirthDate:    e.BirthDate,
		PasswordHash: e.PasswordHash,
		Role:         e.Role.String(),
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
	}
	if !e.UpdatedAt.IsZero() {
		u := e.UpdatedAt
		doc.UpdatedAt = &u
	}
	return doc
}

func (d employeeDoc) toDomain() *domain.Employee {
	e := &domain.Employee{
		Person: domain.Person{
			CPF:       d.CPF,
			Name:      d.Name,
			Surname:   d.Surname,
			Email:     d.Email,
			BirthDate: d.BirthDate.UTC(),
		},
		ID:           d.ID,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt.UTC(),
	}
	if d.UpdatedAt != nil {
		e.UpdatedAt = d.UpdatedAt.UTC()
	}
	return e
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx)
	if err != nil {
		return nil, err
	}

	doc := toEmployeeDoc(e)
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toEmployeeDoc(e)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	return doc.toDomain(), nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, e *domain.Employee) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": e.ID})
	if err != nil {
		return 0, fmt.Errorf("delete employee: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"email_lower": strings.ToLower(strings.TrimSpace(email))})
}

func (r *EmployeeRepository) GetAll(ctx context.Context, skip, take int) ([]domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(take))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []employeeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	employees := make([]domain.Employee, 0, len(docs))
	for _, d := range docs {
		employees = append(employees, *d.toDomain())
	}
	return employees, nil
}

func (r *EmployeeRepository) findOne(ctx context.Context, filter bson.M) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc employeeDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return doc.toDomain(), nil
}
