// Package pgstore implements docstore on PostgreSQL. Every collection shares a
// single documents table; each document body is held in a JSONB column and
// its ObjectID in a text key column. The schema is applied with embedded
// migrations when the store is opened.
package pgstore

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/JaimeStill/task-manager/pkg/decode"
	"github.com/JaimeStill/task-manager/pkg/docstore"
	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:embed migrations/*.sql
var migrations embed.FS

const order = "ORDER BY created_at, id"

type store struct {
	pool *pgxpool.Pool
}

// Open creates a connection pool for dsn and migrates the schema to the
// latest version.
func Open(ctx context.Context, dsn string) (docstore.Store, error) {
	if err := Migrate(dsn); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return &store{pool: pool}, nil
}

// Migrate applies all pending schema migrations to the database at dsn.
func Migrate(dsn string) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		db.Close()
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		db.Close()
		return fmt.Errorf("migration instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func (s *store) Collection(name string) docstore.Collection {
	return &collection{pool: s.pool, name: name}
}

func (s *store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *store) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}

type collection struct {
	pool *pgxpool.Pool
	name string
}

func (c *collection) Find(ctx context.Context, filter docstore.Filter) ([]docstore.Document, error) {
	where, args, err := Where(c.name, filter)
	if err != nil {
		return nil, err
	}

	rows, err := c.pool.Query(ctx, "SELECT id, data FROM documents WHERE "+where+" "+order, args...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.name, err)
	}
	defer rows.Close()

	docs := make([]docstore.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.name, err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return docs, nil
}

func (c *collection) FindOne(ctx context.Context, filter docstore.Filter) (docstore.Document, error) {
	where, args, err := Where(c.name, filter)
	if err != nil {
		return nil, err
	}

	q := "SELECT id, data FROM documents WHERE " + where + " " + order + " LIMIT 1"
	doc, err := scanDocument(c.pool.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, translate(err)
	}
	return doc, nil
}

func (c *collection) InsertOne(ctx context.Context, doc docstore.Document) (primitive.ObjectID, error) {
	id, ok := doc.ID()
	if !ok {
		id = primitive.NewObjectID()
	}

	data, err := json.Marshal(doc.Without(docstore.IDField))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("encode document: %w", err)
	}

	_, err = c.pool.Exec(ctx,
		"INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3::jsonb)",
		c.name, id.Hex(), string(data),
	)
	if err != nil {
		if isDuplicateError(err) {
			return primitive.NilObjectID, docstore.ErrDuplicateKey
		}
		return primitive.NilObjectID, fmt.Errorf("insert %s: %w", c.name, err)
	}
	return id, nil
}

func (c *collection) UpdateOne(ctx context.Context, filter docstore.Filter, set docstore.Document) (docstore.UpdateResult, error) {
	q, args, err := c.updateQuery(filter, set)
	if err != nil {
		return docstore.UpdateResult{}, err
	}

	tag, err := c.pool.Exec(ctx, q, args...)
	if err != nil {
		return docstore.UpdateResult{}, fmt.Errorf("update %s: %w", c.name, err)
	}
	return docstore.UpdateResult{
		Matched:  tag.RowsAffected(),
		Modified: tag.RowsAffected(),
	}, nil
}

func (c *collection) FindOneAndUpdate(ctx context.Context, filter docstore.Filter, set docstore.Document) (docstore.Document, error) {
	q, args, err := c.updateQuery(filter, set)
	if err != nil {
		return nil, err
	}

	doc, err := scanDocument(c.pool.QueryRow(ctx, q+" RETURNING id, data", args...))
	if err != nil {
		return nil, translate(err)
	}
	return doc, nil
}

func (c *collection) DeleteOne(ctx context.Context, filter docstore.Filter) (int64, error) {
	where, args, err := Where(c.name, filter)
	if err != nil {
		return 0, err
	}

	q := "DELETE FROM documents WHERE collection = $1 AND id = (SELECT id FROM documents WHERE " +
		where + " " + order + " LIMIT 1)"

	tag, err := c.pool.Exec(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", c.name, err)
	}
	return tag.RowsAffected(), nil
}

func (c *collection) updateQuery(filter docstore.Filter, set docstore.Document) (string, []any, error) {
	where, args, err := Where(c.name, filter)
	if err != nil {
		return "", nil, err
	}

	data, err := json.Marshal(set.Without(docstore.IDField))
	if err != nil {
		return "", nil, fmt.Errorf("encode update: %w", err)
	}
	args = append(args, string(data))

	q := fmt.Sprintf(
		"UPDATE documents SET data = data || $%d::jsonb WHERE collection = $1 AND id = (SELECT id FROM documents WHERE %s %s LIMIT 1)",
		len(args), where, order,
	)
	return q, args, nil
}

// Where translates an equality filter into a SQL predicate over the documents
// table. The identifier is matched against the key column; every other field
// is matched by JSONB containment.
func Where(collection string, filter docstore.Filter) (string, []any, error) {
	clauses := []string{"collection = $1"}
	args := []any{collection}

	contains := make(map[string]any)
	for field, value := range filter {
		if field != docstore.IDField {
			contains[field] = value
			continue
		}

		id, ok := value.(primitive.ObjectID)
		if !ok {
			return "", nil, fmt.Errorf("filter %s: expected ObjectID, got %T", field, value)
		}
		args = append(args, id.Hex())
		clauses = append(clauses, fmt.Sprintf("id = $%d", len(args)))
	}

	if len(contains) > 0 {
		data, err := json.Marshal(contains)
		if err != nil {
			return "", nil, fmt.Errorf("encode filter: %w", err)
		}
		args = append(args, string(data))
		clauses = append(clauses, fmt.Sprintf("data @> $%d::jsonb", len(args)))
	}

	return strings.Join(clauses, " AND "), args, nil
}

func scanDocument(row pgx.Row) (docstore.Document, error) {
	var (
		id   string
		data []byte
	)
	if err := row.Scan(&id, &data); err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("stored id %q: %w", id, err)
	}

	fields, err := decode.Object(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}

	doc := docstore.Document(fields)
	doc[docstore.IDField] = oid
	return doc, nil
}

func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return docstore.ErrNoDocuments
	}
	return err
}

func isDuplicateError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
