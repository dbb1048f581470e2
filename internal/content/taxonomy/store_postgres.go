package taxonomy

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hientensai/blogapi/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	query := `
		SELECT c.id, c.slug, c.name, c.description,
		       parent.id, parent.slug, parent.name
		FROM categories c
		LEFT JOIN categories parent ON parent.id = c.parent_id
		ORDER BY c.name ASC
	`

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		var parentID *int
		var parentSlug, parentName *string
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &parentID, &parentSlug, &parentName); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		if parentID != nil {
			c.Parent = &CategoryRef{ID: *parentID, Slug: *parentSlug, Name: *parentName}
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}

	return categories, nil
}

func (repository *PostgresRepository) ListTags(ctx context.Context) ([]Tag, error) {
	query := `
		SELECT t.id, t.slug, t.name, t.description
		FROM tags t
		ORDER BY t.name ASC
	`

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := []Tag{}
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name, &t.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}

	return tags, nil
}
