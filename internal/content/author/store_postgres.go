package author

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

func (repository *PostgresRepository) List(ctx context.Context) ([]Author, error) {
	query := `
		SELECT a.id, a.slug, a.name, a.email, a.bio, a.avatar_url, a.website
		FROM authors a
		ORDER BY a.name ASC
	`

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	authors := []Author{}
	for rows.Next() {
		var author Author
		if err := rows.Scan(&author.ID, &author.Slug, &author.Name, &author.Email, &author.Bio, &author.AvatarURL, &author.Website); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, author)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}

	return authors, nil
}

func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug string) (*Author, error) {
	query := `
		SELECT a.id, a.slug, a.name, a.email, a.bio, a.avatar_url, a.website
		FROM authors a
		WHERE a.slug = $1
	`

	var author Author
	err := repository.db.QueryRow(ctx, query, slug).Scan(
		&author.ID, &author.Slug, &author.Name, &author.Email, &author.Bio, &author.AvatarURL, &author.Website,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_author")
	}

	return &author, nil
}
