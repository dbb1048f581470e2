package page

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hientensai/blogapi/internal/platform/constants"
	"github.com/hientensai/blogapi/internal/platform/dberr"
)

// publishedFilter is the single visibility predicate shared by every query
// in this repository.
const publishedFilter = `g.status = '` + constants.StatusPublish + `'`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListPublished(ctx context.Context) ([]Index, error) {
	query := `
		SELECT g.id, g.slug, g.title, g.date, g.modified, g.parent_id, g.menu_order
		FROM pages g
		WHERE ` + publishedFilter + `
		ORDER BY g.menu_order ASC
	`

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_pages")
	}
	defer rows.Close()

	pages := []Index{}
	for rows.Next() {
		var row indexRow
		if err := rows.Scan(&row.ID, &row.Slug, &row.Title, &row.Date, &row.Modified, &row.ParentID, &row.MenuOrder); err != nil {
			return nil, dberr.Wrap(err, "scan_page")
		}
		pages = append(pages, buildIndex(row))
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_pages")
	}

	return pages, nil
}

func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug string) (*Page, error) {
	query := `
		SELECT g.id, g.slug, g.title, g.date, g.modified, g.parent_id, g.menu_order,
		       g.content, g.author_id, g.status, g.featured_image_url, g.featured_image_id,
		       g.original_link, g.template
		FROM pages g
		WHERE g.slug = $1 AND ` + publishedFilter + `
	`

	var row pageRow
	err := repository.db.QueryRow(ctx, query, slug).Scan(
		&row.ID, &row.Slug, &row.Title, &row.Date, &row.Modified, &row.ParentID, &row.MenuOrder,
		&row.Content, &row.AuthorID, &row.Status, &row.FeaturedImageURL, &row.FeaturedImageID,
		&row.OriginalLink, &row.Template,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_page")
	}

	images, err := repository.listImages(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	p := buildPage(row, images)
	return &p, nil
}

func (repository *PostgresRepository) listImages(ctx context.Context, pageID int) ([]imageRow, error) {
	query := `
		SELECT i.original_url, i.clean_url, i.alt_text, i.width, i.height
		FROM page_images i
		WHERE i.page_id = $1
		ORDER BY i.id ASC
	`

	rows, err := repository.db.Query(ctx, query, pageID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_page_images")
	}
	defer rows.Close()

	var images []imageRow
	for rows.Next() {
		var row imageRow
		if err := rows.Scan(&row.OriginalURL, &row.CleanURL, &row.AltText, &row.Width, &row.Height); err != nil {
			return nil, dberr.Wrap(err, "scan_page_image")
		}
		images = append(images, row)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_page_images")
	}

	return images, nil
}
