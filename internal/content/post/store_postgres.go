package post

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hientensai/blogapi/internal/content/taxonomy"
	"github.com/hientensai/blogapi/internal/platform/constants"
	"github.com/hientensai/blogapi/internal/platform/dberr"
)

// publishedFilter is the single visibility predicate shared by every query
// in this repository, so the invariant cannot be forgotten when a new query
// is added.
const publishedFilter = `p.status = '` + constants.StatusPublish + `'`

// indexColumns is the projection scanned into an indexRow.
const indexColumns = `p.id, p.slug, p.title, p.excerpt, p.date, p.modified, p.featured_image_url, p.featured_image_id`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListPublished(ctx context.Context) ([]Index, error) {
	query := `
		SELECT ` + indexColumns + `
		FROM posts p
		WHERE ` + publishedFilter + `
		ORDER BY p.date DESC
	`
	return repository.queryIndex(ctx, "list_published", query)
}

func (repository *PostgresRepository) ListPage(ctx context.Context, limit, offset int) ([]Index, error) {
	query := `
		SELECT ` + indexColumns + `
		FROM posts p
		WHERE ` + publishedFilter + `
		ORDER BY p.date DESC
		LIMIT $1 OFFSET $2
	`
	return repository.queryIndex(ctx, "list_page", query, limit, offset)
}

func (repository *PostgresRepository) CountPublished(ctx context.Context) (int, error) {
	query := `SELECT count(*) FROM posts p WHERE ` + publishedFilter

	var total int
	if err := repository.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_published")
	}
	return total, nil
}

func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug string) (*Post, error) {
	query := `
		SELECT ` + indexColumns + `,
		       p.content, p.author_id, p.status, p.comment_status, p.original_link, p.format
		FROM posts p
		WHERE p.slug = $1 AND ` + publishedFilter + `
	`

	var row postRow
	err := repository.db.QueryRow(ctx, query, slug).Scan(
		&row.ID, &row.Slug, &row.Title, &row.Excerpt, &row.Date, &row.Modified,
		&row.FeaturedImageURL, &row.FeaturedImageID,
		&row.Content, &row.AuthorID, &row.Status, &row.CommentStatus,
		&row.OriginalLink, &row.Format,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_post")
	}

	images, err := repository.listImages(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	post := buildPost(row, images)

	// attachTaxonomies writes through slice element pointers.
	indexed := []Index{post.Index}
	if err := repository.attachTaxonomies(ctx, indexed); err != nil {
		return nil, err
	}
	post.Index = indexed[0]

	return &post, nil
}

func (repository *PostgresRepository) ListByCategory(ctx context.Context, slug string) ([]Index, error) {
	query := `
		SELECT ` + indexColumns + `
		FROM posts p
		WHERE ` + publishedFilter + `
		  AND EXISTS (
		      SELECT 1 FROM post_categories pc
		      JOIN categories c ON c.id = pc.category_id
		      WHERE pc.post_id = p.id AND c.slug = $1
		  )
		ORDER BY p.date DESC
	`
	return repository.queryIndex(ctx, "list_by_category", query, slug)
}

func (repository *PostgresRepository) ListByTag(ctx context.Context, slug string) ([]Index, error) {
	query := `
		SELECT ` + indexColumns + `
		FROM posts p
		WHERE ` + publishedFilter + `
		  AND EXISTS (
		      SELECT 1 FROM post_tags pt
		      JOIN tags t ON t.id = pt.tag_id
		      WHERE pt.post_id = p.id AND t.slug = $1
		  )
		ORDER BY p.date DESC
	`
	return repository.queryIndex(ctx, "list_by_tag", query, slug)
}

func (repository *PostgresRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]Index, error) {
	query := `
		SELECT ` + indexColumns + `
		FROM posts p
		WHERE ` + publishedFilter + ` AND p.date >= $1 AND p.date <= $2
		ORDER BY p.date DESC
	`
	return repository.queryIndex(ctx, "list_by_date_range", query, from, to)
}

func (repository *PostgresRepository) ListByAuthor(ctx context.Context, authorID int) ([]Index, error) {
	query := `
		SELECT ` + indexColumns + `
		FROM posts p
		WHERE ` + publishedFilter + ` AND p.author_id = $1
		ORDER BY p.date DESC
	`
	return repository.queryIndex(ctx, "list_by_author", query, authorID)
}

func (repository *PostgresRepository) ListRelated(ctx context.Context, postID int, categoryIDs, tagIDs []int, limit int) ([]Index, error) {
	query := `
		SELECT ` + indexColumns + `
		FROM posts p
		WHERE ` + publishedFilter + `
		  AND p.id <> $1
		  AND btrim(p.slug) <> ''
		  AND (
		      EXISTS (SELECT 1 FROM post_categories pc WHERE pc.post_id = p.id AND pc.category_id = ANY($2))
		      OR EXISTS (SELECT 1 FROM post_tags pt WHERE pt.post_id = p.id AND pt.tag_id = ANY($3))
		  )
		ORDER BY p.date DESC
		LIMIT $4
	`
	return repository.queryIndex(ctx, "list_related", query, postID, categoryIDs, tagIDs, limit)
}

func (repository *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]Index, error) {
	query := `
		SELECT ` + indexColumns + `
		FROM posts p
		WHERE ` + publishedFilter + `
		ORDER BY p.date DESC
		LIMIT $1
	`
	return repository.queryIndex(ctx, "list_recent", query, limit)
}

func (repository *PostgresRepository) ListRecentExcluding(ctx context.Context, postID, limit int) ([]Index, error) {
	query := `
		SELECT ` + indexColumns + `
		FROM posts p
		WHERE ` + publishedFilter + ` AND p.id <> $1 AND btrim(p.slug) <> ''
		ORDER BY p.date DESC
		LIMIT $2
	`
	return repository.queryIndex(ctx, "list_recent_excluding", query, postID, limit)
}

func (repository *PostgresRepository) ListDates(ctx context.Context) ([]time.Time, error) {
	query := `SELECT p.date FROM posts p WHERE ` + publishedFilter + ` ORDER BY p.date DESC`

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_dates")
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, dberr.Wrap(err, "scan_date")
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_dates")
	}

	return dates, nil
}

func (repository *PostgresRepository) Search(ctx context.Context, query string, limit int) ([]Index, error) {
	term := "%" + escapeLike(query) + "%"
	sql := `
		SELECT ` + indexColumns + `
		FROM posts p
		WHERE ` + publishedFilter + `
		  AND (p.title ILIKE $1 OR COALESCE(p.excerpt, '') ILIKE $1 OR p.content ILIKE $1)
		ORDER BY p.date DESC
		LIMIT $2
	`
	return repository.queryIndex(ctx, "search_posts", sql, term, limit)
}

// queryIndex runs an index-projection query, scans the rows, and attaches
// category and tag memberships in two follow-up queries (no N+1).
func (repository *PostgresRepository) queryIndex(ctx context.Context, action, query string, args ...any) ([]Index, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	posts := []Index{}
	for rows.Next() {
		var row indexRow
		if err := rows.Scan(
			&row.ID, &row.Slug, &row.Title, &row.Excerpt, &row.Date, &row.Modified,
			&row.FeaturedImageURL, &row.FeaturedImageID,
		); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		posts = append(posts, buildIndex(row))
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}

	if err := repository.attachTaxonomies(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// attachTaxonomies fills in the Categories and Tags of every index entry.
func (repository *PostgresRepository) attachTaxonomies(ctx context.Context, posts []Index) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]int, 0, len(posts))
	byID := make(map[int]*Index, len(posts))
	for i := range posts {
		ids = append(ids, posts[i].ID)
		byID[posts[i].ID] = &posts[i]
	}

	categoryQuery := `
		SELECT pc.post_id, c.id, c.slug, c.name, c.description,
		       parent.id, parent.slug, parent.name
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		LEFT JOIN categories parent ON parent.id = c.parent_id
		WHERE pc.post_id = ANY($1)
		ORDER BY c.name ASC
	`
	rows, err := repository.db.Query(ctx, categoryQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "attach_categories")
	}
	defer rows.Close()

	for rows.Next() {
		var postID int
		var category taxonomy.Category
		var parentID *int
		var parentSlug, parentName *string
		if err := rows.Scan(
			&postID, &category.ID, &category.Slug, &category.Name, &category.Description,
			&parentID, &parentSlug, &parentName,
		); err != nil {
			return dberr.Wrap(err, "scan_post_category")
		}
		if parentID != nil {
			category.Parent = &taxonomy.CategoryRef{ID: *parentID, Slug: *parentSlug, Name: *parentName}
		}
		if entry, ok := byID[postID]; ok {
			entry.Categories = append(entry.Categories, category)
		}
	}
	if err := rows.Err(); err != nil {
		return dberr.Wrap(err, "attach_categories")
	}

	tagQuery := `
		SELECT pt.post_id, t.id, t.slug, t.name, t.description
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY($1)
		ORDER BY t.name ASC
	`
	tagRows, err := repository.db.Query(ctx, tagQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "attach_tags")
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var postID int
		var tag taxonomy.Tag
		if err := tagRows.Scan(&postID, &tag.ID, &tag.Slug, &tag.Name, &tag.Description); err != nil {
			return dberr.Wrap(err, "scan_post_tag")
		}
		if entry, ok := byID[postID]; ok {
			entry.Tags = append(entry.Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return dberr.Wrap(err, "attach_tags")
	}

	return nil
}

func (repository *PostgresRepository) listImages(ctx context.Context, postID int) ([]imageRow, error) {
	query := `
		SELECT i.original_url, i.clean_url, i.alt_text, i.width, i.height
		FROM post_images i
		WHERE i.post_id = $1
		ORDER BY i.id ASC
	`

	rows, err := repository.db.Query(ctx, query, postID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_post_images")
	}
	defer rows.Close()

	var images []imageRow
	for rows.Next() {
		var row imageRow
		if err := rows.Scan(&row.OriginalURL, &row.CleanURL, &row.AltText, &row.Width, &row.Height); err != nil {
			return nil, dberr.Wrap(err, "scan_post_image")
		}
		images = append(images, row)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_post_images")
	}

	return images, nil
}

// escapeLike neutralizes LIKE metacharacters so user queries match literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
