package repository

import (
	"database/sql"
	"fmt"

	"tyfeed/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// postFilter builds the FROM/WHERE clause shared by CountPosts and GetPosts
// so count and fetch can never disagree on which rows qualify.
// A categoryID of 0 selects all published posts.
func postFilter(categoryID int64) (string, []any) {
	if categoryID > 0 {
		return `
			FROM article a
			JOIN category_membership m ON m.article_id = a.id
			WHERE a.type = $1 AND a.status = $2 AND m.category_id = $3
		`, []any{model.TypePost, model.StatusPublish, categoryID}
	}

	return `
		FROM article a
		WHERE a.type = $1 AND a.status = $2
	`, []any{model.TypePost, model.StatusPublish}
}

func (r *ArticleRepository) CountPosts(categoryID int64) (int, error) {
	clause, args := postFilter(categoryID)

	var total int
	err := r.db.QueryRow(`SELECT COUNT(DISTINCT a.id)`+clause, args...).Scan(&total)
	return total, err
}

func (r *ArticleRepository) GetPosts(categoryID int64, offset, limit int, windowed bool) ([]model.Article, error) {
	clause, args := postFilter(categoryID)

	query := `SELECT a.id, a.title, a.text, a.created, a.modified, a.author_id, a.status, a.type` +
		clause + `ORDER BY a.created DESC`
	if windowed {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		err := rows.Scan(&a.ID, &a.Title, &a.Text, &a.Created, &a.Modified, &a.AuthorID, &a.Status, &a.Type)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) GetAuthor(id int64) (*model.Author, error) {
	var author model.Author
	err := r.db.QueryRow(`
		SELECT id, name
		FROM author
		WHERE id = $1
	`, id).Scan(&author.ID, &author.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &author, nil
}

func (r *ArticleRepository) GetCategory(id int64) (*model.Category, error) {
	var category model.Category
	err := r.db.QueryRow(`
		SELECT id, name, slug
		FROM category
		WHERE id = $1 AND type = $2
	`, id, model.TypeCategory).Scan(&category.ID, &category.Name, &category.Slug)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *ArticleRepository) InsertArticle(article *model.Article) (int64, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO article(title, text, created, modified, author_id, status, type)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, article.Title, article.Text, article.Created, article.Modified, article.AuthorID, article.Status, article.Type).Scan(&id)

	if err != nil {
		return 0, err
	}

	article.ID = id
	return id, nil
}

// InsertMembership links an article to a category. It runs outside the
// article insert on purpose: a failed link leaves the article in place,
// served by the unfiltered feed but absent from the category feed.
func (r *ArticleRepository) InsertMembership(articleID, categoryID int64) error {
	_, err := r.db.Exec(`
		INSERT INTO category_membership(article_id, category_id)
		VALUES($1, $2)
	`, articleID, categoryID)
	return err
}
