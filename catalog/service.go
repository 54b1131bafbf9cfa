package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

// ConnectionError marks a failure to reach or query the shop database so
// callers can tell a data-fetch failure apart from a render failure.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("catalog database unavailable: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Service reads products and attribute terms from a WooCommerce-style
// MySQL schema (wp_posts / wp_postmeta / wp_terms).
type Service struct {
	db  *sql.DB
	log *slog.Logger
}

// Open prepares a service over the given DSN. The connection is verified
// lazily; use Ping to check credentials up front.
func Open(dsn string, log *slog.Logger) (*Service, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return &Service{db: db, log: log}, nil
}

// Close releases the underlying connection pool.
func (s *Service) Close() error { return s.db.Close() }

// Ping verifies the connection parameters.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &ConnectionError{Err: err}
	}
	return nil
}

// variation meta keys loaded for label generation
var productMetaKeys = []string{
	MetaSKU, MetaPrice, MetaRegularPrice, MetaSalePrice,
	"_product_attributes", "_variation_description", MetaStock,
}

// ProductsBySKUs loads the product variations carrying the given SKUs,
// together with their parents' title and description. The result is
// ordered by product ID so repeated runs paginate identically. An empty
// SKU list yields an empty slice without touching the database.
func (s *Service) ProductsBySKUs(ctx context.Context, skus []string) ([]Product, error) {
	if len(skus) == 0 {
		return nil, nil
	}
	s.log.Debug("fetching products", "skus", skus)

	query := fmt.Sprintf(`
		SELECT p.ID, p.post_title, p.post_parent, pm.meta_key, pm.meta_value
		FROM wp_posts p
		JOIN wp_postmeta pm ON p.ID = pm.post_id
		WHERE (pm.meta_key IN (%s) OR pm.meta_key LIKE 'attribute_%%')
		  AND p.post_type = 'product_variation'
		  AND pm.post_id IN (
		    SELECT post_id FROM wp_postmeta WHERE meta_key = '_sku' AND meta_value IN (%s)
		  )
		ORDER BY p.ID`,
		placeholders(len(productMetaKeys)), placeholders(len(skus)))

	args := make([]any, 0, len(productMetaKeys)+len(skus))
	for _, k := range productMetaKeys {
		args = append(args, k)
	}
	for _, sku := range skus {
		args = append(args, sku)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer rows.Close()

	byID := map[int64]*Product{}
	var order []int64
	for rows.Next() {
		var (
			id, parent        int64
			title, key, value string
		)
		if err := rows.Scan(&id, &title, &parent, &key, &value); err != nil {
			return nil, &ConnectionError{Err: err}
		}
		p, ok := byID[id]
		if !ok {
			p = &Product{ID: id, ParentID: parent, Title: title, Meta: map[string]string{}}
			byID[id] = p
			order = append(order, id)
		}
		p.Meta[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if err := s.fillParents(ctx, byID); err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(order))
	for _, id := range order {
		products = append(products, *byID[id])
	}
	s.log.Debug("products fetched", "count", len(products))
	return products, nil
}

func (s *Service) fillParents(ctx context.Context, byID map[int64]*Product) error {
	parentIDs := map[int64]bool{}
	for _, p := range byID {
		if p.ParentID != 0 {
			parentIDs[p.ParentID] = true
		}
	}
	if len(parentIDs) == 0 {
		return nil
	}

	args := make([]any, 0, len(parentIDs))
	for id := range parentIDs {
		args = append(args, id)
	}
	query := fmt.Sprintf(
		"SELECT ID, post_title, post_content FROM wp_posts WHERE ID IN (%s)",
		placeholders(len(args)))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	defer rows.Close()

	type parent struct{ title, content string }
	parents := map[int64]parent{}
	for rows.Next() {
		var (
			id             int64
			title, content string
		)
		if err := rows.Scan(&id, &title, &content); err != nil {
			return &ConnectionError{Err: err}
		}
		parents[id] = parent{title: title, content: content}
	}
	if err := rows.Err(); err != nil {
		return &ConnectionError{Err: err}
	}

	for _, p := range byID {
		if par, ok := parents[p.ParentID]; ok {
			p.BaseTitle = par.title
			p.Content = par.content
		}
	}
	return nil
}

// TermLabels maps attribute value slugs to their human-readable names.
// Unknown slugs are simply absent from the result.
func (s *Service) TermLabels(ctx context.Context, slugs []string) (map[string]string, error) {
	labels := map[string]string{}
	if len(slugs) == 0 {
		return labels, nil
	}
	s.log.Debug("fetching term labels", "slugs", slugs)

	args := make([]any, 0, len(slugs))
	for _, slug := range slugs {
		args = append(args, slug)
	}
	query := fmt.Sprintf("SELECT slug, name FROM wp_terms WHERE slug IN (%s)", placeholders(len(args)))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var slug, name string
		if err := rows.Scan(&slug, &name); err != nil {
			return nil, &ConnectionError{Err: err}
		}
		labels[slug] = name
	}
	if err := rows.Err(); err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return labels, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
