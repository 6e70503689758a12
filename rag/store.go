package rag

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS insights (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	platform TEXT NOT NULL,
	format TEXT NOT NULL,
	metric TEXT NOT NULL,
	value REAL NOT NULL,
	engagement_rate REAL NOT NULL,
	industry TEXT NOT NULL,
	source TEXT NOT NULL,
	report_date TEXT NOT NULL,
	context TEXT NOT NULL,
	audience TEXT NOT NULL,
	document TEXT NOT NULL,
	embedding TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_insights_platform ON insights(platform);
`

// StoreOptions configures a Store.
type StoreOptions struct {
	// Path to the SQLite database file. ":memory:" works for tests.
	Path string

	// Embedder enables similarity ranking. When nil, queries fall back
	// to keyword overlap scoring.
	Embedder Embedder
}

// Store is a SQLite-backed Retriever over marketing benchmarks.
type Store struct {
	mu       sync.RWMutex
	db       *sql.DB
	embedder Embedder
}

func NewStore(opts StoreOptions) (*Store, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("store path is required")
	}
	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db, embedder: opts.Embedder}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Seed inserts benchmarks, skipping the load when the table already has
// rows. Embeddings are computed up front when an embedder is present;
// an embedding failure degrades the row to keyword-only ranking.
func (s *Store) Seed(ctx context.Context, benchmarks []Benchmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM insights").Scan(&count); err != nil {
		return fmt.Errorf("failed to count insights: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, b := range benchmarks {
		doc := b.Document()
		var embeddingJSON any
		if s.embedder != nil {
			if vector, err := s.embedder.Embed(ctx, doc); err == nil {
				if data, err := json.Marshal(vector); err == nil {
					embeddingJSON = string(data)
				}
			}
		}
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO insights
			(platform, format, metric, value, engagement_rate, industry, source, report_date, context, audience, document, embedding)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.Platform, b.Format, b.Metric, b.Value, b.EngagementRate,
			b.Industry, b.Source, b.Date, b.Context, b.Audience, doc, embeddingJSON,
		)
		if err != nil {
			return fmt.Errorf("failed to insert benchmark: %w", err)
		}
	}
	return nil
}

type scoredRow struct {
	source    string
	document  string
	context   string
	embedding []float32
	score     float64
}

// Query ranks stored insights against the query text and returns the
// top K. No matches is an empty slice, not an error.
func (s *Store) Query(ctx context.Context, text string, topK int) ([]Insight, error) {
	if topK <= 0 {
		topK = 3
	}
	rows, err := s.loadRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var queryVector []float32
	if s.embedder != nil {
		// Ranking degrades to keywords if the embedding call fails.
		queryVector, _ = s.embedder.Embed(ctx, text)
	}

	for i := range rows {
		if queryVector != nil && rows[i].embedding != nil {
			rows[i].score = cosineSimilarity(queryVector, rows[i].embedding)
		} else {
			rows[i].score = keywordScore(text, rows[i].document)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].score > rows[j].score
	})

	var insights []Insight
	for _, row := range rows {
		if row.score <= 0 {
			continue
		}
		insights = append(insights, Insight{
			Source:    row.source,
			Insight:   row.context,
			Relevance: row.score,
		})
		if len(insights) == topK {
			break
		}
	}
	return insights, nil
}

func (s *Store) loadRows(ctx context.Context) ([]scoredRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT source, document, context, embedding FROM insights")
	if err != nil {
		return nil, fmt.Errorf("failed to query insights: %w", err)
	}
	defer rows.Close()

	var results []scoredRow
	for rows.Next() {
		var row scoredRow
		var embeddingJSON sql.NullString
		if err := rows.Scan(&row.source, &row.document, &row.context, &embeddingJSON); err != nil {
			return nil, err
		}
		if embeddingJSON.Valid && embeddingJSON.String != "" {
			json.Unmarshal([]byte(embeddingJSON.String), &row.embedding)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// keywordScore is the fraction of query keywords found in the document.
func keywordScore(query, document string) float64 {
	keywords := strings.Fields(strings.ToLower(query))
	if len(keywords) == 0 {
		return 0
	}
	doc := strings.ToLower(document)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(doc, kw) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}
