package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/cv-checker/internal/types"
)

// AnalysisSummary is a lightweight view of a stored analysis for listing.
type AnalysisSummary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	OverallScore float64   `json:"overall_score"`
	Grade        string    `json:"grade"`
	JobTitle     string    `json:"job_title,omitempty"`
	Seniority    string    `json:"seniority,omitempty"`
}

// SaveAnalysis stores a completed analysis result. The full result is kept
// as JSONB with the score and grade denormalized for listing.
func (db *DB) SaveAnalysis(ctx context.Context, result *types.AnalysisResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, created_at, overall_score, grade, job_title, seniority, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		result.ID, result.CreatedAt, result.OverallScore, result.Grade,
		result.JobTitle, result.SeniorityLevel, resultJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", result.ID, err)
	}
	return nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns nil with no error
// when the ID is unknown.
func (db *DB) GetAnalysis(ctx context.Context, id string) (*types.AnalysisResult, error) {
	var resultJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT result FROM analyses WHERE id = $1`, id,
	).Scan(&resultJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(resultJSON, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored analysis %s: %w", id, err)
	}
	return &result, nil
}

// ListRecentAnalyses retrieves summaries of the most recent analyses.
func (db *DB) ListRecentAnalyses(ctx context.Context, limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, created_at, overall_score, grade, COALESCE(job_title, ''), COALESCE(seniority, '')
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var summaries []AnalysisSummary
	for rows.Next() {
		var s AnalysisSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.OverallScore, &s.Grade, &s.JobTitle, &s.Seniority); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
