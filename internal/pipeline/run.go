// Package pipeline provides the orchestrator for the four-stage analysis
// workflow: job extraction, CV extraction, hybrid scoring, and recommendation
// synthesis.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/cv-checker/internal/llm"
	"github.com/jonathan/cv-checker/internal/parsing"
	"github.com/jonathan/cv-checker/internal/report"
	"github.com/jonathan/cv-checker/internal/scoring"
	"github.com/jonathan/cv-checker/internal/types"
)

// State tracks the orchestrator's position in the linear workflow. There is
// no branching and no retry loop: any stage error moves directly to
// StateFailed.
type State string

// Workflow states
const (
	StateInit         State = "init"
	StateParsingJob   State = "parsing_job"
	StateParsingCV    State = "parsing_cv"
	StateScoring      State = "scoring"
	StateSynthesizing State = "synthesizing"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// ProgressCallback receives progress events as the pipeline advances. A nil
// callback disables progress reporting.
type ProgressCallback = func(event types.ProgressEvent)

// Orchestrator sequences the four pipeline stages. It holds no per-run
// mutable state, so one instance can serve concurrent requests.
type Orchestrator struct {
	jobExtractor *parsing.JobExtractor
	cvExtractor  *parsing.CVExtractor
	scorer       *scoring.DeterministicScorer
	validator    *scoring.SemanticValidator
	composer     *scoring.ScoreComposer
	synthesizer  *report.Synthesizer
	log          *zap.Logger
}

// New creates an orchestrator with all four stages backed by the given
// client. The weight set is passed explicitly so test runs can carry
// different weights in parallel.
func New(client llm.Client, weights scoring.Weights, logger *zap.Logger) (*Orchestrator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Orchestrator{
		jobExtractor: parsing.NewJobExtractor(client, logger),
		cvExtractor:  parsing.NewCVExtractor(client, logger),
		scorer:       scoring.NewDeterministicScorer(weights),
		validator:    scoring.NewSemanticValidator(client, weights, logger),
		composer:     scoring.NewScoreComposer(weights),
		synthesizer:  report.NewSynthesizer(client, logger),
		log:          logger,
	}, nil
}

// run tracks the per-request state so the Orchestrator stays reentrant.
type run struct {
	o          *Orchestrator
	ctx        context.Context
	onProgress ProgressCallback
	state      State
}

// emit sends a progress event unless the caller is gone. Once the context is
// cancelled no further events are emitted.
func (r *run) emit(event types.ProgressEvent) {
	if r.onProgress == nil || r.ctx.Err() != nil {
		return
	}
	r.onProgress(event)
}

func (r *run) step(step int, message, status string) {
	r.emit(types.ProgressEvent{
		Type:       types.EventProgress,
		Step:       step,
		TotalSteps: types.TotalSteps,
		Message:    message,
		Status:     status,
	})
}

// fail transitions to StateFailed and emits the single terminal error event.
func (r *run) fail(stage string, err error) error {
	r.state = StateFailed
	stageErr := &StageError{Stage: stage, Err: err}
	r.o.log.Error("pipeline run failed", zap.String("stage", stage), zap.Error(err))
	r.emit(types.ProgressEvent{
		Type:  types.EventError,
		Stage: stage,
		Error: stageErr.Error(),
	})
	return stageErr
}

// Run executes the complete analysis workflow. Events arrive strictly
// ordered: for each step an in_progress event precedes its completed event,
// steps arrive in order, and the stream ends with exactly one result or
// error event.
func (o *Orchestrator) Run(ctx context.Context, jobText, cvText string, onProgress ProgressCallback) (*types.AnalysisResult, error) {
	r := &run{o: o, ctx: ctx, onProgress: onProgress, state: StateInit}

	o.log.Info("starting analysis workflow",
		zap.Int("job_length", len(jobText)),
		zap.Int("cv_length", len(cvText)))

	// Step 1: parse job description
	r.state = StateParsingJob
	r.step(1, "Parsing job description...", types.StatusInProgress)
	job, err := o.jobExtractor.Extract(ctx, jobText)
	if err != nil {
		return nil, r.fail(StageParseJob, err)
	}
	r.step(1, "Job description parsed", types.StatusCompleted)

	// Step 2: parse CV
	r.state = StateParsingCV
	r.step(2, "Parsing CV...", types.StatusInProgress)
	cv, err := o.cvExtractor.Extract(ctx, cvText)
	if err != nil {
		return nil, r.fail(StageParseCV, err)
	}
	r.step(2, "CV parsed", types.StatusCompleted)

	// Step 3: hybrid scoring (deterministic baseline + semantic validation)
	r.state = StateScoring
	r.step(3, "Analyzing compatibility...", types.StatusInProgress)
	det := o.scorer.Score(job, cv)
	sem, err := o.validator.Validate(ctx, jobText, cvText, det)
	if err != nil {
		return nil, r.fail(StageScore, err)
	}
	hybrid := o.composer.Compose(det, sem)
	r.step(3, "Compatibility analysis completed", types.StatusCompleted)

	// Step 4: recommendation synthesis
	r.state = StateSynthesizing
	r.step(4, "Generating recommendations...", types.StatusInProgress)
	rep, err := o.synthesizer.Generate(ctx, hybrid, job, cv)
	if err != nil {
		return nil, r.fail(StageSynthesize, err)
	}
	r.step(4, "Recommendations generated", types.StatusCompleted)

	result := buildResult(hybrid, rep, job, cv)
	r.state = StateDone

	o.log.Info("workflow complete",
		zap.Float64("final_score", result.OverallScore),
		zap.String("grade", result.Grade))

	r.emit(types.ProgressEvent{
		Type:   types.EventResult,
		Result: result,
	})

	return result, nil
}
